package refcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
)

// HTTPClassifier calls a hosted flow endpoint that wraps the AI model. The
// request body is {"data":{"mpesaReference":...}} and the verdict comes back
// under "result". Calls are not retried.
type HTTPClassifier struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClassifier creates a classifier for endpoint. A nil client uses a
// pooled client with no global state.
func NewHTTPClassifier(endpoint string, client *http.Client) *HTTPClassifier {
	if client == nil {
		client = cleanhttp.DefaultPooledClient()
	}
	return &HTTPClassifier{endpoint: endpoint, client: client}
}

type flowRequest struct {
	Data struct {
		MpesaReference string `json:"mpesaReference"`
	} `json:"data"`
}

type flowResponse struct {
	Result *Verdict `json:"result"`
	Error  *struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, ref string) (Verdict, error) {
	var body flowRequest
	body.Data.MpesaReference = ref
	payload, err := json.Marshal(body)
	if err != nil {
		return Verdict{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Verdict{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Verdict{}, fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return Verdict{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Verdict{}, fmt.Errorf("classifier returned %s: %s", resp.Status, bytes.TrimSpace(raw))
	}

	var out flowResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return Verdict{}, fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return Verdict{}, fmt.Errorf("classifier error %s: %s", out.Error.Status, out.Error.Message)
	}
	if out.Result == nil {
		return Verdict{}, fmt.Errorf("classifier response has no result")
	}
	return *out.Result, nil
}
