package refcheck

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// countingClassifier records every reference it is asked about.
type countingClassifier struct {
	mu      sync.Mutex
	calls   []string
	verdict Verdict
	err     error
}

func (c *countingClassifier) Classify(ctx context.Context, ref string) (Verdict, error) {
	c.mu.Lock()
	c.calls = append(c.calls, ref)
	c.mu.Unlock()
	return c.verdict, c.err
}

func (c *countingClassifier) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

func TestCheckerShortReferenceIsIdle(t *testing.T) {
	cls := &countingClassifier{verdict: Verdict{IsValid: true, Confidence: 1}}
	checker := NewChecker(cls, quiet)

	res := checker.Check(context.Background(), "QGH7XK2")
	assert.Equal(t, StatusIdle, res.Status)
	assert.Empty(t, cls.Calls(), "classifier never invoked")

	res = checker.Check(context.Background(), "   ")
	assert.Equal(t, StatusIdle, res.Status)
	assert.Empty(t, cls.Calls())
}

func TestCheckerVerdicts(t *testing.T) {
	tests := []struct {
		name       string
		verdict    Verdict
		err        error
		wantStatus Status
		wantConf   float64
		degraded   bool
	}{
		{"valid", Verdict{IsValid: true, Confidence: 0.93}, nil, StatusValid, 0.93, false},
		{"invalid", Verdict{IsValid: false, Confidence: 0.4}, nil, StatusInvalid, 0.4, false},
		{"confidence above one", Verdict{IsValid: true, Confidence: 7}, nil, StatusValid, 1, false},
		{"negative confidence", Verdict{IsValid: false, Confidence: -2}, nil, StatusInvalid, 0, false},
		{"NaN confidence", Verdict{IsValid: true, Confidence: math.NaN()}, nil, StatusValid, 0, false},
		{"classifier failure falls back", Verdict{IsValid: true, Confidence: 0.9}, errors.New("model overloaded"), StatusInvalid, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(&countingClassifier{verdict: tt.verdict, err: tt.err}, quiet)
			res := checker.Check(context.Background(), "QGH7XK2P9L")
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantConf, res.Verdict.Confidence)
			assert.Equal(t, tt.degraded, res.Degraded)
			if tt.degraded {
				assert.False(t, res.Verdict.IsValid)
			}
		})
	}
}

func TestCheckerTimeoutFallsBack(t *testing.T) {
	slow := ClassifierFunc(func(ctx context.Context, ref string) (Verdict, error) {
		<-ctx.Done()
		return Verdict{}, ctx.Err()
	})
	checker := NewChecker(slow, WithTimeout(20*time.Millisecond), quiet)

	res := checker.Check(context.Background(), "QGH7XK2P9L")
	assert.Equal(t, StatusInvalid, res.Status)
	assert.True(t, res.Degraded)
	assert.Zero(t, res.Verdict.Confidence)
}

func TestHeuristicClassifier(t *testing.T) {
	tests := []struct {
		ref   string
		valid bool
	}{
		{"QGH7XK2P9L", true},
		{"qgh7xk2p9l", true},
		{"ABCDEFGHIJ", true},
		{"1GH7XK2P9L", false},
		{"QGH7-K2P9L", false},
		{"QGH7XK2P9LX", false},
		{"hello world", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			v, err := HeuristicClassifier{}.Classify(context.Background(), tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, v.IsValid)
			assert.True(t, v.Confidence >= 0 && v.Confidence <= 1)
		})
	}
}

func TestHTTPClassifier(t *testing.T) {
	t.Run("decodes flow result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			var body struct {
				Data struct {
					MpesaReference string `json:"mpesaReference"`
				} `json:"data"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "QGH7XK2P9L", body.Data.MpesaReference)

			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"result":{"isValid":true,"confidence":0.82}}`)
		}))
		defer srv.Close()

		v, err := NewHTTPClassifier(srv.URL, srv.Client()).Classify(context.Background(), "QGH7XK2P9L")
		require.NoError(t, err)
		assert.True(t, v.IsValid)
		assert.Equal(t, 0.82, v.Confidence)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := NewHTTPClassifier(srv.URL, nil).Classify(context.Background(), "QGH7XK2P9L")
		assert.Error(t, err)
	})

	t.Run("flow error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"error":{"status":"INTERNAL","message":"boom"}}`)
		}))
		defer srv.Close()

		_, err := NewHTTPClassifier(srv.URL, nil).Classify(context.Background(), "QGH7XK2P9L")
		assert.ErrorContains(t, err, "boom")
	})
}

func TestWatcherDebouncesAndDeliversLatest(t *testing.T) {
	cls := &countingClassifier{verdict: Verdict{IsValid: true, Confidence: 0.9}}
	w := NewWatcher(NewChecker(cls, quiet), 30*time.Millisecond)
	defer w.Close()

	for _, ref := range []string{"Q", "QG", "QGH7XK2P9", "QGH7XK2P9L"} {
		w.Update(ref)
	}

	select {
	case res := <-w.Results():
		assert.Equal(t, "QGH7XK2P9L", res.Ref)
		assert.Equal(t, StatusValid, res.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("no result")
	}
	assert.Equal(t, []string{"QGH7XK2P9L"}, cls.Calls(), "only the settled input is classified")
}

func TestWatcherShortInputNeverInvokes(t *testing.T) {
	cls := &countingClassifier{verdict: Verdict{IsValid: true, Confidence: 0.9}}
	w := NewWatcher(NewChecker(cls, quiet), 10*time.Millisecond)
	defer w.Close()

	w.Update("SHORT")

	select {
	case res := <-w.Results():
		assert.Equal(t, StatusIdle, res.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("no result")
	}
	assert.Empty(t, cls.Calls())
}

func TestWatcherDropsSupersededCall(t *testing.T) {
	started := make(chan string, 4)
	var cancelled atomic.Int32
	cls := ClassifierFunc(func(ctx context.Context, ref string) (Verdict, error) {
		started <- ref
		if ref == "AAAAAAAAA1" {
			<-ctx.Done()
			cancelled.Add(1)
			return Verdict{IsValid: true, Confidence: 1}, nil
		}
		return Verdict{IsValid: false, Confidence: 0.3}, nil
	})
	w := NewWatcher(NewChecker(cls, quiet), 5*time.Millisecond)
	defer w.Close()

	w.Update("AAAAAAAAA1")
	require.Equal(t, "AAAAAAAAA1", <-started)

	w.Update("BBBBBBBBB2")

	select {
	case res := <-w.Results():
		assert.Equal(t, "BBBBBBBBB2", res.Ref, "stale result never delivered")
		assert.Equal(t, StatusInvalid, res.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("no result")
	}
	assert.Eventually(t, func() bool { return cancelled.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestWatcherCloseStopsDelivery(t *testing.T) {
	cls := &countingClassifier{verdict: Verdict{IsValid: true, Confidence: 0.9}}
	w := NewWatcher(NewChecker(cls, quiet), 50*time.Millisecond)

	w.Update("QGH7XK2P9L")
	w.Close()
	w.Close()
	w.Update("QGH7XK2P9M")

	_, ok := <-w.Results()
	assert.False(t, ok, "results closed without delivery")
	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, cls.Calls())
}
