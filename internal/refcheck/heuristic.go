package refcheck

import (
	"context"
	"regexp"
	"strings"
)

// M-Pesa transaction codes are ten upper-case alphanumerics starting with a
// letter, e.g. QGH7XK2P9L.
var mpesaCode = regexp.MustCompile(`^[A-Z][A-Z0-9]{9}$`)

// HeuristicClassifier recognises the shape of an M-Pesa transaction code.
// It is used when no remote classifier is configured.
type HeuristicClassifier struct{}

func (HeuristicClassifier) Classify(ctx context.Context, ref string) (Verdict, error) {
	if err := ctx.Err(); err != nil {
		return Verdict{}, err
	}

	code := strings.ToUpper(strings.TrimSpace(ref))
	if !mpesaCode.MatchString(code) {
		if len(code) == 10 {
			return Verdict{IsValid: false, Confidence: 0.7}, nil
		}
		return Verdict{IsValid: false, Confidence: 0.9}, nil
	}

	digits := strings.IndexFunc(code, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
	if !digits {
		// All letters is legal but rare.
		return Verdict{IsValid: true, Confidence: 0.5}, nil
	}
	return Verdict{IsValid: true, Confidence: 0.85}, nil
}
