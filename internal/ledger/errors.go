package ledger

import (
	"errors"
	"fmt"

	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

var (
	// ErrNotFound is returned when a referenced group or loan does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied is returned when the actor may not perform an operation.
	// The concrete error is a *PermissionError.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDuplicateVote is returned when a user votes twice on one loan.
	ErrDuplicateVote = errors.New("duplicate vote")

	// ErrInvalidState is returned when an operation does not apply to the
	// current state, e.g. advancing a rotation with no members or voting on
	// a resolved loan.
	ErrInvalidState = errors.New("invalid state")

	// ErrInsufficientFunds is returned when a loan exceeds the kitty balance
	// and the balance policy is enforced.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidArgument is returned for malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// PermissionError describes a rejected write: the document it targeted, the
// kind of write and the payload that was attempted.
type PermissionError struct {
	Path      string
	Operation string
	Payload   map[string]any
	Reason    string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s on %s: %s", e.Operation, e.Path, e.Reason)
}

func (e *PermissionError) Unwrap() error {
	return ErrPermissionDenied
}

func denied(path, op, reason string, payload map[string]any) error {
	return &PermissionError{Path: path, Operation: op, Payload: payload, Reason: reason}
}

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// translate maps storage sentinels onto ledger errors; conflict is the error
// a uniqueness violation means for the calling operation.
func translate(err error, conflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, storage.ErrConflict) && conflict != nil:
		return fmt.Errorf("%w: %w", conflict, err)
	case errors.Is(err, storage.ErrConstraint):
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return err
}
