// Package ledger implements the group ledger: the group aggregate, the
// contribution recorder, the loan voting state machine and the
// merry-go-round rotator. Every mutation runs inside a single store
// transaction and is published to live subscribers only after commit.
package ledger

import (
	"context"
	"time"

	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// ApprovalHook runs after a vote moves a loan to approved and the
// transaction has committed. It is where disbursement would be wired.
type ApprovalHook func(ctx context.Context, loan *models.Loan, group *models.Group)

// Option configures a Ledger.
type Option func(*Ledger)

// WithBalancePolicy sets whether RequestLoan rejects amounts above the kitty
// balance. The default is to enforce.
func WithBalancePolicy(enforce bool) Option {
	return func(l *Ledger) { l.enforceBalance = enforce }
}

// WithApprovalHook registers a callback for approved loans.
func WithApprovalHook(hook ApprovalHook) Option {
	return func(l *Ledger) { l.onApproved = hook }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// Ledger coordinates group state changes.
type Ledger struct {
	store          storage.Store
	hub            *live.Hub
	enforceBalance bool
	onApproved     ApprovalHook
	now            func() time.Time
}

// New creates a Ledger over store. hub may be nil, in which case nothing is
// published.
func New(store storage.Store, hub *live.Hub, opts ...Option) *Ledger {
	l := &Ledger{
		store:          store,
		hub:            hub,
		enforceBalance: true,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Hub returns the live hub the ledger publishes to.
func (l *Ledger) Hub() *live.Hub {
	return l.hub
}

func (l *Ledger) publish(ev live.Event) {
	if l.hub != nil {
		l.hub.Publish(ev)
	}
}

func groupPath(groupID string) string {
	return "groups/" + groupID
}

func loanPath(loanID string) string {
	return "loans/" + loanID
}

// requireMember returns a PermissionError unless actor belongs to group.
func requireMember(group *models.Group, actor models.Identity, path, op string, payload map[string]any) error {
	if actor.UID == "" {
		return denied(path, op, "unauthenticated", payload)
	}
	if !group.HasMember(actor.UID) {
		return denied(path, op, "not a member of the group", payload)
	}
	return nil
}
