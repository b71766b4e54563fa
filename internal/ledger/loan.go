package ledger

import (
	"context"
	"fmt"

	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// LoanRequest asks the group to lend Amount to a member.
type LoanRequest struct {
	GroupID string

	// MemberID defaults to the actor. Members may only borrow for themselves.
	MemberID string

	// MemberName defaults to the member's name in the group.
	MemberName string

	Amount int64
}

// RequestLoan creates a pending loan. The balance check runs in the same
// transaction as the insert; whether it blocks depends on the balance policy.
func (l *Ledger) RequestLoan(ctx context.Context, actor models.Identity, req LoanRequest) (*models.Loan, error) {
	if req.MemberID == "" {
		req.MemberID = actor.UID
	}
	payload := map[string]any{"amount": req.Amount, "memberId": req.MemberID}

	if req.Amount <= 0 {
		return nil, invalidArg("amount must be positive, got %d", req.Amount)
	}

	loan := &models.Loan{
		GroupID:    req.GroupID,
		MemberID:   req.MemberID,
		MemberName: req.MemberName,
		Amount:     req.Amount,
		Status:     models.LoanPending,
		CreatedAt:  l.now().Unix(),
	}

	err := l.store.WithTx(ctx, func(tx storage.Tx) error {
		group, err := tx.GetGroup(ctx, req.GroupID)
		if err != nil {
			return err
		}
		if err := requireMember(group, actor, "loans", "create", payload); err != nil {
			return err
		}
		if req.MemberID != actor.UID {
			return denied("loans", "create", "cannot request a loan on behalf of another member", payload)
		}
		if l.enforceBalance && req.Amount > group.KittyBalance {
			return fmt.Errorf("%w: requested %d, kitty holds %d", ErrInsufficientFunds, req.Amount, group.KittyBalance)
		}
		if loan.MemberName == "" {
			loan.MemberName = group.Members[group.MemberIndex(actor.UID)].Name
		}
		return tx.InsertLoan(ctx, loan)
	})
	if err != nil {
		return nil, fmt.Errorf("request loan: %w", translate(err, nil))
	}

	l.publish(live.Event{Kind: live.KindLoan, GroupID: loan.GroupID, Loan: loan})
	return loan, nil
}

// GetLoan returns the loan with its votes. Only members of the loan's group
// may read it.
func (l *Ledger) GetLoan(ctx context.Context, actor models.Identity, loanID string) (*models.Loan, error) {
	loan, err := l.store.GetLoan(ctx, loanID)
	if err != nil {
		return nil, translate(err, nil)
	}
	group, err := l.GetGroup(ctx, loan.GroupID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(group, actor, loanPath(loanID), "get", nil); err != nil {
		return nil, err
	}
	return loan, nil
}

// ListLoans returns the group's loans, newest first. An empty status lists
// every loan.
func (l *Ledger) ListLoans(ctx context.Context, actor models.Identity, groupID string, status models.LoanStatus) ([]*models.Loan, error) {
	if status != "" && !status.Valid() {
		return nil, invalidArg("unknown loan status %q", status)
	}
	group, err := l.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(group, actor, "loans", "list", map[string]any{"groupId": groupID}); err != nil {
		return nil, err
	}
	loans, err := l.store.ListLoansByGroup(ctx, groupID, status)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}
