package ledger

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/metrics"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// VoteResult is the loan after a vote was recorded.
type VoteResult struct {
	Loan *models.Loan

	// Transitioned is true when this vote moved the loan out of pending.
	Transitioned bool
}

// CastVote records actor's ballot on a loan and applies the majority rule.
//
// The checks run in a fixed order: a repeat voter always gets
// ErrDuplicateVote, even on a resolved loan; a new voter on a resolved loan
// gets ErrInvalidState. Nothing is written in either case.
func (l *Ledger) CastVote(ctx context.Context, actor models.Identity, loanID string, approve bool) (*VoteResult, error) {
	payload := map[string]any{"userId": actor.UID, "vote": approve}

	var (
		loan  *models.Loan
		group *models.Group
		prev  models.LoanStatus
	)
	err := l.store.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		loan, err = tx.GetLoan(ctx, loanID)
		if err != nil {
			return err
		}
		group, err = tx.GetGroup(ctx, loan.GroupID)
		if err != nil {
			return err
		}
		if err := requireMember(group, actor, loanPath(loanID), "update", payload); err != nil {
			return err
		}
		if loan.HasVoted(actor.UID) {
			return fmt.Errorf("%w: %s already voted on loan %s", ErrDuplicateVote, actor.UID, loanID)
		}
		if loan.Status.Terminal() {
			return fmt.Errorf("%w: loan %s is already %s", ErrInvalidState, loanID, loan.Status)
		}

		vote := models.Vote{UserID: actor.UID, Approve: approve, CastAt: l.now().Unix()}
		votes := append(append([]models.Vote(nil), loan.Votes...), vote)
		status := Resolve(votes, len(group.Members))

		if err := tx.InsertVote(ctx, loanID, vote); err != nil {
			return translate(err, ErrDuplicateVote)
		}
		if status != loan.Status {
			if err := tx.SetLoanStatus(ctx, loanID, status, vote.CastAt); err != nil {
				return err
			}
			loan.ResolvedAt = vote.CastAt
		}

		prev = loan.Status
		loan.Votes = votes
		loan.Status = status
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cast vote: %w", translate(err, nil))
	}

	metrics.LoanVotesTotal.WithLabelValues(strconv.FormatBool(approve)).Inc()
	result := &VoteResult{Loan: loan, Transitioned: prev != loan.Status}
	if result.Transitioned {
		metrics.LoanResolutionsTotal.WithLabelValues(string(loan.Status)).Inc()
	}

	l.publish(live.Event{Kind: live.KindLoan, GroupID: loan.GroupID, Loan: loan})

	if result.Transitioned && loan.Status == models.LoanApproved && l.onApproved != nil {
		l.onApproved(ctx, loan, group)
	}
	return result, nil
}
