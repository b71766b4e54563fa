package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/metrics"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// ContributionRequest is a payment into a group's kitty.
type ContributionRequest struct {
	GroupID string

	// MemberID defaults to the actor. Members may only contribute as
	// themselves.
	MemberID string

	// MemberName defaults to the member's name in the group.
	MemberName string

	Amount int64
	Ref    string
}

// RecordContribution increments the kitty balance and stores the
// contribution in one transaction. It returns the contribution and the group
// as committed with it.
func (l *Ledger) RecordContribution(ctx context.Context, actor models.Identity, req ContributionRequest) (*models.Contribution, *models.Group, error) {
	if req.MemberID == "" {
		req.MemberID = actor.UID
	}
	ref := NormalizeRef(req.Ref)
	payload := map[string]any{"amount": req.Amount, "ref": ref, "memberId": req.MemberID}

	if req.Amount <= 0 {
		return nil, nil, invalidArg("amount must be positive, got %d", req.Amount)
	}
	if ref == "" {
		return nil, nil, invalidArg("payment reference is required")
	}

	now := l.now()
	contribution := &models.Contribution{
		GroupID:    req.GroupID,
		MemberID:   req.MemberID,
		MemberName: req.MemberName,
		Amount:     req.Amount,
		Date:       now.UTC().Format(time.RFC3339),
		Ref:        ref,
		CreatedAt:  now.Unix(),
	}

	var group *models.Group
	err := l.store.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		group, err = tx.GetGroup(ctx, req.GroupID)
		if err != nil {
			return err
		}
		if err := requireMember(group, actor, groupPath(req.GroupID), "update", payload); err != nil {
			return err
		}
		if req.MemberID != actor.UID {
			return denied(groupPath(req.GroupID), "update", "cannot contribute on behalf of another member", payload)
		}
		if contribution.MemberName == "" {
			contribution.MemberName = group.Members[group.MemberIndex(actor.UID)].Name
		}

		newBalance := group.KittyBalance + req.Amount
		if err := tx.SetKittyBalance(ctx, req.GroupID, newBalance); err != nil {
			return err
		}
		if err := tx.InsertContribution(ctx, contribution); err != nil {
			return err
		}
		group.KittyBalance = newBalance
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("record contribution: %w", translate(err, nil))
	}

	metrics.ContributionsTotal.Inc()
	metrics.ContributedAmount.Add(float64(req.Amount))
	l.publish(live.Event{
		Kind:         live.KindContribution,
		GroupID:      req.GroupID,
		Group:        group,
		Contribution: contribution,
	})
	return contribution, group, nil
}

// ListContributions returns the group's contributions, newest first.
func (l *Ledger) ListContributions(ctx context.Context, actor models.Identity, groupID string) ([]*models.Contribution, error) {
	group, err := l.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(group, actor, groupPath(groupID)+"/contributions", "list", nil); err != nil {
		return nil, err
	}
	contributions, err := l.store.ListContributionsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	return contributions, nil
}

// ContributionHistory is every contribution to the groups a user belongs to.
type ContributionHistory struct {
	// Contributions are newest first and carry their group's name.
	Contributions []*models.Contribution

	// TotalContributed sums the user's own contributions.
	TotalContributed int64
}

// ContributionHistory lists contributions across all of actor's groups.
func (l *Ledger) ContributionHistory(ctx context.Context, actor models.Identity) (*ContributionHistory, error) {
	if actor.UID == "" {
		return nil, denied("contributions", "list", "unauthenticated", nil)
	}
	contributions, err := l.store.ListContributionsByMember(ctx, actor.UID)
	if err != nil {
		return nil, fmt.Errorf("contribution history: %w", err)
	}

	history := &ContributionHistory{Contributions: contributions}
	for _, c := range contributions {
		if c.MemberID == actor.UID {
			history.TotalContributed += c.Amount
		}
	}
	return history, nil
}
