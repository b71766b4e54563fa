package ledger

import (
	"context"
	"fmt"

	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/metrics"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// Rotation is the merry-go-round state after an advance.
type Rotation struct {
	Index       int
	Beneficiary models.Member
	Group       *models.Group
}

// Advance moves the merry-go-round pointer to the next member.
//
// If fromIndex is non-nil the advance only applies when the stored index
// still equals it, so two clients advancing from the same stale view cannot
// skip a beneficiary.
func (l *Ledger) Advance(ctx context.Context, actor models.Identity, groupID string, fromIndex *int) (*Rotation, error) {
	payload := map[string]any{}
	if fromIndex != nil {
		payload["fromIndex"] = *fromIndex
	}

	var group *models.Group
	err := l.store.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		group, err = tx.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		next, err := NextIndex(group.MerryGoRoundIndex, len(group.Members))
		if err != nil {
			return err
		}
		if err := requireMember(group, actor, groupPath(groupID), "update", payload); err != nil {
			return err
		}
		if fromIndex != nil && *fromIndex != group.MerryGoRoundIndex {
			return fmt.Errorf("%w: rotation is at %d, not %d", ErrInvalidState, group.MerryGoRoundIndex, *fromIndex)
		}

		if err := tx.SetRotationIndex(ctx, groupID, next); err != nil {
			return err
		}
		group.MerryGoRoundIndex = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("advance rotation: %w", translate(err, nil))
	}

	metrics.RotationsTotal.Inc()
	l.publish(live.Event{Kind: live.KindGroup, GroupID: groupID, Group: group})

	beneficiary, _ := group.Beneficiary()
	return &Rotation{Index: group.MerryGoRoundIndex, Beneficiary: beneficiary, Group: group}, nil
}
