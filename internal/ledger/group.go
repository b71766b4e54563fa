package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// CreateGroup founds a group with actor as its sole member.
func (l *Ledger) CreateGroup(ctx context.Context, actor models.Identity, name, description string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if actor.UID == "" {
		return nil, denied("groups", "create", "unauthenticated", map[string]any{"name": name})
	}
	if name == "" {
		return nil, invalidArg("group name is required")
	}
	if description == "" {
		return nil, invalidArg("group description is required")
	}

	group := &models.Group{
		Name:        name,
		Description: description,
		CreatedBy:   actor.UID,
		Members:     []models.Member{actor.Member()},
		CreatedAt:   l.now().Unix(),
	}
	if err := l.store.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", translate(err, nil))
	}
	return group, nil
}

// GetGroup returns the group.
func (l *Ledger) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := l.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, translate(err, nil)
	}
	return group, nil
}

// ListGroups returns the groups actor belongs to.
func (l *Ledger) ListGroups(ctx context.Context, actor models.Identity) ([]*models.Group, error) {
	groups, err := l.store.ListGroupsByMember(ctx, actor.UID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// JoinGroup appends actor to the member list. Joining a group twice returns
// the group unchanged.
func (l *Ledger) JoinGroup(ctx context.Context, actor models.Identity, groupID string) (*models.Group, error) {
	if actor.UID == "" {
		return nil, denied(groupPath(groupID), "update", "unauthenticated", nil)
	}

	var (
		group   *models.Group
		changed bool
	)
	err := l.store.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		group, err = tx.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if group.HasMember(actor.UID) {
			return nil
		}

		member := actor.Member()
		if err := tx.AddMember(ctx, groupID, member); err != nil {
			return err
		}
		group.Members = append(group.Members, member)
		changed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("join group: %w", translate(err, nil))
	}

	if changed {
		l.publish(live.Event{Kind: live.KindGroup, GroupID: groupID, Group: group})
	}
	return group, nil
}

// LeaveGroup removes actor from the member list and keeps the rotation
// pointer within bounds. Leaving a group one is not in is a no-op.
func (l *Ledger) LeaveGroup(ctx context.Context, actor models.Identity, groupID string) (*models.Group, error) {
	var (
		group   *models.Group
		changed bool
	)
	err := l.store.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		group, err = tx.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		pos := group.MemberIndex(actor.UID)
		if pos < 0 {
			return nil
		}

		if err := tx.RemoveMember(ctx, groupID, actor.UID); err != nil {
			return err
		}
		group.Members = append(group.Members[:pos], group.Members[pos+1:]...)

		index := indexAfterRemoval(group.MerryGoRoundIndex, pos, len(group.Members))
		if index != group.MerryGoRoundIndex {
			if err := tx.SetRotationIndex(ctx, groupID, index); err != nil {
				return err
			}
			group.MerryGoRoundIndex = index
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("leave group: %w", translate(err, nil))
	}

	if changed {
		l.publish(live.Event{Kind: live.KindGroup, GroupID: groupID, Group: group})
	}
	return group, nil
}

// Watch subscribes actor to the group's live events and returns the current
// snapshot. The subscription is opened before the snapshot is read, so no
// change committed after the snapshot is missed; a change may be seen twice.
// The caller must Close the subscription.
func (l *Ledger) Watch(ctx context.Context, actor models.Identity, groupID string) (*live.Subscription, *models.Group, error) {
	if l.hub == nil {
		return nil, nil, fmt.Errorf("watch group: %w: live updates disabled", ErrInvalidState)
	}

	sub := l.hub.Subscribe(ctx, groupID)
	group, err := l.GetGroup(ctx, groupID)
	if err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("watch group: %w", err)
	}
	if err := requireMember(group, actor, groupPath(groupID), "get", nil); err != nil {
		sub.Close()
		return nil, nil, err
	}
	return sub, group, nil
}
