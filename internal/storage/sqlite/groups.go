package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// CreateGroup persists a new group and its initial members in one transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	return s.WithTx(ctx, func(tx storage.Tx) error {
		q := tx.(*sqliteTx).q
		_, err := q.ExecContext(ctx,
			`INSERT INTO groups (id, name, description, created_by, kitty_balance, merry_go_round_index, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			group.ID, group.Name, group.Description, group.CreatedBy,
			group.KittyBalance, group.MerryGoRoundIndex, group.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", mapError(err))
		}

		for _, m := range group.Members {
			if err := tx.AddMember(ctx, group.ID, m); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetGroup retrieves a group by ID, including its ordered members.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return getGroup(ctx, s.db, groupID)
}

// GetGroup retrieves a group inside the transaction.
func (t *sqliteTx) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return getGroup(ctx, t.q, groupID)
}

func getGroup(ctx context.Context, q querier, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := q.QueryRowContext(ctx,
		`SELECT id, name, description, created_by, kitty_balance, merry_go_round_index, created_at
		 FROM groups WHERE id = ?`,
		groupID,
	).Scan(&group.ID, &group.Name, &group.Description, &group.CreatedBy,
		&group.KittyBalance, &group.MerryGoRoundIndex, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group not found: %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := listMembers(ctx, q, groupID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

func listMembers(ctx context.Context, q querier, groupID string) ([]models.Member, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT member_id, name, avatar_url FROM group_members WHERE group_id = ? ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// ListGroupsByMember retrieves every group memberID belongs to.
func (s *SQLiteStore) ListGroupsByMember(ctx context.Context, memberID string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.member_id = ?
		 ORDER BY g.created_at, g.id`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups by member: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	groups := make([]*models.Group, 0, len(ids))
	for _, id := range ids {
		group, err := s.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// AddMember appends a member after the current last position.
func (t *sqliteTx) AddMember(ctx context.Context, groupID string, member models.Member) error {
	_, err := t.q.ExecContext(ctx,
		`INSERT INTO group_members (group_id, member_id, name, avatar_url, position)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM group_members WHERE group_id = ?))`,
		groupID, member.ID, member.Name, member.AvatarURL, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", mapError(err))
	}
	return nil
}

// RemoveMember deletes a member from the group.
func (t *sqliteTx) RemoveMember(ctx context.Context, groupID, memberID string) error {
	res, err := t.q.ExecContext(ctx,
		"DELETE FROM group_members WHERE group_id = ? AND member_id = ?",
		groupID, memberID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return expectOneRow(res, "member", memberID)
}

// SetKittyBalance overwrites the group's balance.
func (t *sqliteTx) SetKittyBalance(ctx context.Context, groupID string, balance int64) error {
	res, err := t.q.ExecContext(ctx,
		"UPDATE groups SET kitty_balance = ? WHERE id = ?",
		balance, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update kitty balance: %w", mapError(err))
	}
	return expectOneRow(res, "group", groupID)
}

// SetRotationIndex overwrites the group's merry-go-round pointer.
func (t *sqliteTx) SetRotationIndex(ctx context.Context, groupID string, index int) error {
	res, err := t.q.ExecContext(ctx,
		"UPDATE groups SET merry_go_round_index = ? WHERE id = ?",
		index, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update merry-go-round index: %w", mapError(err))
	}
	return expectOneRow(res, "group", groupID)
}
