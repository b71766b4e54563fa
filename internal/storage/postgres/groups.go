package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	return s.WithTx(ctx, func(tx storage.Tx) error {
		_, err := tx.(*pgTx).q.Exec(ctx,
			`INSERT INTO groups (id, name, description, created_by, kitty_balance, merry_go_round_index, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
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

func (s *Store) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return getGroup(ctx, s.db, groupID, false)
}

// GetGroup locks the group row until the transaction ends.
func (t *pgTx) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return getGroup(ctx, t.q, groupID, true)
}

func getGroup(ctx context.Context, q querier, groupID string, lock bool) (*models.Group, error) {
	group := &models.Group{}
	err := q.QueryRow(ctx,
		`SELECT id, name, description, created_by, kitty_balance, merry_go_round_index, created_at
		 FROM groups WHERE id = $1`+lockClause(lock),
		groupID,
	).Scan(&group.ID, &group.Name, &group.Description, &group.CreatedBy,
		&group.KittyBalance, &group.MerryGoRoundIndex, &group.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("group not found: %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	rows, err := q.Query(ctx,
		"SELECT member_id, name, avatar_url FROM group_members WHERE group_id = $1 ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		group.Members = append(group.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return group, nil
}

func (s *Store) ListGroupsByMember(ctx context.Context, memberID string) ([]*models.Group, error) {
	ids, err := collectIDs(ctx, s.db,
		`SELECT g.id FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.member_id = $1
		 ORDER BY g.created_at, g.id`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups by member: %w", err)
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

func (t *pgTx) AddMember(ctx context.Context, groupID string, member models.Member) error {
	_, err := t.q.Exec(ctx,
		`INSERT INTO group_members (group_id, member_id, name, avatar_url, position)
		 VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position) + 1, 0) FROM group_members WHERE group_id = $1))`,
		groupID, member.ID, member.Name, member.AvatarURL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", mapError(err))
	}
	return nil
}

func (t *pgTx) RemoveMember(ctx context.Context, groupID, memberID string) error {
	tag, err := t.q.Exec(ctx,
		"DELETE FROM group_members WHERE group_id = $1 AND member_id = $2",
		groupID, memberID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return expectOneRow(tag, "member", memberID)
}

func (t *pgTx) SetKittyBalance(ctx context.Context, groupID string, balance int64) error {
	tag, err := t.q.Exec(ctx,
		"UPDATE groups SET kitty_balance = $1 WHERE id = $2",
		balance, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update kitty balance: %w", mapError(err))
	}
	return expectOneRow(tag, "group", groupID)
}

func (t *pgTx) SetRotationIndex(ctx context.Context, groupID string, index int) error {
	tag, err := t.q.Exec(ctx,
		"UPDATE groups SET merry_go_round_index = $1 WHERE id = $2",
		index, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update merry-go-round index: %w", mapError(err))
	}
	return expectOneRow(tag, "group", groupID)
}

// collectIDs runs a single-column query and returns its values.
func collectIDs(ctx context.Context, q querier, sql string, args ...any) ([]string, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
