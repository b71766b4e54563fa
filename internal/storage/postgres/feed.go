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

func (s *Store) CreateMessage(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt == 0 {
		msg.CreatedAt = time.Now().UnixMilli()
	}

	_, err := s.db.Exec(ctx,
		"INSERT INTO messages (id, group_id, sender_id, text, created_at) VALUES ($1, $2, $3, $4, $5)",
		msg.ID, msg.GroupID, msg.SenderID, msg.Text, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListMessagesByGroup(ctx context.Context, groupID string) ([]*models.Message, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, group_id, sender_id, text, created_at
		 FROM messages WHERE group_id = $1
		 ORDER BY created_at, seq`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	messages, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[models.Message])
	if err != nil {
		return nil, fmt.Errorf("failed to scan messages: %w", err)
	}
	return messages, nil
}

func (s *Store) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO receipts (id, group_id, url, uploaded_by, file_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		receipt.ID, receipt.GroupID, receipt.URL, receipt.UploadedBy, receipt.FileName, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create receipt: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListReceiptsByGroup(ctx context.Context, groupID string) ([]*models.Receipt, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, group_id, url, uploaded_by, file_name, created_at
		 FROM receipts WHERE group_id = $1
		 ORDER BY created_at DESC, seq DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	receipts, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[models.Receipt])
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}
	return receipts, nil
}

const userColumns = "id, email, display_name, photo_url, password_hash, created_at, updated_at"

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.Exec(ctx,
		"INSERT INTO users ("+userColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
		user.ID, user.Email, user.DisplayName, user.PhotoURL, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email", email)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *Store) getUser(ctx context.Context, column, value string) (*models.User, error) {
	rows, err := s.db.Query(ctx, "SELECT "+userColumns+" FROM users WHERE "+column+" = $1", value)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[models.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user not found: %s: %w", value, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	return user, nil
}
