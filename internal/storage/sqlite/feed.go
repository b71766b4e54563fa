package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

// CreateMessage inserts a chat message.
func (s *SQLiteStore) CreateMessage(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt == 0 {
		msg.CreatedAt = time.Now().UnixMilli()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO messages (id, group_id, sender_id, text, created_at) VALUES (?, ?, ?, ?, ?)",
		msg.ID, msg.GroupID, msg.SenderID, msg.Text, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", mapError(err))
	}
	return nil
}

// ListMessagesByGroup retrieves messages in chronological order.
func (s *SQLiteStore) ListMessagesByGroup(ctx context.Context, groupID string) ([]*models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, sender_id, text, created_at
		 FROM messages WHERE group_id = ?
		 ORDER BY created_at, rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// CreateReceipt inserts a receipt record.
func (s *SQLiteStore) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO receipts (id, group_id, url, uploaded_by, file_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		receipt.ID, receipt.GroupID, receipt.URL, receipt.UploadedBy, receipt.FileName, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create receipt: %w", mapError(err))
	}
	return nil
}

// ListReceiptsByGroup retrieves receipts, newest first.
func (s *SQLiteStore) ListReceiptsByGroup(ctx context.Context, groupID string) ([]*models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, url, uploaded_by, file_name, created_at
		 FROM receipts WHERE group_id = ?
		 ORDER BY created_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		r := &models.Receipt{}
		if err := rows.Scan(&r.ID, &r.GroupID, &r.URL, &r.UploadedBy, &r.FileName, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, nil
}
