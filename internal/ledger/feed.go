package ledger

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

// PostMessage adds a chat message to the group.
func (l *Ledger) PostMessage(ctx context.Context, actor models.Identity, groupID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalidArg("message text is required")
	}

	group, err := l.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	path := groupPath(groupID) + "/messages"
	if err := requireMember(group, actor, path, "create", map[string]any{"text": text}); err != nil {
		return nil, err
	}

	msg := &models.Message{
		GroupID:   groupID,
		SenderID:  actor.UID,
		Text:      text,
		CreatedAt: l.now().UnixMilli(),
	}
	if err := l.store.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("post message: %w", translate(err, nil))
	}

	l.publish(live.Event{Kind: live.KindMessage, GroupID: groupID, Message: msg})
	return msg, nil
}

// ListMessages returns the group's messages, oldest first. Only members may
// read them.
func (l *Ledger) ListMessages(ctx context.Context, actor models.Identity, groupID string) ([]*models.Message, error) {
	group, err := l.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(group, actor, groupPath(groupID)+"/messages", "list", nil); err != nil {
		return nil, err
	}
	msgs, err := l.store.ListMessagesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// AddReceipt records the location of an uploaded proof of payment.
func (l *Ledger) AddReceipt(ctx context.Context, actor models.Identity, groupID, fileURL, fileName string) (*models.Receipt, error) {
	u, err := url.Parse(strings.TrimSpace(fileURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, invalidArg("receipt url must be absolute, got %q", fileURL)
	}

	group, err := l.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{"url": u.String(), "fileName": fileName}
	if err := requireMember(group, actor, "receipts", "create", payload); err != nil {
		return nil, err
	}

	receipt := &models.Receipt{
		GroupID:    groupID,
		URL:        u.String(),
		UploadedBy: actor.UID,
		FileName:   strings.TrimSpace(fileName),
		CreatedAt:  l.now().Unix(),
	}
	if err := l.store.CreateReceipt(ctx, receipt); err != nil {
		return nil, fmt.Errorf("add receipt: %w", translate(err, nil))
	}

	l.publish(live.Event{Kind: live.KindReceipt, GroupID: groupID, Receipt: receipt})
	return receipt, nil
}

// ListReceipts returns the group's receipts, newest first.
func (l *Ledger) ListReceipts(ctx context.Context, actor models.Identity, groupID string) ([]*models.Receipt, error) {
	group, err := l.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(group, actor, "receipts", "list", map[string]any{"groupId": groupID}); err != nil {
		return nil, err
	}
	receipts, err := l.store.ListReceiptsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	return receipts, nil
}
