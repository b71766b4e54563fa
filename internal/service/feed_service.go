package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
	"github.com/Denniskaninu/chama-smart-sync/pkg/proto/protoconnect"
)

// FeedService implements the Connect FeedService: group chat and payment
// receipts.
type FeedService struct {
	ledger *ledger.Ledger
	failures
}

var _ protoconnect.FeedServiceHandler = (*FeedService)(nil)

func NewFeedService(l *ledger.Ledger, bus *notify.Bus) *FeedService {
	return &FeedService{ledger: l, failures: failures{bus: bus}}
}

func (s *FeedService) PostMessage(ctx context.Context, req *connect.Request[pb.PostMessageRequest]) (*connect.Response[pb.PostMessageResponse], error) {
	slog.Info("PostMessage request received", "group_id", req.Msg.GroupId)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	msg, err := s.ledger.PostMessage(ctx, actor, req.Msg.GroupId, req.Msg.Text)
	if err != nil {
		slog.Error("PostMessage failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.FeedServicePostMessageProcedure, err)
	}

	slog.Info("Message posted", "message_id", msg.ID, "group_id", msg.GroupID)
	return connect.NewResponse(&pb.PostMessageResponse{Message: toPBMessage(msg)}), nil
}

func (s *FeedService) ListMessages(ctx context.Context, req *connect.Request[pb.ListMessagesRequest]) (*connect.Response[pb.ListMessagesResponse], error) {
	slog.Info("ListMessages request received", "group_id", req.Msg.GroupId)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	msgs, err := s.ledger.ListMessages(ctx, actor, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListMessages failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.FeedServiceListMessagesProcedure, err)
	}

	out := make([]*pb.Message, len(msgs))
	for i, m := range msgs {
		out[i] = toPBMessage(m)
	}

	slog.Info("ListMessages successful", "group_id", req.Msg.GroupId, "count", len(out))
	return connect.NewResponse(&pb.ListMessagesResponse{Messages: out}), nil
}

func (s *FeedService) AddReceipt(ctx context.Context, req *connect.Request[pb.AddReceiptRequest]) (*connect.Response[pb.AddReceiptResponse], error) {
	slog.Info("AddReceipt request received", "group_id", req.Msg.GroupId, "file_name", req.Msg.FileName)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	receipt, err := s.ledger.AddReceipt(ctx, actor, req.Msg.GroupId, req.Msg.Url, req.Msg.FileName)
	if err != nil {
		slog.Error("AddReceipt failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.FeedServiceAddReceiptProcedure, err)
	}

	slog.Info("Receipt added", "receipt_id", receipt.ID, "group_id", receipt.GroupID)
	return connect.NewResponse(&pb.AddReceiptResponse{Receipt: toPBReceipt(receipt)}), nil
}

func (s *FeedService) ListReceipts(ctx context.Context, req *connect.Request[pb.ListReceiptsRequest]) (*connect.Response[pb.ListReceiptsResponse], error) {
	slog.Info("ListReceipts request received", "group_id", req.Msg.GroupId)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	receipts, err := s.ledger.ListReceipts(ctx, actor, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListReceipts failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.FeedServiceListReceiptsProcedure, err)
	}

	out := make([]*pb.Receipt, len(receipts))
	for i, r := range receipts {
		out[i] = toPBReceipt(r)
	}

	slog.Info("ListReceipts successful", "group_id", req.Msg.GroupId, "count", len(out))
	return connect.NewResponse(&pb.ListReceiptsResponse{Receipts: out}), nil
}
