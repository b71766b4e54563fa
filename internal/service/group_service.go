package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
	"github.com/Denniskaninu/chama-smart-sync/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	ledger *ledger.Ledger
	failures
}

var _ protoconnect.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a new GroupService over the ledger. Permission
// failures are reported on bus, which may be nil.
func NewGroupService(l *ledger.Ledger, bus *notify.Bus) *GroupService {
	return &GroupService{ledger: l, failures: failures{bus: bus}}
}

// CreateGroup founds a group with the caller as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received", "name", req.Msg.Name)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	group, err := s.ledger.CreateGroup(ctx, actor, req.Msg.Name, req.Msg.Description)
	if err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, s.toConnect(ctx, protoconnect.GroupServiceCreateGroupProcedure, err)
	}

	slog.Info("Group created", "group_id", group.ID, "created_by", actor.UID)
	return connect.NewResponse(&pb.CreateGroupResponse{Group: toPBGroup(group)}), nil
}

// GetGroup retrieves a group by ID. Any signed-in user may read a group so
// that invite links can show what they are joining.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupId)

	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	group, err := s.ledger.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.GroupServiceGetGroupProcedure, err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)
	return connect.NewResponse(&pb.GetGroupResponse{Group: toPBGroup(group)}), nil
}

// ListGroups returns the caller's groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListGroups request received", "user_id", actor.UID)

	groups, err := s.ledger.ListGroups(ctx, actor)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, s.toConnect(ctx, protoconnect.GroupServiceListGroupsProcedure, err)
	}

	slog.Info("ListGroups successful", "count", len(groups))
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: toPBGroups(groups)}), nil
}

// JoinGroup adds the caller to a group.
func (s *GroupService) JoinGroup(ctx context.Context, req *connect.Request[pb.JoinGroupRequest]) (*connect.Response[pb.JoinGroupResponse], error) {
	slog.Info("JoinGroup request received", "group_id", req.Msg.GroupId)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	group, err := s.ledger.JoinGroup(ctx, actor, req.Msg.GroupId)
	if err != nil {
		slog.Error("JoinGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.GroupServiceJoinGroupProcedure, err)
	}

	slog.Info("JoinGroup successful", "group_id", group.ID, "user_id", actor.UID, "members", len(group.Members))
	return connect.NewResponse(&pb.JoinGroupResponse{Group: toPBGroup(group)}), nil
}

// LeaveGroup removes the caller from a group.
func (s *GroupService) LeaveGroup(ctx context.Context, req *connect.Request[pb.LeaveGroupRequest]) (*connect.Response[pb.LeaveGroupResponse], error) {
	slog.Info("LeaveGroup request received", "group_id", req.Msg.GroupId)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	group, err := s.ledger.LeaveGroup(ctx, actor, req.Msg.GroupId)
	if err != nil {
		slog.Error("LeaveGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.GroupServiceLeaveGroupProcedure, err)
	}

	slog.Info("LeaveGroup successful", "group_id", group.ID, "user_id", actor.UID, "members", len(group.Members))
	return connect.NewResponse(&pb.LeaveGroupResponse{Group: toPBGroup(group)}), nil
}

// AdvanceRotation moves the merry-go-round to the next beneficiary.
func (s *GroupService) AdvanceRotation(ctx context.Context, req *connect.Request[pb.AdvanceRotationRequest]) (*connect.Response[pb.AdvanceRotationResponse], error) {
	slog.Info("AdvanceRotation request received", "group_id", req.Msg.GroupId)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	var from *int
	if req.Msg.FromIndex != nil {
		i := int(req.Msg.GetFromIndex())
		from = &i
	}

	rot, err := s.ledger.Advance(ctx, actor, req.Msg.GroupId, from)
	if err != nil {
		slog.Error("AdvanceRotation failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.GroupServiceAdvanceRotationProcedure, err)
	}

	slog.Info("AdvanceRotation successful",
		"group_id", req.Msg.GroupId,
		"index", rot.Index,
		"beneficiary", rot.Beneficiary.ID,
	)
	return connect.NewResponse(&pb.AdvanceRotationResponse{
		Group:       toPBGroup(rot.Group),
		Index:       int32(rot.Index),
		Beneficiary: toPBMember(rot.Beneficiary),
	}), nil
}

// WatchGroup streams a snapshot of the group followed by every committed
// change to it, until the client goes away or the server shuts down. If the
// stream falls behind, it is resubscribed and a fresh snapshot marked
// resync is sent in place of the missed events.
func (s *GroupService) WatchGroup(ctx context.Context, req *connect.Request[pb.WatchGroupRequest], stream *connect.ServerStream[pb.GroupEvent]) error {
	slog.Info("WatchGroup request received", "group_id", req.Msg.GroupId)

	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	if err := checkRequest(req.Msg); err != nil {
		return err
	}

	return s.watch(ctx, actor, req.Msg.GroupId, stream.Send)
}

// watch runs the WatchGroup loop, handing every outgoing event to send.
func (s *GroupService) watch(ctx context.Context, actor models.Identity, groupID string, send func(*pb.GroupEvent) error) error {
	resync := false
	for {
		sub, group, err := s.ledger.Watch(ctx, actor, groupID)
		if err != nil {
			slog.Error("WatchGroup failed", "group_id", groupID, "resync", resync, "error", err)
			return s.toConnect(ctx, protoconnect.GroupServiceWatchGroupProcedure, err)
		}

		err = forward(ctx, sub, send, &pb.GroupEvent{
			Kind:    string(live.KindGroup),
			GroupId: group.ID,
			Group:   toPBGroup(group),
			Resync:  resync,
		})
		sub.Close()
		if !errors.Is(err, live.ErrLagged) {
			if err == nil {
				slog.Info("WatchGroup ended", "group_id", groupID, "user_id", actor.UID)
			}
			return err
		}

		slog.Warn("WatchGroup fell behind, resyncing", "group_id", groupID, "user_id", actor.UID)
		resync = true
	}
}

// forward sends snapshot and then every event of sub. It returns
// live.ErrLagged when the hub dropped the subscription, and nil when ctx
// ends or the subscription is closed for any other reason.
func forward(ctx context.Context, sub *live.Subscription, send func(*pb.GroupEvent) error, snapshot *pb.GroupEvent) error {
	if err := send(snapshot); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Events():
			if !ok {
				return sub.Err()
			}
			if err := send(toPBEvent(ev)); err != nil {
				return err
			}
		}
	}
}
