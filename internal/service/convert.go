package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/refcheck"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
)

func toPBMember(m models.Member) *pb.Member {
	return &pb.Member{Id: m.ID, Name: m.Name, AvatarUrl: m.AvatarURL}
}

func toPBGroup(g *models.Group) *pb.Group {
	if g == nil {
		return nil
	}
	members := make([]*pb.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = toPBMember(m)
	}
	out := &pb.Group{
		Id:                g.ID,
		Name:              g.Name,
		Description:       g.Description,
		CreatedBy:         g.CreatedBy,
		Members:           members,
		KittyBalance:      g.KittyBalance,
		MerryGoRoundIndex: int32(g.MerryGoRoundIndex),
		CreatedAt:         g.CreatedAt,
	}
	if b, ok := g.Beneficiary(); ok {
		out.Beneficiary = toPBMember(b)
	}
	return out
}

func toPBGroups(groups []*models.Group) []*pb.Group {
	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toPBGroup(g)
	}
	return out
}

func toPBContribution(c *models.Contribution) *pb.Contribution {
	if c == nil {
		return nil
	}
	return &pb.Contribution{
		Id:         c.ID,
		GroupId:    c.GroupID,
		MemberId:   c.MemberID,
		MemberName: c.MemberName,
		Amount:     c.Amount,
		Ref:        c.Ref,
		Date:       c.Date,
		CreatedAt:  c.CreatedAt,
		GroupName:  c.GroupName,
	}
}

func toPBCheck(r refcheck.Result) *pb.ReferenceCheck {
	return &pb.ReferenceCheck{
		Ref:        r.Ref,
		Status:     string(r.Status),
		IsValid:    r.Verdict.IsValid,
		Confidence: r.Verdict.Confidence,
		Degraded:   r.Degraded,
	}
}

func toPBLoan(l *models.Loan) *pb.Loan {
	if l == nil {
		return nil
	}
	votes := make([]*pb.Vote, len(l.Votes))
	for i, v := range l.Votes {
		votes[i] = &pb.Vote{UserId: v.UserID, Approve: v.Approve, CastAt: v.CastAt}
	}
	approvals, rejections := ledger.Tally(l.Votes)
	return &pb.Loan{
		Id:         l.ID,
		GroupId:    l.GroupID,
		MemberId:   l.MemberID,
		MemberName: l.MemberName,
		Amount:     l.Amount,
		Status:     string(l.Status),
		Votes:      votes,
		Approvals:  int32(approvals),
		Rejections: int32(rejections),
		CreatedAt:  l.CreatedAt,
		ResolvedAt: l.ResolvedAt,
	}
}

func toPBMessage(m *models.Message) *pb.Message {
	if m == nil {
		return nil
	}
	return &pb.Message{
		Id:        m.ID,
		GroupId:   m.GroupID,
		SenderId:  m.SenderID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func toPBReceipt(r *models.Receipt) *pb.Receipt {
	if r == nil {
		return nil
	}
	return &pb.Receipt{
		Id:         r.ID,
		GroupId:    r.GroupID,
		Url:        r.URL,
		UploadedBy: r.UploadedBy,
		FileName:   r.FileName,
		CreatedAt:  r.CreatedAt,
	}
}

func toPBUser(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoUrl:    u.PhotoURL,
		CreatedAt:   timestamppb.New(time.Unix(u.CreatedAt, 0)),
	}
}

func toPBContributions(contributions []*models.Contribution) []*pb.Contribution {
	out := make([]*pb.Contribution, len(contributions))
	for i, c := range contributions {
		out[i] = toPBContribution(c)
	}
	return out
}

func toPBEvent(ev live.Event) *pb.GroupEvent {
	return &pb.GroupEvent{
		Kind:         string(ev.Kind),
		GroupId:      ev.GroupID,
		Group:        toPBGroup(ev.Group),
		Contribution: toPBContribution(ev.Contribution),
		Loan:         toPBLoan(ev.Loan),
		Message:      toPBMessage(ev.Message),
		Receipt:      toPBReceipt(ev.Receipt),
	}
}
