package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
	"github.com/Denniskaninu/chama-smart-sync/pkg/proto/protoconnect"
)

// LoanService implements the Connect LoanService.
type LoanService struct {
	ledger *ledger.Ledger
	failures
}

var _ protoconnect.LoanServiceHandler = (*LoanService)(nil)

func NewLoanService(l *ledger.Ledger, bus *notify.Bus) *LoanService {
	return &LoanService{ledger: l, failures: failures{bus: bus}}
}

// RequestLoan opens a pending loan for the caller.
func (s *LoanService) RequestLoan(ctx context.Context, req *connect.Request[pb.RequestLoanRequest]) (*connect.Response[pb.RequestLoanResponse], error) {
	slog.Info("RequestLoan request received", "group_id", req.Msg.GroupId, "amount", req.Msg.Amount)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	loan, err := s.ledger.RequestLoan(ctx, actor, ledger.LoanRequest{
		GroupID: req.Msg.GroupId,
		Amount:  req.Msg.Amount,
	})
	if err != nil {
		slog.Error("RequestLoan failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.LoanServiceRequestLoanProcedure, err)
	}

	slog.Info("Loan requested", "loan_id", loan.ID, "group_id", loan.GroupID, "member_id", loan.MemberID)
	return connect.NewResponse(&pb.RequestLoanResponse{Loan: toPBLoan(loan)}), nil
}

// GetLoan retrieves a loan with its votes. Only members of the loan's group
// may read it.
func (s *LoanService) GetLoan(ctx context.Context, req *connect.Request[pb.GetLoanRequest]) (*connect.Response[pb.GetLoanResponse], error) {
	slog.Info("GetLoan request received", "loan_id", req.Msg.LoanId)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	loan, err := s.ledger.GetLoan(ctx, actor, req.Msg.LoanId)
	if err != nil {
		slog.Error("GetLoan failed", "loan_id", req.Msg.LoanId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.LoanServiceGetLoanProcedure, err)
	}

	slog.Info("GetLoan successful", "loan_id", loan.ID, "status", loan.Status)
	return connect.NewResponse(&pb.GetLoanResponse{Loan: toPBLoan(loan)}), nil
}

// ListLoans returns a group's loans, optionally filtered by status.
func (s *LoanService) ListLoans(ctx context.Context, req *connect.Request[pb.ListLoansRequest]) (*connect.Response[pb.ListLoansResponse], error) {
	slog.Info("ListLoans request received", "group_id", req.Msg.GroupId, "status", req.Msg.Status)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	loans, err := s.ledger.ListLoans(ctx, actor, req.Msg.GroupId, models.LoanStatus(req.Msg.Status))
	if err != nil {
		slog.Error("ListLoans failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.LoanServiceListLoansProcedure, err)
	}

	out := make([]*pb.Loan, len(loans))
	for i, l := range loans {
		out[i] = toPBLoan(l)
	}

	slog.Info("ListLoans successful", "group_id", req.Msg.GroupId, "count", len(out))
	return connect.NewResponse(&pb.ListLoansResponse{Loans: out}), nil
}

// CastVote records the caller's ballot and applies the majority rule.
func (s *LoanService) CastVote(ctx context.Context, req *connect.Request[pb.CastVoteRequest]) (*connect.Response[pb.CastVoteResponse], error) {
	slog.Info("CastVote request received", "loan_id", req.Msg.LoanId, "approve", req.Msg.Approve)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	res, err := s.ledger.CastVote(ctx, actor, req.Msg.LoanId, req.Msg.Approve)
	if err != nil {
		slog.Error("CastVote failed", "loan_id", req.Msg.LoanId, "user_id", actor.UID, "error", err)
		return nil, s.toConnect(ctx, protoconnect.LoanServiceCastVoteProcedure, err)
	}

	slog.Info("Vote cast",
		"loan_id", res.Loan.ID,
		"user_id", actor.UID,
		"status", res.Loan.Status,
		"resolved", res.Transitioned,
	)
	return connect.NewResponse(&pb.CastVoteResponse{
		Loan:     toPBLoan(res.Loan),
		Resolved: res.Transitioned,
	}), nil
}
