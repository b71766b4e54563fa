package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Denniskaninu/chama-smart-sync/internal/auth"
	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/metrics"
	"github.com/Denniskaninu/chama-smart-sync/internal/middleware"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
)

var validate = newValidator()

// newValidator registers field rules for the generated request messages,
// which cannot carry struct tags.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	groupID := map[string]string{"GroupId": "required"}
	v.RegisterStructValidationMapRules(groupID,
		(*pb.GetGroupRequest)(nil),
		(*pb.JoinGroupRequest)(nil),
		(*pb.LeaveGroupRequest)(nil),
		(*pb.WatchGroupRequest)(nil),
		(*pb.ListContributionsRequest)(nil),
		(*pb.RequestLoanRequest)(nil),
		(*pb.ListMessagesRequest)(nil),
		(*pb.ListReceiptsRequest)(nil),
	)
	v.RegisterStructValidationMapRules(map[string]string{"LoanId": "required"},
		(*pb.GetLoanRequest)(nil),
		(*pb.CastVoteRequest)(nil),
	)
	v.RegisterStructValidationMapRules(map[string]string{
		"Name":        "required,max=120",
		"Description": "required,max=1000",
	}, (*pb.CreateGroupRequest)(nil))
	v.RegisterStructValidationMapRules(map[string]string{
		"GroupId":   "required",
		"FromIndex": "omitempty,min=0",
	}, (*pb.AdvanceRotationRequest)(nil))
	v.RegisterStructValidationMapRules(map[string]string{
		"GroupId":    "required",
		"MemberName": "max=120",
		"Ref":        "max=64",
	}, (*pb.RecordContributionRequest)(nil))
	v.RegisterStructValidationMapRules(map[string]string{"Ref": "max=64"},
		(*pb.CheckReferenceRequest)(nil))
	v.RegisterStructValidationMapRules(map[string]string{
		"GroupId": "required",
		"Status":  "omitempty,oneof=pending approved rejected",
	}, (*pb.ListLoansRequest)(nil))
	v.RegisterStructValidationMapRules(map[string]string{
		"GroupId": "required",
		"Text":    "max=4000",
	}, (*pb.PostMessageRequest)(nil))
	v.RegisterStructValidationMapRules(map[string]string{
		"GroupId":  "required",
		"Url":      "required",
		"FileName": "required,max=255",
	}, (*pb.AddReceiptRequest)(nil))
	v.RegisterStructValidationMapRules(map[string]string{
		"Email":       "required,email",
		"DisplayName": "required,max=120",
		"Password":    "required",
	}, (*pb.RegisterRequest)(nil))
	v.RegisterStructValidationMapRules(map[string]string{
		"Email":    "required",
		"Password": "required",
	}, (*pb.LoginRequest)(nil))
	return v
}

var errThrottled = errors.New("too many reference checks, slow down")

// checkRequest validates a request message against its registered rules.
func checkRequest(msg any) error {
	if err := validate.Struct(msg); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// actorFrom returns the authenticated identity placed in ctx by the auth
// interceptor.
func actorFrom(ctx context.Context) (models.Identity, error) {
	id, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return models.Identity{}, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return id, nil
}

// failures converts ledger errors into Connect errors. Permission errors are
// also published on the notice bus.
type failures struct {
	bus *notify.Bus
}

func (f failures) toConnect(ctx context.Context, procedure string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var permErr *ledger.PermissionError
	switch {
	case errors.As(err, &permErr):
		metrics.PermissionDeniedTotal.WithLabelValues(permErr.Operation).Inc()
		if f.bus != nil {
			f.bus.Emit(ctx, notify.Notice{
				Procedure: procedure,
				UserID:    middleware.GetUserID(ctx),
				Path:      permErr.Path,
				Operation: permErr.Operation,
				Payload:   permErr.Payload,
				Message:   permErr.Error(),
			})
		}
		cerr := connect.NewError(connect.CodePermissionDenied, err)
		if detail, derr := permissionDetail(permErr); derr == nil {
			cerr.AddDetail(detail)
		} else {
			slog.Warn("Failed to attach permission detail", "error", derr)
		}
		return cerr
	case errors.Is(err, ledger.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ledger.ErrDuplicateVote):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, ledger.ErrInvalidState), errors.Is(err, ledger.ErrInsufficientFunds):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, ledger.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

func permissionDetail(e *ledger.PermissionError) (*connect.ErrorDetail, error) {
	payload := e.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	st, err := structpb.NewStruct(map[string]any{
		"path":      e.Path,
		"operation": e.Operation,
		"payload":   payload,
		"reason":    e.Reason,
	})
	if err != nil {
		return nil, err
	}
	return connect.NewErrorDetail(st)
}

// PermissionDetail extracts the rejected write from a permission_denied
// error returned by a client.
func PermissionDetail(err error) (*structpb.Struct, bool) {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return nil, false
	}
	for _, d := range connectErr.Details() {
		msg, verr := d.Value()
		if verr != nil {
			continue
		}
		if st, ok := msg.(*structpb.Struct); ok {
			return st, true
		}
	}
	return nil, false
}
