package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	"github.com/Denniskaninu/chama-smart-sync/internal/refcheck"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
	"github.com/Denniskaninu/chama-smart-sync/pkg/proto/protoconnect"
)

// maxParallelChecks bounds classifier calls made for one listing.
const maxParallelChecks = 4

// ContributionService implements the Connect ContributionService.
type ContributionService struct {
	ledger  *ledger.Ledger
	checker *refcheck.Checker
	limits  *callerLimits
	failures
}

var _ protoconnect.ContributionServiceHandler = (*ContributionService)(nil)

// NewContributionService creates the service. CheckReference calls are
// throttled per caller to perSecond with the given burst.
func NewContributionService(l *ledger.Ledger, checker *refcheck.Checker, bus *notify.Bus, perSecond float64, burst int) *ContributionService {
	return &ContributionService{
		ledger:   l,
		checker:  checker,
		limits:   newCallerLimits(rate.Limit(perSecond), burst),
		failures: failures{bus: bus},
	}
}

// RecordContribution adds a payment to the group's kitty.
func (s *ContributionService) RecordContribution(ctx context.Context, req *connect.Request[pb.RecordContributionRequest]) (*connect.Response[pb.RecordContributionResponse], error) {
	slog.Info("RecordContribution request received",
		"group_id", req.Msg.GroupId,
		"amount", req.Msg.Amount,
	)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	contribution, group, err := s.ledger.RecordContribution(ctx, actor, ledger.ContributionRequest{
		GroupID:    req.Msg.GroupId,
		MemberID:   req.Msg.MemberId,
		MemberName: req.Msg.MemberName,
		Amount:     req.Msg.Amount,
		Ref:        req.Msg.Ref,
	})
	if err != nil {
		slog.Error("RecordContribution failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.ContributionServiceRecordContributionProcedure, err)
	}

	slog.Info("Contribution recorded",
		"contribution_id", contribution.ID,
		"group_id", group.ID,
		"kitty_balance", group.KittyBalance,
	)
	return connect.NewResponse(&pb.RecordContributionResponse{
		Contribution: toPBContribution(contribution),
		Group:        toPBGroup(group),
	}), nil
}

// ListContributions returns a group's contributions, newest first. With
// CheckReferences set, each reference is annotated by the validity checker.
func (s *ContributionService) ListContributions(ctx context.Context, req *connect.Request[pb.ListContributionsRequest]) (*connect.Response[pb.ListContributionsResponse], error) {
	slog.Info("ListContributions request received",
		"group_id", req.Msg.GroupId,
		"check_references", req.Msg.CheckReferences,
	)

	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}

	contributions, err := s.ledger.ListContributions(ctx, actor, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListContributions failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, s.toConnect(ctx, protoconnect.ContributionServiceListContributionsProcedure, err)
	}

	out := toPBContributions(contributions)
	if req.Msg.CheckReferences {
		s.annotate(ctx, out)
	}

	slog.Info("ListContributions successful", "group_id", req.Msg.GroupId, "count", len(out))
	return connect.NewResponse(&pb.ListContributionsResponse{Contributions: out}), nil
}

// ListContributionHistory returns contributions across every group the
// caller belongs to, newest first, with the caller's own total.
func (s *ContributionService) ListContributionHistory(ctx context.Context, req *connect.Request[pb.ListContributionHistoryRequest]) (*connect.Response[pb.ListContributionHistoryResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListContributionHistory request received",
		"user_id", actor.UID,
		"check_references", req.Msg.CheckReferences,
	)

	history, err := s.ledger.ContributionHistory(ctx, actor)
	if err != nil {
		slog.Error("ListContributionHistory failed", "user_id", actor.UID, "error", err)
		return nil, s.toConnect(ctx, protoconnect.ContributionServiceListContributionHistoryProcedure, err)
	}

	out := toPBContributions(history.Contributions)
	if req.Msg.CheckReferences {
		s.annotate(ctx, out)
	}

	slog.Info("ListContributionHistory successful",
		"user_id", actor.UID,
		"count", len(out),
		"total_contributed", history.TotalContributed,
	)
	return connect.NewResponse(&pb.ListContributionHistoryResponse{
		Contributions:    out,
		TotalContributed: history.TotalContributed,
	}), nil
}

// annotate attaches a reference check to each contribution. Check never
// fails; a classifier error becomes an invalid verdict.
func (s *ContributionService) annotate(ctx context.Context, contributions []*pb.Contribution) {
	if s.checker == nil {
		return
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelChecks)
	for _, c := range contributions {
		c := c
		g.Go(func() error {
			c.Check = toPBCheck(s.checker.Check(gctx, c.Ref))
			return nil
		})
	}
	_ = g.Wait()
}

// CheckReference classifies a single payment reference.
func (s *ContributionService) CheckReference(ctx context.Context, req *connect.Request[pb.CheckReferenceRequest]) (*connect.Response[pb.CheckReferenceResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRequest(req.Msg); err != nil {
		return nil, err
	}
	if s.checker == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, refcheck.ErrClassifierUnavailable)
	}
	if !s.limits.allow(actor.UID) {
		slog.Warn("CheckReference throttled", "user_id", actor.UID)
		return nil, connect.NewError(connect.CodeResourceExhausted, errThrottled)
	}

	res := s.checker.Check(ctx, req.Msg.Ref)
	slog.Info("CheckReference successful",
		"ref", res.Ref,
		"status", res.Status,
		"confidence", res.Verdict.Confidence,
		"degraded", res.Degraded,
	)
	return connect.NewResponse(&pb.CheckReferenceResponse{Check: toPBCheck(res)}), nil
}

// limiterIdleTTL is how long a caller's bucket is kept after its last use.
const limiterIdleTTL = 10 * time.Minute

// callerLimits holds one token bucket per user.
type callerLimits struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	limiters  map[string]*callerLimit
	now       func() time.Time
	lastSweep time.Time
}

type callerLimit struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newCallerLimits(limit rate.Limit, burst int) *callerLimits {
	if burst <= 0 {
		burst = 1
	}
	return &callerLimits{
		limit:     limit,
		burst:     burst,
		limiters:  make(map[string]*callerLimit),
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

func (c *callerLimits) allow(userID string) bool {
	c.mu.Lock()
	now := c.now()
	if now.Sub(c.lastSweep) >= limiterIdleTTL {
		c.sweep(now)
	}
	entry, ok := c.limiters[userID]
	if !ok {
		entry = &callerLimit{limiter: rate.NewLimiter(c.limit, c.burst)}
		c.limiters[userID] = entry
	}
	entry.lastSeen = now
	c.mu.Unlock()
	return entry.limiter.AllowN(now, 1)
}

// sweep drops buckets idle for limiterIdleTTL. c.mu must be held.
func (c *callerLimits) sweep(now time.Time) {
	for id, entry := range c.limiters {
		if now.Sub(entry.lastSeen) >= limiterIdleTTL {
			delete(c.limiters, id)
		}
	}
	c.lastSweep = now
}
