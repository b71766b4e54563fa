package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
)

func TestRecordContribution(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, bob := env.signUp(t, "Alice"), env.signUp(t, "Bob")
	group := newGroup(t, alice, bob)

	first := contribute(t, alice, group.Id, 500)
	assert.Equal(t, int64(500), first.Group.KittyBalance)
	assert.Equal(t, "QGH7XK2P9L", first.Contribution.Ref)

	second := contribute(t, bob, group.Id, 300)
	assert.Equal(t, int64(800), second.Group.KittyBalance)

	list, err := alice.Contributions.ListContributions(context.Background(), connect.NewRequest(&pb.ListContributionsRequest{GroupId: group.Id}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Contributions, 2)
	assert.Equal(t, second.Contribution.Id, list.Msg.Contributions[0].Id, "newest first")
	assert.Nil(t, list.Msg.Contributions[0].Check)
}

func TestRecordContributionErrors(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, bob, eve := env.signUp(t, "Alice"), env.signUp(t, "Bob"), env.signUp(t, "Eve")
	group := newGroup(t, alice, bob)
	ctx := context.Background()

	tests := []struct {
		name string
		as   *user
		req  *pb.RecordContributionRequest
		code connect.Code
	}{
		{"zero amount", alice, &pb.RecordContributionRequest{GroupId: group.Id, Amount: 0, Ref: "QGH7XK2P9L"}, connect.CodeInvalidArgument},
		{"missing ref", alice, &pb.RecordContributionRequest{GroupId: group.Id, Amount: 10}, connect.CodeInvalidArgument},
		{"missing group id", alice, &pb.RecordContributionRequest{Amount: 10, Ref: "QGH7XK2P9L"}, connect.CodeInvalidArgument},
		{"unknown group", alice, &pb.RecordContributionRequest{GroupId: "missing", Amount: 10, Ref: "QGH7XK2P9L"}, connect.CodeNotFound},
		{"non member", eve, &pb.RecordContributionRequest{GroupId: group.Id, Amount: 10, Ref: "QGH7XK2P9L"}, connect.CodePermissionDenied},
		{"on behalf of another", alice, &pb.RecordContributionRequest{GroupId: group.Id, MemberId: bob.ID, Amount: 10, Ref: "QGH7XK2P9L"}, connect.CodePermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.as.Contributions.RecordContribution(ctx, connect.NewRequest(tt.req))
			assert.Equal(t, tt.code, connect.CodeOf(err))
		})
	}

	got, err := alice.Groups.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Zero(t, got.Msg.Group.KittyBalance, "failed writes leave the kitty untouched")
}

func TestPermissionDeniedDetailAndNotice(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, eve := env.signUp(t, "Alice"), env.signUp(t, "Eve")
	group := newGroup(t, alice)

	_, err := eve.Contributions.RecordContribution(context.Background(), connect.NewRequest(&pb.RecordContributionRequest{
		GroupId: group.Id, Amount: 75, Ref: "qgh7xk2p9l",
	}))
	require.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	detail, ok := PermissionDetail(err)
	require.True(t, ok, "permission errors carry a struct detail")
	assert.Equal(t, "groups/"+group.Id, detail.Fields["path"].GetStringValue())
	assert.Equal(t, "update", detail.Fields["operation"].GetStringValue())
	payload := detail.Fields["payload"].GetStructValue()
	require.NotNil(t, payload)
	assert.Equal(t, float64(75), payload.Fields["amount"].GetNumberValue())
	assert.Equal(t, "QGH7XK2P9L", payload.Fields["ref"].GetStringValue())

	notices := env.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, eve.ID, notices[0].UserID)
	assert.Equal(t, "groups/"+group.Id, notices[0].Path)
	assert.Equal(t, "/chama.v1.ContributionService/RecordContribution", notices[0].Procedure)
}

func TestListContributionsWithReferenceChecks(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice := env.signUp(t, "Alice")
	group := newGroup(t, alice)
	ctx := context.Background()

	for _, ref := range []string{"QGH7XK2P9L", "hello", "not-a-code"} {
		_, err := alice.Contributions.RecordContribution(ctx, connect.NewRequest(&pb.RecordContributionRequest{
			GroupId: group.Id, Amount: 10, Ref: ref,
		}))
		require.NoError(t, err)
	}

	list, err := alice.Contributions.ListContributions(ctx, connect.NewRequest(&pb.ListContributionsRequest{
		GroupId: group.Id, CheckReferences: true,
	}))
	require.NoError(t, err)

	statuses := make(map[string]string)
	for _, c := range list.Msg.Contributions {
		require.NotNil(t, c.Check, c.Ref)
		statuses[c.Ref] = c.Check.Status
	}
	assert.Equal(t, map[string]string{
		"QGH7XK2P9L": "valid",
		"HELLO":      "idle",
		"NOT-A-CODE": "invalid",
	}, statuses)
}

func TestCheckReference(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice := env.signUp(t, "Alice")
	ctx := context.Background()

	tests := []struct {
		ref    string
		status string
		valid  bool
	}{
		{"QGH7XK2P9L", "valid", true},
		{"QGH7", "idle", false},
		{"", "idle", false},
		{"1234567890", "invalid", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			resp, err := alice.Contributions.CheckReference(ctx, connect.NewRequest(&pb.CheckReferenceRequest{Ref: tt.ref}))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.Msg.Check.Status)
			assert.Equal(t, tt.valid, resp.Msg.Check.IsValid)
			assert.False(t, resp.Msg.Check.Degraded)
		})
	}
}

func TestCheckReferenceThrottled(t *testing.T) {
	env := setupTestServer(t, envOptions{checkRate: 0.001, checkBurst: 2})
	alice, bob := env.signUp(t, "Alice"), env.signUp(t, "Bob")
	ctx := context.Background()
	req := func() *connect.Request[pb.CheckReferenceRequest] {
		return connect.NewRequest(&pb.CheckReferenceRequest{Ref: "QGH7XK2P9L"})
	}

	for i := 0; i < 2; i++ {
		_, err := alice.Contributions.CheckReference(ctx, req())
		require.NoError(t, err)
	}
	_, err := alice.Contributions.CheckReference(ctx, req())
	assert.Equal(t, connect.CodeResourceExhausted, connect.CodeOf(err))

	_, err = bob.Contributions.CheckReference(ctx, req())
	assert.NoError(t, err, "limits are per caller")
}

func TestListContributionHistory(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, bob, carol := env.signUp(t, "Alice"), env.signUp(t, "Bob"), env.signUp(t, "Carol")
	ctx := context.Background()

	shared := newGroup(t, alice, bob)
	own := newGroup(t, alice)
	elsewhere := newGroup(t, carol)

	contribute(t, alice, shared.Id, 500)
	contribute(t, bob, shared.Id, 300)
	contribute(t, alice, own.Id, 200)
	contribute(t, carol, elsewhere.Id, 9000)

	resp, err := alice.Contributions.ListContributionHistory(ctx, connect.NewRequest(&pb.ListContributionHistoryRequest{}))
	require.NoError(t, err)
	got := resp.Msg.Contributions
	require.Len(t, got, 3, "only groups the caller belongs to")
	assert.Equal(t, own.Id, got[0].GroupId, "newest first")
	assert.Equal(t, "Umoja", got[0].GroupName)
	assert.Equal(t, bob.ID, got[1].MemberId)
	assert.Nil(t, got[0].Check)
	assert.Equal(t, int64(700), resp.Msg.TotalContributed, "only the caller's own contributions count")

	resp, err = bob.Contributions.ListContributionHistory(ctx, connect.NewRequest(&pb.ListContributionHistoryRequest{CheckReferences: true}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Contributions, 2)
	assert.Equal(t, int64(300), resp.Msg.TotalContributed)
	for _, c := range resp.Msg.Contributions {
		require.NotNil(t, c.Check)
		assert.Equal(t, "valid", c.Check.Status)
	}

	_, err = env.anonymous().Contributions.ListContributionHistory(ctx, connect.NewRequest(&pb.ListContributionHistoryRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestCallerLimitsEvictIdleCallers(t *testing.T) {
	now := time.Unix(1700000000, 0)
	limits := newCallerLimits(1, 1)
	limits.now = func() time.Time { return now }
	limits.lastSweep = now

	assert.True(t, limits.allow("alice"))
	assert.False(t, limits.allow("alice"))

	now = now.Add(limiterIdleTTL / 2)
	assert.True(t, limits.allow("bob"))
	assert.Len(t, limits.limiters, 2)

	now = now.Add(limiterIdleTTL / 2)
	assert.True(t, limits.allow("bob"))
	assert.Len(t, limits.limiters, 1, "idle caller evicted on sweep")
	assert.Contains(t, limits.limiters, "bob")

	now = now.Add(2 * limiterIdleTTL)
	assert.True(t, limits.allow("carol"))
	assert.Len(t, limits.limiters, 1)
	assert.Contains(t, limits.limiters, "carol")
}
