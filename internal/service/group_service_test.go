package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage/sqlite"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
	"github.com/Denniskaninu/chama-smart-sync/pkg/proto/protoconnect"
)

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice := env.signUp(t, "Alice")

	resp, err := alice.Groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:        "Umoja",
		Description: "Weekly savings",
	}))
	require.NoError(t, err)

	group := resp.Msg.Group
	assert.NotEmpty(t, group.Id)
	assert.Equal(t, alice.ID, group.CreatedBy)
	require.Len(t, group.Members, 1)
	assert.Equal(t, alice.ID, group.Members[0].Id)
	assert.Equal(t, "Alice", group.Members[0].Name)
	assert.Zero(t, group.KittyBalance)
	assert.Zero(t, group.MerryGoRoundIndex)
	require.NotNil(t, group.Beneficiary)
	assert.Equal(t, alice.ID, group.Beneficiary.Id)
}

func TestCreateGroupValidation(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice := env.signUp(t, "Alice")

	tests := []struct {
		name string
		req  *pb.CreateGroupRequest
	}{
		{"missing name", &pb.CreateGroupRequest{Description: "Weekly savings"}},
		{"missing description", &pb.CreateGroupRequest{Name: "Umoja"}},
		{"blank name", &pb.CreateGroupRequest{Name: "   ", Description: "Weekly savings"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := alice.Groups.CreateGroup(context.Background(), connect.NewRequest(tt.req))
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}
}

func TestRequiresAuthentication(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	ctx := context.Background()

	_, err := env.anonymous().Groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	forged := env.clients(&user{Token: "not-a-jwt"})
	_, err = forged.Groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	// Raw clients without the bearer interceptor are rejected too.
	raw := protoconnect.NewGroupServiceClient(env.server.Client(), env.server.URL)
	_, err = raw.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: "g"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestGetAndListGroups(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	ctx := context.Background()
	alice, bob := env.signUp(t, "Alice"), env.signUp(t, "Bob")
	group := newGroup(t, alice)

	got, err := bob.Groups.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: group.Id}))
	require.NoError(t, err, "any signed-in user may read a group to join it")
	assert.Equal(t, "Umoja", got.Msg.Group.Name)

	_, err = alice.Groups.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: "missing"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	list, err := alice.Groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Len(t, list.Msg.Groups, 1)

	list, err = bob.Groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Groups)
}

func TestJoinAndLeaveGroup(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	ctx := context.Background()
	alice, bob := env.signUp(t, "Alice"), env.signUp(t, "Bob")
	group := newGroup(t, alice, bob)

	assert.Len(t, group.Members, 2)
	assert.Equal(t, []string{alice.ID, bob.ID}, []string{group.Members[0].Id, group.Members[1].Id})

	again, err := bob.Groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Len(t, again.Msg.Group.Members, 2, "joining twice is a no-op")

	left, err := bob.Groups.LeaveGroup(ctx, connect.NewRequest(&pb.LeaveGroupRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Len(t, left.Msg.Group.Members, 1)
}

func TestAdvanceRotation(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	ctx := context.Background()
	alice, bob, carol, eve := env.signUp(t, "Alice"), env.signUp(t, "Bob"), env.signUp(t, "Carol"), env.signUp(t, "Eve")
	group := newGroup(t, alice, bob, carol)

	want := []string{bob.ID, carol.ID, alice.ID}
	for i, id := range want {
		resp, err := alice.Groups.AdvanceRotation(ctx, connect.NewRequest(&pb.AdvanceRotationRequest{GroupId: group.Id}))
		require.NoError(t, err)
		assert.Equal(t, int32((i+1)%3), resp.Msg.Index)
		assert.Equal(t, id, resp.Msg.Beneficiary.Id)
		assert.Equal(t, id, resp.Msg.Group.Beneficiary.Id)
	}

	stale := int32(2)
	_, err := bob.Groups.AdvanceRotation(ctx, connect.NewRequest(&pb.AdvanceRotationRequest{GroupId: group.Id, FromIndex: &stale}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = eve.Groups.AdvanceRotation(ctx, connect.NewRequest(&pb.AdvanceRotationRequest{GroupId: group.Id}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
}

func TestWatchGroup(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, bob, eve := env.signUp(t, "Alice"), env.signUp(t, "Bob"), env.signUp(t, "Eve")
	group := newGroup(t, alice, bob)

	t.Run("non member", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		stream, err := eve.Groups.WatchGroup(ctx, connect.NewRequest(&pb.WatchGroupRequest{GroupId: group.Id}))
		require.NoError(t, err)
		defer stream.Close()

		assert.False(t, stream.Receive())
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(stream.Err()))
	})

	t.Run("snapshot then events", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		stream, err := alice.Groups.WatchGroup(ctx, connect.NewRequest(&pb.WatchGroupRequest{GroupId: group.Id}))
		require.NoError(t, err)
		defer stream.Close()

		require.True(t, stream.Receive(), "snapshot: %v", stream.Err())
		assert.Equal(t, "group", stream.Msg().Kind)
		assert.Len(t, stream.Msg().Group.Members, 2)

		contribute(t, bob, group.Id, 250)

		require.True(t, stream.Receive(), "event: %v", stream.Err())
		ev := stream.Msg()
		assert.Equal(t, "contribution", ev.Kind)
		require.NotNil(t, ev.Contribution)
		require.NotNil(t, ev.Group, "contribution events carry the group")
		assert.Equal(t, int64(250), ev.Contribution.Amount)
		assert.Equal(t, int64(250), ev.Group.KittyBalance)
	})

	assert.Eventually(t, func() bool {
		return env.ledger.Hub().Subscribers(group.Id) == 0
	}, 2*time.Second, 10*time.Millisecond, "closed streams unsubscribe")
}

func TestWatchResyncsAfterFallingBehind(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "watch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	l := ledger.New(store, live.NewHub(2))
	svc := NewGroupService(l, nil)

	alice := models.Identity{UID: "uid-alice", DisplayName: "Alice"}
	group, err := l.CreateGroup(context.Background(), alice, "Umoja", "Weekly savings")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The first live event stalls the sender until release is closed, so
	// the hub buffer fills behind it.
	events := make(chan *pb.GroupEvent, 16)
	stalled, release := make(chan struct{}), make(chan struct{})
	var once sync.Once
	send := func(ev *pb.GroupEvent) error {
		if ev.Kind == "contribution" {
			once.Do(func() {
				close(stalled)
				<-release
			})
		}
		events <- ev
		return nil
	}
	next := func() *pb.GroupEvent {
		t.Helper()
		select {
		case ev := <-events:
			return ev
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for event")
			return nil
		}
	}
	fund := func() {
		t.Helper()
		_, _, err := l.RecordContribution(ctx, alice, ledger.ContributionRequest{
			GroupID: group.ID, Amount: 100, Ref: "QGH7XK2P9L",
		})
		require.NoError(t, err)
	}

	done := make(chan error, 1)
	go func() { done <- svc.watch(ctx, alice, group.ID, send) }()

	first := next()
	assert.Equal(t, "group", first.Kind)
	assert.False(t, first.Resync)

	fund()
	select {
	case <-stalled:
	case <-time.After(2 * time.Second):
		t.Fatal("sender never received the first contribution")
	}
	for i := 0; i < 3; i++ {
		fund()
	}
	close(release)

	var snapshot *pb.GroupEvent
	for snapshot == nil {
		if ev := next(); ev.Resync {
			snapshot = ev
		}
	}
	assert.Equal(t, "group", snapshot.Kind)
	assert.Equal(t, int64(400), snapshot.Group.KittyBalance, "resync snapshot covers the missed events")

	fund()
	ev := next()
	assert.Equal(t, "contribution", ev.Kind)
	assert.False(t, ev.Resync)
	assert.Equal(t, int64(500), ev.Group.KittyBalance)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestIdentityFromToken(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice := env.signUp(t, "Alice")

	// The identity recorded on writes is the token's subject, never a
	// client-supplied member ID.
	group := newGroup(t, alice)
	resp := contribute(t, alice, group.Id, 100)
	assert.Equal(t, alice.ID, resp.Contribution.MemberId)
	assert.Equal(t, "Alice", resp.Contribution.MemberName)
}
