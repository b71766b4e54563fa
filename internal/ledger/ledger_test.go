package ledger

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage/sqlite"
)

func setupLedger(t *testing.T, opts ...Option) *Ledger {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, live.NewHub(16), opts...)
}

func identity(name string) models.Identity {
	return models.Identity{UID: "uid-" + name, DisplayName: name, Email: name + "@example.com"}
}

// groupOf creates a group founded by the first identity and joined by the rest.
func groupOf(t *testing.T, l *Ledger, members ...models.Identity) *models.Group {
	t.Helper()
	ctx := context.Background()
	group, err := l.CreateGroup(ctx, members[0], "Umoja", "Weekly savings")
	require.NoError(t, err)
	for _, m := range members[1:] {
		group, err = l.JoinGroup(ctx, m, group.ID)
		require.NoError(t, err)
	}
	return group
}

func people(n int) []models.Identity {
	ids := make([]models.Identity, n)
	for i := range ids {
		ids[i] = identity(fmt.Sprintf("member%d", i))
	}
	return ids
}

func fund(t *testing.T, l *Ledger, actor models.Identity, groupID string, amount int64) {
	t.Helper()
	_, _, err := l.RecordContribution(context.Background(), actor, ContributionRequest{
		GroupID: groupID, Amount: amount, Ref: "QGH7XK2P9L",
	})
	require.NoError(t, err)
}

func TestCreateGroup(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()
	alice := identity("Alice")

	group, err := l.CreateGroup(ctx, alice, "  Umoja  ", "Weekly savings")
	require.NoError(t, err)
	assert.Equal(t, "Umoja", group.Name)
	assert.Equal(t, alice.UID, group.CreatedBy)
	require.Len(t, group.Members, 1)
	assert.Equal(t, models.Member{ID: alice.UID, Name: "Alice"}, group.Members[0])
	assert.Zero(t, group.KittyBalance)
	assert.Zero(t, group.MerryGoRoundIndex)

	_, err = l.CreateGroup(ctx, alice, "", "desc")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.CreateGroup(ctx, models.Identity{}, "Umoja", "desc")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	groups, err := l.ListGroups(ctx, alice)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, group.ID, groups[0].ID)

	_, err = l.GetGroup(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinGroupIsIdempotent(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()
	alice, bob := identity("Alice"), identity("Bob")
	group := groupOf(t, l, alice, bob)

	again, err := l.JoinGroup(ctx, bob, group.ID)
	require.NoError(t, err)
	assert.Len(t, again.Members, 2)

	_, err = l.JoinGroup(ctx, bob, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaveGroupKeepsRotationInBounds(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()
	m := people(3)
	group := groupOf(t, l, m...)

	for i := 0; i < 2; i++ {
		_, err := l.Advance(ctx, m[0], group.ID, nil)
		require.NoError(t, err)
	}

	// Pointer is on the last member; when they leave it wraps to 0.
	group, err := l.LeaveGroup(ctx, m[2], group.ID)
	require.NoError(t, err)
	assert.Len(t, group.Members, 2)
	assert.Equal(t, 0, group.MerryGoRoundIndex)

	_, err = l.Advance(ctx, m[0], group.ID, nil)
	require.NoError(t, err)

	// Pointer on m[1] at index 1; m[0] leaving shifts it to 0, still m[1].
	group, err = l.LeaveGroup(ctx, m[0], group.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, group.MerryGoRoundIndex)
	beneficiary, ok := group.Beneficiary()
	require.True(t, ok)
	assert.Equal(t, m[1].UID, beneficiary.ID)

	stored, err := l.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.MerryGoRoundIndex)

	// Not a member: no-op.
	group, err = l.LeaveGroup(ctx, m[0], group.ID)
	require.NoError(t, err)
	assert.Len(t, group.Members, 1)
}

func TestRecordContribution(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	l := setupLedger(t, WithClock(func() time.Time { return fixed }))
	ctx := context.Background()
	alice, bob, eve := identity("Alice"), identity("Bob"), identity("Eve")
	group := groupOf(t, l, alice, bob)

	t.Run("increments balance and stores contribution", func(t *testing.T) {
		c, committed, err := l.RecordContribution(ctx, alice, ContributionRequest{
			GroupID: group.ID, Amount: 500, Ref: " qgh7xk2p9l ",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(500), committed.KittyBalance)
		assert.Equal(t, "QGH7XK2P9L", c.Ref)
		assert.Equal(t, "Alice", c.MemberName)
		assert.Equal(t, alice.UID, c.MemberID)
		assert.Equal(t, "2024-03-01T09:30:00Z", c.Date)

		got, err := l.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(500), got.KittyBalance)

		list, err := l.ListContributions(ctx, alice, group.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, c.ID, list[0].ID)
	})

	tests := []struct {
		name    string
		actor   models.Identity
		req     ContributionRequest
		wantErr error
	}{
		{"zero amount", alice, ContributionRequest{GroupID: group.ID, Amount: 0, Ref: "REF1234567"}, ErrInvalidArgument},
		{"negative amount", alice, ContributionRequest{GroupID: group.ID, Amount: -5, Ref: "REF1234567"}, ErrInvalidArgument},
		{"blank ref", alice, ContributionRequest{GroupID: group.ID, Amount: 10, Ref: "  "}, ErrInvalidArgument},
		{"missing group", alice, ContributionRequest{GroupID: "missing", Amount: 10, Ref: "REF1234567"}, ErrNotFound},
		{"non member", eve, ContributionRequest{GroupID: group.ID, Amount: 10, Ref: "REF1234567"}, ErrPermissionDenied},
		{"on behalf of another", alice, ContributionRequest{GroupID: group.ID, MemberID: bob.UID, Amount: 10, Ref: "REF1234567"}, ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := l.RecordContribution(ctx, tt.actor, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			got, err := l.GetGroup(ctx, group.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(500), got.KittyBalance, "balance unchanged")

			list, err := l.ListContributions(ctx, alice, group.ID)
			require.NoError(t, err)
			assert.Len(t, list, 1, "no contribution stored")
		})
	}

	t.Run("permission error carries the rejected write", func(t *testing.T) {
		_, _, err := l.RecordContribution(ctx, eve, ContributionRequest{GroupID: group.ID, Amount: 75, Ref: "REF1234567"})
		var permErr *PermissionError
		require.True(t, errors.As(err, &permErr))
		assert.Equal(t, "groups/"+group.ID, permErr.Path)
		assert.Equal(t, "update", permErr.Operation)
		assert.Equal(t, int64(75), permErr.Payload["amount"])
	})
}

func TestConcurrentContributionsSumExactly(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()
	m := people(4)
	group := groupOf(t, l, m...)

	const perMember = 5
	var wg sync.WaitGroup
	var failures atomic.Int32
	for _, member := range m {
		for i := 0; i < perMember; i++ {
			wg.Add(1)
			go func(actor models.Identity) {
				defer wg.Done()
				_, _, err := l.RecordContribution(ctx, actor, ContributionRequest{
					GroupID: group.ID, Amount: 10, Ref: "QGH7XK2P9L",
				})
				if err != nil {
					failures.Add(1)
					t.Errorf("contribution failed: %v", err)
				}
			}(member)
		}
	}
	wg.Wait()
	require.Zero(t, failures.Load())

	got, err := l.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(len(m)*perMember*10), got.KittyBalance)

	list, err := l.ListContributions(ctx, m[0], group.ID)
	require.NoError(t, err)
	assert.Len(t, list, len(m)*perMember)
}

func TestContributionPublishesGroupAndContributionTogether(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()
	alice := identity("Alice")
	group := groupOf(t, l, alice)

	sub := l.Hub().Subscribe(ctx, group.ID)
	defer sub.Close()

	fund(t, l, alice, group.ID, 250)

	select {
	case ev := <-sub.Events():
		assert.Equal(t, live.KindContribution, ev.Kind)
		require.NotNil(t, ev.Group)
		require.NotNil(t, ev.Contribution)
		assert.Equal(t, int64(250), ev.Group.KittyBalance)
		assert.Equal(t, int64(250), ev.Contribution.Amount)
	case <-time.After(time.Second):
		t.Fatal("no live event")
	}
}

func TestRequestLoan(t *testing.T) {
	ctx := context.Background()
	alice, eve := identity("Alice"), identity("Eve")

	t.Run("enforced policy blocks overdraw", func(t *testing.T) {
		l := setupLedger(t)
		group := groupOf(t, l, alice)

		_, err := l.RequestLoan(ctx, alice, LoanRequest{GroupID: group.ID, Amount: 100})
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		loans, err := l.ListLoans(ctx, alice, group.ID, "")
		require.NoError(t, err)
		assert.Empty(t, loans)

		fund(t, l, alice, group.ID, 100)
		loan, err := l.RequestLoan(ctx, alice, LoanRequest{GroupID: group.ID, Amount: 100})
		require.NoError(t, err)
		assert.Equal(t, models.LoanPending, loan.Status)
		assert.Empty(t, loan.Votes)
		assert.Equal(t, "Alice", loan.MemberName)
	})

	t.Run("advisory policy allows overdraw", func(t *testing.T) {
		l := setupLedger(t, WithBalancePolicy(false))
		group := groupOf(t, l, alice)

		loan, err := l.RequestLoan(ctx, alice, LoanRequest{GroupID: group.ID, Amount: 100})
		require.NoError(t, err)
		assert.Equal(t, models.LoanPending, loan.Status)

		got, err := l.GetLoan(ctx, alice, loan.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.Amount)
	})

	t.Run("validation", func(t *testing.T) {
		l := setupLedger(t, WithBalancePolicy(false))
		group := groupOf(t, l, alice)

		_, err := l.RequestLoan(ctx, alice, LoanRequest{GroupID: group.ID, Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = l.RequestLoan(ctx, eve, LoanRequest{GroupID: group.ID, Amount: 10})
		assert.ErrorIs(t, err, ErrPermissionDenied)

		_, err = l.RequestLoan(ctx, alice, LoanRequest{GroupID: "missing", Amount: 10})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = l.ListLoans(ctx, alice, group.ID, "bogus")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

// pendingLoan sets up a group of n members with a pending loan by member 0.
func pendingLoan(t *testing.T, n int, opts ...Option) (*Ledger, []models.Identity, *models.Loan) {
	t.Helper()
	l := setupLedger(t, append([]Option{WithBalancePolicy(false)}, opts...)...)
	m := people(n)
	group := groupOf(t, l, m...)
	loan, err := l.RequestLoan(context.Background(), m[0], LoanRequest{GroupID: group.ID, Amount: 1000})
	require.NoError(t, err)
	return l, m, loan
}

func TestCastVoteMajorityRule(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		members int
		ballots []bool
		want    []models.LoanStatus
	}{
		{
			name:    "three approvals of five",
			members: 5,
			ballots: []bool{true, true, true},
			want:    []models.LoanStatus{models.LoanPending, models.LoanPending, models.LoanApproved},
		},
		{
			name:    "three rejections of five",
			members: 5,
			ballots: []bool{false, false, false},
			want:    []models.LoanStatus{models.LoanPending, models.LoanPending, models.LoanRejected},
		},
		{
			name:    "two rejections of four",
			members: 4,
			ballots: []bool{false, false},
			want:    []models.LoanStatus{models.LoanPending, models.LoanRejected},
		},
		{
			name:    "split vote of four",
			members: 4,
			ballots: []bool{true, false, true},
			want:    []models.LoanStatus{models.LoanPending, models.LoanPending, models.LoanPending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, m, loan := pendingLoan(t, tt.members)

			for i, approve := range tt.ballots {
				res, err := l.CastVote(ctx, m[i], loan.ID, approve)
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], res.Loan.Status, "after vote %d", i+1)
				assert.Equal(t, tt.want[i] != models.LoanPending, res.Transitioned)
				assert.Len(t, res.Loan.Votes, i+1)
			}

			stored, err := l.GetLoan(ctx, m[0], loan.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want[len(tt.want)-1], stored.Status)
			assert.Len(t, stored.Votes, len(tt.ballots))
			if stored.Status.Terminal() {
				assert.NotZero(t, stored.ResolvedAt)
			}
		})
	}
}

func TestCastVoteGuards(t *testing.T) {
	ctx := context.Background()
	l, m, loan := pendingLoan(t, 3)
	outsider := identity("Eve")

	_, err := l.CastVote(ctx, m[0], loan.ID, true)
	require.NoError(t, err)

	t.Run("duplicate vote while pending", func(t *testing.T) {
		_, err := l.CastVote(ctx, m[0], loan.ID, false)
		assert.ErrorIs(t, err, ErrDuplicateVote)

		stored, err := l.GetLoan(ctx, m[0], loan.ID)
		require.NoError(t, err)
		require.Len(t, stored.Votes, 1)
		assert.True(t, stored.Votes[0].Approve)
	})

	t.Run("non member", func(t *testing.T) {
		_, err := l.CastVote(ctx, outsider, loan.ID, true)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown loan", func(t *testing.T) {
		_, err := l.CastVote(ctx, m[0], "missing", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	res, err := l.CastVote(ctx, m[1], loan.ID, true)
	require.NoError(t, err)
	require.Equal(t, models.LoanApproved, res.Loan.Status)

	t.Run("new voter on resolved loan", func(t *testing.T) {
		_, err := l.CastVote(ctx, m[2], loan.ID, false)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("duplicate vote on resolved loan", func(t *testing.T) {
		_, err := l.CastVote(ctx, m[1], loan.ID, false)
		assert.ErrorIs(t, err, ErrDuplicateVote)
	})

	stored, err := l.GetLoan(ctx, m[0], loan.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanApproved, stored.Status)
	assert.Len(t, stored.Votes, 2)
}

func TestApprovalHookRunsOnceWithoutDebit(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	hook := func(ctx context.Context, loan *models.Loan, group *models.Group) {
		calls.Add(1)
	}
	l, m, loan := pendingLoan(t, 3, WithApprovalHook(hook))
	fund(t, l, m[0], loan.GroupID, 40)

	for _, voter := range m[:2] {
		_, err := l.CastVote(ctx, voter, loan.ID, true)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), calls.Load())

	group, err := l.GetGroup(ctx, loan.GroupID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), group.KittyBalance, "approval does not debit the kitty")
}

func TestConcurrentVotesAreNeverLost(t *testing.T) {
	ctx := context.Background()
	l, m, loan := pendingLoan(t, 9)

	var wg sync.WaitGroup
	for _, voter := range m[:4] {
		wg.Add(1)
		go func(actor models.Identity) {
			defer wg.Done()
			if _, err := l.CastVote(ctx, actor, loan.ID, true); err != nil {
				t.Errorf("vote failed: %v", err)
			}
		}(voter)
	}
	wg.Wait()

	stored, err := l.GetLoan(ctx, m[0], loan.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Votes, 4)
	assert.Equal(t, models.LoanPending, stored.Status)
}

func TestConcurrentDoubleVoteStoresOne(t *testing.T) {
	ctx := context.Background()
	l, m, loan := pendingLoan(t, 5)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		ok, dupes atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.CastVote(ctx, m[1], loan.ID, false)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, ErrDuplicateVote):
				dupes.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(attempts-1), dupes.Load())

	stored, err := l.GetLoan(ctx, m[0], loan.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Votes, 1)
}

func TestAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps from last member to first", func(t *testing.T) {
		l := setupLedger(t)
		m := people(3)
		group := groupOf(t, l, m...)

		var rot *Rotation
		var err error
		for i := 0; i < 2; i++ {
			rot, err = l.Advance(ctx, m[0], group.ID, nil)
			require.NoError(t, err)
		}
		assert.Equal(t, 2, rot.Index)
		assert.Equal(t, m[2].UID, rot.Beneficiary.ID)

		rot, err = l.Advance(ctx, m[1], group.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, rot.Index)
		assert.Equal(t, m[0].UID, rot.Beneficiary.ID)
	})

	t.Run("zero members", func(t *testing.T) {
		l := setupLedger(t)
		alice := identity("Alice")
		group := groupOf(t, l, alice)
		_, err := l.LeaveGroup(ctx, alice, group.ID)
		require.NoError(t, err)

		_, err = l.Advance(ctx, alice, group.ID, nil)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("stale from index", func(t *testing.T) {
		l := setupLedger(t)
		m := people(3)
		group := groupOf(t, l, m...)

		from := 0
		_, err := l.Advance(ctx, m[0], group.ID, &from)
		require.NoError(t, err)

		// A second client still looking at index 0.
		_, err = l.Advance(ctx, m[1], group.ID, &from)
		assert.ErrorIs(t, err, ErrInvalidState)

		got, err := l.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.MerryGoRoundIndex)
	})

	t.Run("non member", func(t *testing.T) {
		l := setupLedger(t)
		group := groupOf(t, l, identity("Alice"))
		_, err := l.Advance(ctx, identity("Eve"), group.ID, nil)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("missing group", func(t *testing.T) {
		l := setupLedger(t)
		_, err := l.Advance(ctx, identity("Alice"), "missing", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFeed(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()
	alice, eve := identity("Alice"), identity("Eve")
	group := groupOf(t, l, alice)

	_, err := l.PostMessage(ctx, alice, group.ID, "Habari")
	require.NoError(t, err)
	_, err = l.PostMessage(ctx, alice, group.ID, "Meeting on Friday")
	require.NoError(t, err)

	_, err = l.PostMessage(ctx, eve, group.ID, "spam")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = l.PostMessage(ctx, alice, group.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	msgs, err := l.ListMessages(ctx, alice, group.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Habari", msgs[0].Text)
	assert.Equal(t, alice.UID, msgs[0].SenderID)

	receipt, err := l.AddReceipt(ctx, alice, group.ID, "https://files.example.com/r/1.jpg", "1.jpg")
	require.NoError(t, err)
	assert.Equal(t, alice.UID, receipt.UploadedBy)

	_, err = l.AddReceipt(ctx, alice, group.ID, "not a url", "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	receipts, err := l.ListReceipts(ctx, alice, group.ID)
	require.NoError(t, err)
	assert.Len(t, receipts, 1)
}

func TestWatch(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()
	alice, bob, eve := identity("Alice"), identity("Bob"), identity("Eve")
	group := groupOf(t, l, alice)

	_, _, err := l.Watch(ctx, eve, group.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Zero(t, l.Hub().Subscribers(group.ID), "rejected watch leaves no subscriber")

	_, _, err = l.Watch(ctx, alice, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	sub, snapshot, err := l.Watch(ctx, alice, group.ID)
	require.NoError(t, err)
	defer sub.Close()
	assert.Len(t, snapshot.Members, 1)

	_, err = l.JoinGroup(ctx, bob, group.ID)
	require.NoError(t, err)

	select {
	case ev := <-sub.Events():
		assert.Equal(t, live.KindGroup, ev.Kind)
		assert.Len(t, ev.Group.Members, 2)
	case <-time.After(time.Second):
		t.Fatal("no event after join")
	}
}

func TestGroupReadsRequireMembership(t *testing.T) {
	l := setupLedger(t, WithBalancePolicy(false))
	ctx := context.Background()
	alice, eve := identity("Alice"), identity("Eve")
	group := groupOf(t, l, alice)
	loan, err := l.RequestLoan(ctx, alice, LoanRequest{GroupID: group.ID, Amount: 10})
	require.NoError(t, err)

	reads := []struct {
		name string
		path string
		op   string
		read func(actor models.Identity) error
	}{
		{"contributions", "groups/" + group.ID + "/contributions", "list", func(a models.Identity) error {
			_, err := l.ListContributions(ctx, a, group.ID)
			return err
		}},
		{"messages", "groups/" + group.ID + "/messages", "list", func(a models.Identity) error {
			_, err := l.ListMessages(ctx, a, group.ID)
			return err
		}},
		{"receipts", "receipts", "list", func(a models.Identity) error {
			_, err := l.ListReceipts(ctx, a, group.ID)
			return err
		}},
		{"loans", "loans", "list", func(a models.Identity) error {
			_, err := l.ListLoans(ctx, a, group.ID, "")
			return err
		}},
		{"loan", "loans/" + loan.ID, "get", func(a models.Identity) error {
			_, err := l.GetLoan(ctx, a, loan.ID)
			return err
		}},
	}

	for _, tt := range reads {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.read(alice))

			err := tt.read(eve)
			var permErr *PermissionError
			require.True(t, errors.As(err, &permErr), "got %v", err)
			assert.Equal(t, tt.path, permErr.Path)
			assert.Equal(t, tt.op, permErr.Operation)

			assert.ErrorIs(t, tt.read(models.Identity{}), ErrPermissionDenied)
		})
	}

	_, err = l.GetLoan(ctx, alice, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContributionHistory(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()
	alice, bob, carol := identity("Alice"), identity("Bob"), identity("Carol")

	shared := groupOf(t, l, alice, bob)
	fund(t, l, alice, shared.ID, 150)
	fund(t, l, bob, shared.ID, 60)
	fund(t, l, carol, groupOf(t, l, carol).ID, 1000)

	history, err := l.ContributionHistory(ctx, alice)
	require.NoError(t, err)
	require.Len(t, history.Contributions, 2)
	assert.Equal(t, bob.UID, history.Contributions[0].MemberID, "newest first")
	assert.Equal(t, "Umoja", history.Contributions[0].GroupName)
	assert.Equal(t, int64(150), history.TotalContributed)

	_, err = l.LeaveGroup(ctx, alice, shared.ID)
	require.NoError(t, err)
	history, err = l.ContributionHistory(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, history.Contributions)
	assert.Zero(t, history.TotalContributed)

	_, err = l.ContributionHistory(ctx, models.Identity{})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
