// Package storagetest holds a behavioural suite that every storage.Store
// backend must pass.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
)

// Factory returns an empty, migrated store. Cleanup is the factory's job.
type Factory func(t *testing.T) storage.Store

// Run exercises store semantics shared by every backend.
func Run(t *testing.T, newStore Factory) {
	t.Run("Groups", func(t *testing.T) { testGroups(t, newStore(t)) })
	t.Run("Members", func(t *testing.T) { testMembers(t, newStore(t)) })
	t.Run("Transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
	t.Run("Contributions", func(t *testing.T) { testContributions(t, newStore(t)) })
	t.Run("ContributionsByMember", func(t *testing.T) { testContributionsByMember(t, newStore(t)) })
	t.Run("Loans", func(t *testing.T) { testLoans(t, newStore(t)) })
	t.Run("Feed", func(t *testing.T) { testFeed(t, newStore(t)) })
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
}

func newGroup(t *testing.T, store storage.Store, members ...string) *models.Group {
	t.Helper()
	g := &models.Group{Name: "Umoja", CreatedBy: members[0]}
	for _, id := range members {
		g.Members = append(g.Members, models.Member{ID: id, Name: "name-" + id})
	}
	require.NoError(t, store.CreateGroup(context.Background(), g))
	return g
}

func uid() string { return uuid.New().String() }

func testGroups(t *testing.T, store storage.Store) {
	ctx := context.Background()
	alice, bob := uid(), uid()

	g := newGroup(t, store, alice, bob)
	assert.NotEmpty(t, g.ID)
	assert.NotZero(t, g.CreatedAt)

	got, err := store.GetGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Umoja", got.Name)
	assert.Equal(t, alice, got.CreatedBy)
	assert.Equal(t, int64(0), got.KittyBalance)
	assert.Equal(t, 0, got.MerryGoRoundIndex)
	require.Len(t, got.Members, 2)
	assert.Equal(t, alice, got.Members[0].ID)
	assert.Equal(t, bob, got.Members[1].ID)

	other := newGroup(t, store, bob)

	groups, err := store.ListGroupsByMember(ctx, bob)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	ids := []string{groups[0].ID, groups[1].ID}
	assert.ElementsMatch(t, []string{g.ID, other.ID}, ids)

	groups, err = store.ListGroupsByMember(ctx, alice)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	groups, err = store.ListGroupsByMember(ctx, uid())
	require.NoError(t, err)
	assert.Empty(t, groups)

	_, err = store.GetGroup(ctx, uid())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testMembers(t *testing.T, store storage.Store) {
	ctx := context.Background()
	alice, bob, carol := uid(), uid(), uid()
	g := newGroup(t, store, alice, bob)

	err := store.WithTx(ctx, func(tx storage.Tx) error {
		if err := tx.RemoveMember(ctx, g.ID, alice); err != nil {
			return err
		}
		return tx.AddMember(ctx, g.ID, models.Member{ID: carol, Name: "Carol"})
	})
	require.NoError(t, err)

	got, err := store.GetGroup(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 2)
	assert.Equal(t, bob, got.Members[0].ID)
	assert.Equal(t, carol, got.Members[1].ID)

	err = store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.AddMember(ctx, g.ID, models.Member{ID: bob, Name: "Bob again"})
	})
	assert.ErrorIs(t, err, storage.ErrConflict)

	err = store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.RemoveMember(ctx, g.ID, alice)
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testTransactions(t *testing.T, store storage.Store) {
	ctx := context.Background()
	alice := uid()
	g := newGroup(t, store, alice)

	boom := errors.New("boom")
	err := store.WithTx(ctx, func(tx storage.Tx) error {
		if err := tx.SetKittyBalance(ctx, g.ID, 500); err != nil {
			return err
		}
		if err := tx.InsertContribution(ctx, &models.Contribution{
			GroupID: g.ID, MemberID: alice, MemberName: "Alice", Amount: 500, Date: "2024-01-01T00:00:00Z", Ref: "QWERTY1234",
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.GetGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.KittyBalance, "rolled back balance")

	contributions, err := store.ListContributionsByGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, contributions, "rolled back contribution")

	err = store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.SetKittyBalance(ctx, g.ID, -1)
	})
	assert.ErrorIs(t, err, storage.ErrConstraint)

	err = store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.SetRotationIndex(ctx, uid(), 0)
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testContributions(t *testing.T, store storage.Store) {
	ctx := context.Background()
	alice := uid()
	g := newGroup(t, store, alice)

	for i, amount := range []int64{100, 250} {
		c := &models.Contribution{
			GroupID:    g.ID,
			MemberID:   alice,
			MemberName: "Alice",
			Amount:     amount,
			Date:       "2024-01-01T00:00:00Z",
			Ref:        "REF000000" + string(rune('A'+i)),
			CreatedAt:  int64(1000 + i),
		}
		err := store.WithTx(ctx, func(tx storage.Tx) error {
			group, err := tx.GetGroup(ctx, g.ID)
			if err != nil {
				return err
			}
			if err := tx.SetKittyBalance(ctx, g.ID, group.KittyBalance+c.Amount); err != nil {
				return err
			}
			return tx.InsertContribution(ctx, c)
		})
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
	}

	got, err := store.GetGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(350), got.KittyBalance)

	contributions, err := store.ListContributionsByGroup(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, contributions, 2)
	assert.Equal(t, int64(250), contributions[0].Amount, "newest first")
	assert.Equal(t, "REF000000B", contributions[0].Ref)
	assert.Equal(t, "Umoja", contributions[0].GroupName)
	assert.Equal(t, int64(100), contributions[1].Amount)

	err = store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.InsertContribution(ctx, &models.Contribution{
			GroupID: g.ID, MemberID: alice, MemberName: "Alice", Amount: 0, Date: "2024-01-01T00:00:00Z",
		})
	})
	assert.ErrorIs(t, err, storage.ErrConstraint)
}

func insertContribution(t *testing.T, store storage.Store, c *models.Contribution) {
	t.Helper()
	ctx := context.Background()
	c.Date = "2024-01-01T00:00:00Z"
	c.Ref = "QGH7XK2P9L"
	require.NoError(t, store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.InsertContribution(ctx, c)
	}))
}

func testContributionsByMember(t *testing.T, store storage.Store) {
	ctx := context.Background()
	alice, bob := uid(), uid()

	shared := newGroup(t, store, alice, bob)
	own := &models.Group{Name: "Harambee", CreatedBy: alice, Members: []models.Member{{ID: alice, Name: "Alice"}}}
	require.NoError(t, store.CreateGroup(ctx, own))
	other := newGroup(t, store, bob)

	insertContribution(t, store, &models.Contribution{GroupID: shared.ID, MemberID: alice, MemberName: "Alice", Amount: 100, CreatedAt: 10})
	insertContribution(t, store, &models.Contribution{GroupID: shared.ID, MemberID: bob, MemberName: "Bob", Amount: 40, CreatedAt: 20})
	insertContribution(t, store, &models.Contribution{GroupID: own.ID, MemberID: alice, MemberName: "Alice", Amount: 75, CreatedAt: 30})
	insertContribution(t, store, &models.Contribution{GroupID: other.ID, MemberID: bob, MemberName: "Bob", Amount: 999, CreatedAt: 40})

	got, err := store.ListContributionsByMember(ctx, alice)
	require.NoError(t, err)
	require.Len(t, got, 3, "groups alice is not in are excluded")
	assert.Equal(t, int64(75), got[0].Amount, "newest first")
	assert.Equal(t, "Harambee", got[0].GroupName)
	assert.Equal(t, int64(40), got[1].Amount, "other members' contributions to shared groups are included")
	assert.Equal(t, bob, got[1].MemberID)
	assert.Equal(t, "Umoja", got[1].GroupName)
	assert.Equal(t, int64(100), got[2].Amount)

	none, err := store.ListContributionsByMember(ctx, uid())
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.RemoveMember(ctx, own.ID, alice)
	}))
	got, err = store.ListContributionsByMember(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, got, 2, "leaving a group drops it from the listing")
}

func testLoans(t *testing.T, store storage.Store) {
	ctx := context.Background()
	alice, bob, carol := uid(), uid(), uid()
	g := newGroup(t, store, alice, bob, carol)

	first := &models.Loan{GroupID: g.ID, MemberID: alice, MemberName: "Alice", Amount: 1000, CreatedAt: 10}
	second := &models.Loan{GroupID: g.ID, MemberID: bob, MemberName: "Bob", Amount: 200, CreatedAt: 20}
	err := store.WithTx(ctx, func(tx storage.Tx) error {
		if err := tx.InsertLoan(ctx, first); err != nil {
			return err
		}
		return tx.InsertLoan(ctx, second)
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoanPending, first.Status)

	for _, v := range []models.Vote{{UserID: carol, Approve: true}, {UserID: bob, Approve: false}} {
		err := store.WithTx(ctx, func(tx storage.Tx) error {
			return tx.InsertVote(ctx, first.ID, v)
		})
		require.NoError(t, err)
	}

	err = store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.InsertVote(ctx, first.ID, models.Vote{UserID: carol, Approve: false})
	})
	assert.ErrorIs(t, err, storage.ErrConflict, "second vote by same user")

	loan, err := store.GetLoan(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, loan.Votes, 2)
	assert.Equal(t, carol, loan.Votes[0].UserID)
	assert.True(t, loan.Votes[0].Approve)
	assert.Equal(t, bob, loan.Votes[1].UserID)
	assert.False(t, loan.Votes[1].Approve)
	assert.NotZero(t, loan.Votes[0].CastAt)

	err = store.WithTx(ctx, func(tx storage.Tx) error {
		return tx.SetLoanStatus(ctx, first.ID, models.LoanApproved, 99)
	})
	require.NoError(t, err)

	loan, err = store.GetLoan(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanApproved, loan.Status)
	assert.Equal(t, int64(99), loan.ResolvedAt)

	all, err := store.ListLoansByGroup(ctx, g.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	pending, err := store.ListLoansByGroup(ctx, g.ID, models.LoanPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	_, err = store.GetLoan(ctx, uid())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testFeed(t *testing.T, store storage.Store) {
	ctx := context.Background()
	alice := uid()
	g := newGroup(t, store, alice)

	require.NoError(t, store.CreateMessage(ctx, &models.Message{GroupID: g.ID, SenderID: alice, Text: "first", CreatedAt: 1}))
	require.NoError(t, store.CreateMessage(ctx, &models.Message{GroupID: g.ID, SenderID: alice, Text: "second", CreatedAt: 2}))

	msgs, err := store.ListMessagesByGroup(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text, "oldest first")
	assert.Equal(t, "second", msgs[1].Text)

	r := &models.Receipt{GroupID: g.ID, URL: "https://example.com/r.png", UploadedBy: alice, FileName: "r.png"}
	require.NoError(t, store.CreateReceipt(ctx, r))
	assert.NotEmpty(t, r.ID)

	receipts, err := store.ListReceiptsByGroup(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "r.png", receipts[0].FileName)
}

func testUsers(t *testing.T, store storage.Store) {
	ctx := context.Background()
	email := uid() + "@example.com"

	user := models.NewUser(email, "Wanjiru", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	got, err := store.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Wanjiru", got.DisplayName)

	got, err = store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, email, got.Email)

	err = store.CreateUser(ctx, models.NewUser(email, "Other", "hash"))
	assert.ErrorIs(t, err, storage.ErrConflict)

	_, err = store.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetUserByID(ctx, uid())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
