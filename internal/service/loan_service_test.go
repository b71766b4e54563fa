package service

import (
	"context"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
)

func requestLoan(t *testing.T, u *user, groupID string, amount int64) *pb.Loan {
	t.Helper()
	resp, err := u.Loans.RequestLoan(context.Background(), connect.NewRequest(&pb.RequestLoanRequest{
		GroupId: groupID, Amount: amount,
	}))
	require.NoError(t, err)
	return resp.Msg.Loan
}

func vote(u *user, loanID string, approve bool) (*pb.CastVoteResponse, error) {
	resp, err := u.Loans.CastVote(context.Background(), connect.NewRequest(&pb.CastVoteRequest{
		LoanId: loanID, Approve: approve,
	}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func TestLoanApprovedByMajority(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, bob, carol := env.signUp(t, "Alice"), env.signUp(t, "Bob"), env.signUp(t, "Carol")
	group := newGroup(t, alice, bob, carol)
	contribute(t, alice, group.Id, 1000)

	loan := requestLoan(t, carol, group.Id, 400)
	assert.Equal(t, "pending", loan.Status)
	assert.Equal(t, "Carol", loan.MemberName)

	res, err := vote(alice, loan.Id, true)
	require.NoError(t, err)
	assert.Equal(t, "pending", res.Loan.Status, "1 of 3 is not a majority")
	assert.False(t, res.Resolved)

	res, err = vote(bob, loan.Id, true)
	require.NoError(t, err)
	assert.Equal(t, "approved", res.Loan.Status)
	assert.True(t, res.Resolved)
	assert.Equal(t, int32(2), res.Loan.Approvals)
	assert.NotZero(t, res.Loan.ResolvedAt)

	_, err = vote(carol, loan.Id, false)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err), "resolved loans take no new votes")

	_, err = vote(bob, loan.Id, false)
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err), "repeat voters get duplicate vote")

	got, err := alice.Loans.GetLoan(context.Background(), connect.NewRequest(&pb.GetLoanRequest{LoanId: loan.Id}))
	require.NoError(t, err)
	assert.Len(t, got.Msg.Loan.Votes, 2)

	g, err := alice.Groups.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), g.Msg.Group.KittyBalance, "approval does not debit the kitty")
}

func TestLoanRejectedOnTie(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, bob := env.signUp(t, "Alice"), env.signUp(t, "Bob")
	group := newGroup(t, alice, bob)
	contribute(t, alice, group.Id, 100)

	loan := requestLoan(t, bob, group.Id, 50)
	res, err := vote(alice, loan.Id, false)
	require.NoError(t, err)
	assert.Equal(t, "rejected", res.Loan.Status, "1 of 2 rejections is enough")
	assert.True(t, res.Resolved)
}

func TestRequestLoanErrors(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, eve := env.signUp(t, "Alice"), env.signUp(t, "Eve")
	group := newGroup(t, alice)
	contribute(t, alice, group.Id, 100)
	ctx := context.Background()

	tests := []struct {
		name string
		as   *user
		req  *pb.RequestLoanRequest
		code connect.Code
	}{
		{"over balance", alice, &pb.RequestLoanRequest{GroupId: group.Id, Amount: 101}, connect.CodeFailedPrecondition},
		{"zero amount", alice, &pb.RequestLoanRequest{GroupId: group.Id}, connect.CodeInvalidArgument},
		{"non member", eve, &pb.RequestLoanRequest{GroupId: group.Id, Amount: 10}, connect.CodePermissionDenied},
		{"unknown group", alice, &pb.RequestLoanRequest{GroupId: "missing", Amount: 10}, connect.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.as.Loans.RequestLoan(ctx, connect.NewRequest(tt.req))
			assert.Equal(t, tt.code, connect.CodeOf(err))
		})
	}
}

func TestRequestLoanWithoutBalancePolicy(t *testing.T) {
	env := setupTestServer(t, envOptions{ledgerOpts: []ledger.Option{ledger.WithBalancePolicy(false)}})
	alice := env.signUp(t, "Alice")
	group := newGroup(t, alice)

	loan := requestLoan(t, alice, group.Id, 5000)
	assert.Equal(t, "pending", loan.Status)
}

func TestListLoans(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	alice, bob := env.signUp(t, "Alice"), env.signUp(t, "Bob")
	group := newGroup(t, alice, bob)
	contribute(t, alice, group.Id, 1000)
	ctx := context.Background()

	decided := requestLoan(t, bob, group.Id, 100)
	_, err := vote(alice, decided.Id, true)
	require.NoError(t, err)
	_, err = vote(bob, decided.Id, true)
	require.NoError(t, err)
	requestLoan(t, alice, group.Id, 200)

	tests := []struct {
		status string
		want   int
	}{
		{"", 2},
		{"pending", 1},
		{"approved", 1},
		{"rejected", 0},
	}
	for _, tt := range tests {
		t.Run("status="+tt.status, func(t *testing.T) {
			resp, err := alice.Loans.ListLoans(ctx, connect.NewRequest(&pb.ListLoansRequest{GroupId: group.Id, Status: tt.status}))
			require.NoError(t, err)
			assert.Len(t, resp.Msg.Loans, tt.want)
		})
	}

	_, err = alice.Loans.ListLoans(ctx, connect.NewRequest(&pb.ListLoansRequest{GroupId: group.Id, Status: "paid"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestConcurrentVotesOverRPC(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	users := []*user{
		env.signUp(t, "Alice"), env.signUp(t, "Bob"), env.signUp(t, "Carol"),
		env.signUp(t, "Dan"), env.signUp(t, "Esi"),
	}
	group := newGroup(t, users[0], users[1:]...)
	contribute(t, users[0], group.Id, 1000)
	loan := requestLoan(t, users[0], group.Id, 100)

	var wg sync.WaitGroup
	errs := make([]error, len(users))
	for i, u := range users {
		wg.Add(1)
		go func(i int, u *user) {
			defer wg.Done()
			_, errs[i] = vote(u, loan.Id, true)
		}(i, u)
	}
	wg.Wait()

	var accepted, late int
	for _, err := range errs {
		switch connect.CodeOf(err) {
		case connect.CodeUnknown:
			if err == nil {
				accepted++
			} else {
				t.Errorf("unexpected error: %v", err)
			}
		case connect.CodeFailedPrecondition:
			late++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	// Three approvals out of five resolve the loan; later voters find it closed.
	assert.Equal(t, 3, accepted)
	assert.Equal(t, 2, late)

	got, err := users[0].Loans.GetLoan(context.Background(), connect.NewRequest(&pb.GetLoanRequest{LoanId: loan.Id}))
	require.NoError(t, err)
	assert.Equal(t, "approved", got.Msg.Loan.Status)
	assert.Len(t, got.Msg.Loan.Votes, 3)
}
