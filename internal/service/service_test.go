package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Denniskaninu/chama-smart-sync/internal/auth"
	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/middleware"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	"github.com/Denniskaninu/chama-smart-sync/internal/refcheck"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage/sqlite"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
	"github.com/Denniskaninu/chama-smart-sync/pkg/proto/protoconnect"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// testEnv is a running API server over a temp SQLite database.
type testEnv struct {
	server *httptest.Server
	ledger *ledger.Ledger
	bus    *notify.Bus

	mu      sync.Mutex
	notices []notify.Notice
}

type envOptions struct {
	ledgerOpts []ledger.Option
	checkRate  float64
	checkBurst int
}

func setupTestServer(t *testing.T, opts envOptions) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	env := &testEnv{
		ledger: ledger.New(store, live.NewHub(16), opts.ledgerOpts...),
		bus:    notify.NewBus(quietLogger),
	}
	env.bus.Register(func(ctx context.Context, n notify.Notice) {
		env.mu.Lock()
		env.notices = append(env.notices, n)
		env.mu.Unlock()
	})

	mux := http.NewServeMux()
	Mount(mux, Deps{
		Ledger:        env.ledger,
		Checker:       refcheck.NewChecker(refcheck.HeuristicClassifier{}, refcheck.WithLogger(quietLogger)),
		Bus:           env.bus,
		Authenticator: auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost),
		JWT:           auth.NewJWTManager("service-test-secret-0123456789", time.Hour),
		Users:         store,
		Logger:        quietLogger,
		CheckRate:     opts.checkRate,
		CheckBurst:    opts.checkBurst,
	})

	env.server = httptest.NewServer(mux)
	t.Cleanup(env.server.Close)
	return env
}

func (e *testEnv) Notices() []notify.Notice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]notify.Notice(nil), e.notices...)
}

// user is a registered account with clients bound to its token.
type user struct {
	ID    string
	Name  string
	Token string

	Groups        protoconnect.GroupServiceClient
	Contributions protoconnect.ContributionServiceClient
	Loans         protoconnect.LoanServiceClient
	Feed          protoconnect.FeedServiceClient
	Auth          protoconnect.AuthServiceClient
}

func (e *testEnv) anonymous() *user {
	return e.clients(&user{})
}

func (e *testEnv) clients(u *user) *user {
	opts := []connect.ClientOption{connect.WithInterceptors(middleware.BearerCredentials(u.Token))}
	hc := e.server.Client()
	u.Groups = protoconnect.NewGroupServiceClient(hc, e.server.URL, opts...)
	u.Contributions = protoconnect.NewContributionServiceClient(hc, e.server.URL, opts...)
	u.Loans = protoconnect.NewLoanServiceClient(hc, e.server.URL, opts...)
	u.Feed = protoconnect.NewFeedServiceClient(hc, e.server.URL, opts...)
	u.Auth = protoconnect.NewAuthServiceClient(hc, e.server.URL, opts...)
	return u
}

func (e *testEnv) signUp(t *testing.T, name string) *user {
	t.Helper()
	resp, err := e.anonymous().Auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       fmt.Sprintf("%s@example.com", name),
		DisplayName: name,
		Password:    "correct-horse",
	}))
	require.NoError(t, err)
	return e.clients(&user{ID: resp.Msg.User.Id, Name: name, Token: resp.Msg.Token})
}

// newGroup creates a group owned by founder and joined by the others.
func newGroup(t *testing.T, founder *user, others ...*user) *pb.Group {
	t.Helper()
	ctx := context.Background()
	resp, err := founder.Groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{
		Name:        "Umoja",
		Description: "Weekly savings",
	}))
	require.NoError(t, err)
	group := resp.Msg.Group
	for _, u := range others {
		joined, err := u.Groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{GroupId: group.Id}))
		require.NoError(t, err)
		group = joined.Msg.Group
	}
	return group
}

func contribute(t *testing.T, u *user, groupID string, amount int64) *pb.RecordContributionResponse {
	t.Helper()
	resp, err := u.Contributions.RecordContribution(context.Background(), connect.NewRequest(&pb.RecordContributionRequest{
		GroupId: groupID,
		Amount:  amount,
		Ref:     "QGH7XK2P9L",
	}))
	require.NoError(t, err)
	return resp.Msg
}

// Every group read other than GetGroup is limited to members.
func TestReadsRequireMembership(t *testing.T) {
	env := setupTestServer(t, envOptions{ledgerOpts: []ledger.Option{ledger.WithBalancePolicy(false)}})
	alice, eve := env.signUp(t, "Alice"), env.signUp(t, "Eve")
	group := newGroup(t, alice)
	ctx := context.Background()

	contribute(t, alice, group.Id, 100)
	loan, err := alice.Loans.RequestLoan(ctx, connect.NewRequest(&pb.RequestLoanRequest{GroupId: group.Id, Amount: 50}))
	require.NoError(t, err)

	reads := []struct {
		name      string
		operation string
		call      func(u *user) error
	}{
		{"ListContributions", "list", func(u *user) error {
			_, err := u.Contributions.ListContributions(ctx, connect.NewRequest(&pb.ListContributionsRequest{GroupId: group.Id}))
			return err
		}},
		{"ListMessages", "list", func(u *user) error {
			_, err := u.Feed.ListMessages(ctx, connect.NewRequest(&pb.ListMessagesRequest{GroupId: group.Id}))
			return err
		}},
		{"ListReceipts", "list", func(u *user) error {
			_, err := u.Feed.ListReceipts(ctx, connect.NewRequest(&pb.ListReceiptsRequest{GroupId: group.Id}))
			return err
		}},
		{"ListLoans", "list", func(u *user) error {
			_, err := u.Loans.ListLoans(ctx, connect.NewRequest(&pb.ListLoansRequest{GroupId: group.Id}))
			return err
		}},
		{"GetLoan", "get", func(u *user) error {
			_, err := u.Loans.GetLoan(ctx, connect.NewRequest(&pb.GetLoanRequest{LoanId: loan.Msg.Loan.Id}))
			return err
		}},
	}

	for _, tt := range reads {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.call(alice), "members may read")

			err := tt.call(eve)
			require.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
			detail, ok := PermissionDetail(err)
			require.True(t, ok)
			assert.Equal(t, tt.operation, detail.Fields["operation"].GetStringValue())

			err = tt.call(env.anonymous())
			assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
		})
	}

	_, err = eve.Groups.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: group.Id}))
	assert.NoError(t, err, "group details stay readable for invite links")
}
