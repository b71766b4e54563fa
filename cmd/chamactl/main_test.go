package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Denniskaninu/chama-smart-sync/internal/auth"
	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	"github.com/Denniskaninu/chama-smart-sync/internal/refcheck"
	"github.com/Denniskaninu/chama-smart-sync/internal/service"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage/sqlite"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
)

func init() {
	color.NoColor = true
}

func TestFormatAmount(t *testing.T) {
	tests := map[int64]string{
		0:        "KES 0",
		999:      "KES 999",
		1000:     "KES 1,000",
		1234567:  "KES 1,234,567",
		-2500:    "-KES 2,500",
		10000000: "KES 10,000,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatAmount(in))
	}
}

func TestDescribeError(t *testing.T) {
	err := connect.NewError(connect.CodePermissionDenied, errors.New("not a member"))
	assert.Equal(t, "permission_denied: not a member", describeError(err))
	assert.Equal(t, "boom", describeError(errors.New("boom")))
}

func TestCheckRefsPrintsLatestVerdict(t *testing.T) {
	checker := refcheck.NewChecker(refcheck.HeuristicClassifier{},
		refcheck.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	in := strings.NewReader("QGH\nQGH7XK\nQGH7XK2P9L\n")
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, checkRefs(ctx, checker, 20*time.Millisecond, in, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "QGH7XK2P9L valid"), last)
}

func TestCheckRefsEmptyInput(t *testing.T) {
	checker := refcheck.NewChecker(refcheck.HeuristicClassifier{})
	var out bytes.Buffer
	require.NoError(t, checkRefs(context.Background(), checker, 20*time.Millisecond, strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}

func TestPrintEvent(t *testing.T) {
	var out bytes.Buffer
	printEvent(&out, &pb.GroupEvent{
		Kind:         "contribution",
		Contribution: &pb.Contribution{Amount: 1500, MemberName: "Wanjiru", Ref: "QGH7XK2P9L"},
		Group:        &pb.Group{KittyBalance: 4500},
	})
	assert.Contains(t, out.String(), "+ KES 1,500 from Wanjiru (ref QGH7XK2P9L)")
	assert.Contains(t, out.String(), "kitty: KES 4,500")

	out.Reset()
	printEvent(&out, &pb.GroupEvent{Kind: "group", Resync: true, Group: &pb.Group{Name: "Umoja"}})
	assert.Contains(t, out.String(), "fell behind")
	assert.Contains(t, out.String(), "Umoja")
}

func TestRunAgainstServer(t *testing.T) {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := sqlite.New(filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	jwt := auth.NewJWTManager("chamactl-test-secret-0123456789", time.Hour)
	mux := http.NewServeMux()
	service.Mount(mux, service.Deps{
		Ledger:        ledger.New(store, live.NewHub(8)),
		Checker:       refcheck.NewChecker(refcheck.HeuristicClassifier{}, refcheck.WithLogger(quiet)),
		Bus:           notify.NewBus(quiet),
		Authenticator: auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost),
		JWT:           jwt,
		Users:         store,
		Logger:        quiet,
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	user := models.NewUser("wanjiru@example.com", "Wanjiru", "unused")
	require.NoError(t, store.CreateUser(context.Background(), user))
	token, err := jwt.Generate(user)
	require.NoError(t, err)

	s := settings{URL: srv.URL, Token: token}
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, run(ctx, s, "create", []string{"Umoja", "Weekly", "savings"}, nil, &out))
	assert.Contains(t, out.String(), "Umoja")
	assert.Contains(t, out.String(), "members: *Wanjiru")
	groupID := strings.Fields(strings.SplitN(out.String(), "\n", 2)[0])[1]

	out.Reset()
	require.NoError(t, run(ctx, s, "contribute", []string{groupID, "2500", "qgh7xk2p9l"}, nil, &out))
	assert.Contains(t, out.String(), "Kitty balance: KES 2,500")

	out.Reset()
	require.NoError(t, run(ctx, s, "history", []string{"--check"}, nil, &out))
	assert.Contains(t, out.String(), "Umoja KES 2,500 from Wanjiru (ref QGH7XK2P9L) valid")
	assert.Contains(t, out.String(), "You have contributed KES 2,500")

	out.Reset()
	require.NoError(t, run(ctx, s, "groups", nil, nil, &out))
	assert.Contains(t, out.String(), "kitty: KES 0")

	err = run(ctx, s, "contribute", []string{"g", "lots", "QGH7XK2P9L"}, nil, &out)
	assert.ErrorContains(t, err, "invalid amount")

	err = run(ctx, s, "vote", []string{"loan"}, nil, &out)
	assert.ErrorContains(t, err, "usage")

	err = run(ctx, s, "dance", nil, nil, &out)
	assert.ErrorContains(t, err, "unknown command")

	anon := settings{URL: srv.URL}
	err = run(ctx, anon, "groups", nil, nil, &out)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}
