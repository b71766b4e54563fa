package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/Denniskaninu/chama-smart-sync/internal/auth"
	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/middleware"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	"github.com/Denniskaninu/chama-smart-sync/internal/refcheck"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
	"github.com/Denniskaninu/chama-smart-sync/pkg/proto/protoconnect"
)

// Deps are the collaborators of the RPC services.
type Deps struct {
	Ledger        *ledger.Ledger
	Checker       *refcheck.Checker
	Bus           *notify.Bus
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
	Users         storage.UserStore
	Logger        *slog.Logger

	// CheckRate and CheckBurst throttle CheckReference per caller.
	CheckRate  float64
	CheckBurst int
}

// publicProcedures may be called without a token.
var publicProcedures = []string{
	protoconnect.AuthServiceRegisterProcedure,
	protoconnect.AuthServiceLoginProcedure,
}

// Mount registers every chama.v1 service on mux behind the auth and logging
// interceptors.
func Mount(mux *http.ServeMux, d Deps) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.CheckRate <= 0 {
		d.CheckRate = 5
	}
	if d.CheckBurst <= 0 {
		d.CheckBurst = 10
	}

	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(d.JWT, publicProcedures...),
		middleware.NewLoggingInterceptor(d.Logger),
	)

	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(d.Ledger, d.Bus), interceptors))
	mux.Handle(protoconnect.NewContributionServiceHandler(
		NewContributionService(d.Ledger, d.Checker, d.Bus, d.CheckRate, d.CheckBurst), interceptors))
	mux.Handle(protoconnect.NewLoanServiceHandler(NewLoanService(d.Ledger, d.Bus), interceptors))
	mux.Handle(protoconnect.NewFeedServiceHandler(NewFeedService(d.Ledger, d.Bus), interceptors))
	mux.Handle(protoconnect.NewAuthServiceHandler(
		NewAuthService(d.Authenticator, d.JWT, d.Users, d.Logger), interceptors))
}
