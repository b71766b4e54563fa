package middleware

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/Denniskaninu/chama-smart-sync/internal/auth"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// IdentityKey is the context key for the authenticated models.Identity.
const IdentityKey contextKey = "identity"

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

// IdentityFrom extracts the authenticated identity from the context.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(models.Identity)
	return id, ok && id.UID != ""
}

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	id, _ := IdentityFrom(ctx)
	return id.UID
}

// AuthInterceptor validates Bearer tokens on every procedure except the
// public ones and stores the caller's identity in the context.
type AuthInterceptor struct {
	jwtManager *auth.JWTManager
	public     map[string]bool
}

var _ connect.Interceptor = (*AuthInterceptor)(nil)

// RequireAuth creates an interceptor. Procedures listed in public are let
// through without a token; a valid token on them is still honoured.
func RequireAuth(jwtManager *auth.JWTManager, public ...string) *AuthInterceptor {
	set := make(map[string]bool, len(public))
	for _, p := range public {
		set[p] = true
	}
	return &AuthInterceptor{jwtManager: jwtManager, public: set}
}

func (i *AuthInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		ctx, err := i.authenticate(ctx, req.Spec().Procedure, req.Header())
		if err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
}

func (i *AuthInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *AuthInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		ctx, err := i.authenticate(ctx, conn.Spec().Procedure, conn.RequestHeader())
		if err != nil {
			return err
		}
		return next(ctx, conn)
	}
}

func (i *AuthInterceptor) authenticate(ctx context.Context, procedure string, header http.Header) (context.Context, error) {
	authHeader := header.Get("Authorization")
	if authHeader == "" {
		if i.public[procedure] {
			return ctx, nil
		}
		return ctx, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	// Parse Bearer token
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		if i.public[procedure] {
			return ctx, nil
		}
		return ctx, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
	}

	claims, err := i.jwtManager.Validate(strings.TrimSpace(token))
	if err != nil {
		if i.public[procedure] {
			return ctx, nil
		}
		return ctx, connect.NewError(connect.CodeUnauthenticated, err)
	}

	return WithIdentity(ctx, claims.Identity()), nil
}

// BearerCredentials attaches a token to every outgoing request, unary or
// streaming.
type BearerCredentials string

var _ connect.Interceptor = BearerCredentials("")

func (b BearerCredentials) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient && b != "" {
			req.Header().Set("Authorization", "Bearer "+string(b))
		}
		return next(ctx, req)
	}
}

func (b BearerCredentials) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return func(ctx context.Context, spec connect.Spec) connect.StreamingClientConn {
		conn := next(ctx, spec)
		if b != "" {
			conn.RequestHeader().Set("Authorization", "Bearer "+string(b))
		}
		return conn
	}
}

func (b BearerCredentials) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return next
}
