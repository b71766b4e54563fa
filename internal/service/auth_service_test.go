package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	ctx := context.Background()
	anon := env.anonymous()

	reg, err := anon.Auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email: "Wanjiku@Example.com", DisplayName: "Wanjiku", Password: "correct-horse",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Msg.Token)
	assert.Equal(t, "wanjiku@example.com", reg.Msg.User.Email)

	login, err := anon.Auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email: "wanjiku@example.com", Password: "correct-horse",
	}))
	require.NoError(t, err)
	assert.Equal(t, reg.Msg.User.Id, login.Msg.User.Id)

	me := env.clients(&user{Token: login.Msg.Token})
	cur, err := me.Auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "Wanjiku", cur.Msg.User.DisplayName)

	_, err = anon.Auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestRegisterErrors(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	env.signUp(t, "Alice")

	tests := []struct {
		name string
		req  *pb.RegisterRequest
		code connect.Code
	}{
		{"duplicate email", &pb.RegisterRequest{Email: "alice@example.com", DisplayName: "A", Password: "correct-horse"}, connect.CodeAlreadyExists},
		{"weak password", &pb.RegisterRequest{Email: "bob@example.com", DisplayName: "Bob", Password: "short"}, connect.CodeInvalidArgument},
		{"bad email", &pb.RegisterRequest{Email: "bob", DisplayName: "Bob", Password: "correct-horse"}, connect.CodeInvalidArgument},
		{"missing name", &pb.RegisterRequest{Email: "bob@example.com", Password: "correct-horse"}, connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.anonymous().Auth.Register(context.Background(), connect.NewRequest(tt.req))
			assert.Equal(t, tt.code, connect.CodeOf(err))
		})
	}
}

func TestLoginFailures(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	env.signUp(t, "Alice")
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
		pass  string
		code  connect.Code
	}{
		{"wrong password", "Alice@example.com", "wrong-horse", connect.CodeUnauthenticated},
		{"unknown email", "nobody@example.com", "correct-horse", connect.CodeUnauthenticated},
		{"empty", "", "", connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.anonymous().Auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: tt.email, Password: tt.pass}))
			assert.Equal(t, tt.code, connect.CodeOf(err))
		})
	}
}
