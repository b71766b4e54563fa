package auth

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage/sqlite"
)

func newAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "  Wanjiku@Example.com ", "Wanjiku", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "wanjiku@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	got, err := a.Authenticate(ctx, "WANJIKU@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = a.Authenticate(ctx, "wanjiku@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Authenticate(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "not-an-email", "X", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = a.Register(ctx, "otieno@example.com", "Otieno", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = a.Register(ctx, "akinyi@example.com", "Akinyi", "hunter22")
		}(i)
	}
	wg.Wait()

	var ok, exists int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrEmailExists):
			exists++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 3, exists)
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret-key-of-some-length", time.Hour)
	user := &models.User{ID: "uid-1", Email: "a@example.com", DisplayName: "Amina", PhotoURL: "https://img/a.png"}

	token, err := m.Generate(user)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{
		UID:         "uid-1",
		DisplayName: "Amina",
		Email:       "a@example.com",
		PhotoURL:    "https://img/a.png",
	}, claims.Identity())
}

func TestJWTRejects(t *testing.T) {
	m := NewJWTManager("test-secret-key-of-some-length", time.Hour)
	user := &models.User{ID: "uid-1", Email: "a@example.com"}

	t.Run("other secret", func(t *testing.T) {
		token, err := NewJWTManager("a-different-secret-entirely", time.Hour).Generate(user)
		require.NoError(t, err)
		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewJWTManager("test-secret-key-of-some-length", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.Generate(user)
		require.NoError(t, err)
		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "uid-1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
