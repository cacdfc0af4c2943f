package auth

import (
	"context"
	"testing"
	"time"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/auth"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/jwtoken"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newService(users [][]string) auth.AuthService {
	store := sheetdb.NewMemStore(map[string][][]string{"Users": users})
	return NewAuthService(store, jwtoken.New(testSecret, time.Hour))
}

func TestLogin_Success(t *testing.T) {
	svc := newService([][]string{
		{"Email", "Password", "Role"},
		{"asha@x.com", "secret", "Admin"},
	})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@x.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Admin", resp.UserType)

	// The token must decode back to the same identity.
	claims, err := jwtoken.New(testSecret, time.Hour).Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "asha@x.com", claims.Email)
	assert.Equal(t, "Admin", claims.UserType)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newService([][]string{
		{"Email", "Password", "Role"},
		{"asha@x.com", "secret", "Admin"},
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@x.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_CaseSensitiveMatch(t *testing.T) {
	svc := newService([][]string{
		{"Email", "Password", "Role"},
		{"asha@x.com", "Secret", "Admin"},
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "Asha@x.com",
		Password: "Secret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_RecasedHeaderRow(t *testing.T) {
	svc := newService([][]string{
		{"EMAIL", "PASSWORD", "ROLE"},
		{"asha@x.com", "secret", "Admin"},
	})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@x.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Admin", resp.UserType)
}

func TestLogin_RoleOutsideAllowList(t *testing.T) {
	svc := newService([][]string{
		{"Email", "Password", "Role"},
		{"guest@x.com", "secret", "Contractor"},
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "guest@x.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidUserType)
}

func TestLogin_EmptySheet(t *testing.T) {
	svc := newService(nil)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@x.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, auth.ErrNoUsers)
}

func TestLogin_FirstMatchWins(t *testing.T) {
	svc := newService([][]string{
		{"Email", "Password", "Role"},
		{"asha@x.com", "secret", "Admin"},
		{"asha@x.com", "secret", "Contractor"},
	})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@x.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Admin", resp.UserType)
}
