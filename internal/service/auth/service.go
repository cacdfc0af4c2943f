package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/auth"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/jwtoken"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/validator"
)

const usersRange = "Users!A:C"

// The Users sheet has no header row guarantees, so the adapter falls back
// to these names.
var usersFallbackHeaders = []string{"Email", "Password", "Role"}

type AuthServiceImpl struct {
	store  sheetdb.Store
	tokens jwtoken.Service
}

func NewAuthService(store sheetdb.Store, tokens jwtoken.Service) auth.AuthService {
	return &AuthServiceImpl{
		store:  store,
		tokens: tokens,
	}
}

// Login implements auth.AuthService. The match on email and password is
// exact and case-sensitive; the sheet is the credential store.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	table, err := rowtable.Fetch(ctx, s.store, usersRange, usersFallbackHeaders)
	if err != nil {
		if errors.Is(err, rowtable.ErrEmptyTable) {
			return auth.LoginResponse{}, auth.ErrNoUsers
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to read users sheet: %w", err)
	}

	if err := table.RequireColumns("Email", "Password", "Role"); err != nil {
		return auth.LoginResponse{}, err
	}

	// Headers may differ in casing from the canonical names.
	emailCol, _ := table.Column("Email")
	passwordCol, _ := table.Column("Password")
	roleCol, _ := table.Column("Role")

	var userType string
	found := false
	for _, rec := range table.Records {
		if rec[emailCol] == req.Email && rec[passwordCol] == req.Password {
			userType = rec[roleCol]
			found = true
			break
		}
	}
	if !found {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !validator.IsInSlice(userType, auth.AllowedUserTypes) {
		return auth.LoginResponse{}, auth.ErrInvalidUserType
	}

	token, err := s.tokens.Generate(req.Email, userType)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return auth.LoginResponse{
		Token:    token,
		UserType: userType,
	}, nil
}
