package auth

import "context"

// AllowedUserTypes is the fixed set of roles permitted to log in. Anything
// else in the Role column is treated as a data-entry mistake.
var AllowedUserTypes = []string{
	"Admin",
	"Ravindra Singh",
	"Lt Col Mayank Sharma (Retd)",
	"Subhash Patidar",
}

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
