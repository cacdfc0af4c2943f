package auth

import "errors"

var (
	ErrNoUsers            = errors.New("no users found in the sheet")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrNoToken            = errors.New("no token")
	ErrInvalidToken       = errors.New("invalid token")
)
