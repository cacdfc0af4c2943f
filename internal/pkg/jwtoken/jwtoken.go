package jwtoken

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrInvalidToken covers any token that fails signature, expiry, or claim
// checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity a token carries.
type Claims struct {
	Email    string
	UserType string
}

type Service interface {
	Generate(email, userType string) (string, error)
	Verify(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type jwtService struct {
	tokenAuth *jwtauth.JWTAuth
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) Service {
	return &jwtService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		ttl:       ttl,
	}
}

func (s *jwtService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *jwtService) Generate(email, userType string) (string, error) {
	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"email":    email,
		"userType": userType,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(s.ttl).Unix(),
	})
	return tokenString, err
}

func (s *jwtService) Verify(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(s.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	return ClaimsFromToken(token)
}

// ClaimsFromToken extracts the identity claims from an already-verified
// token, e.g. one pulled from the request context by jwtauth.Verifier.
func ClaimsFromToken(token jwt.Token) (Claims, error) {
	email, ok := token.Get("email")
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	emailStr, ok := email.(string)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	userType, ok := token.Get("userType")
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	userTypeStr, ok := userType.(string)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	return Claims{Email: emailStr, UserType: userTypeStr}, nil
}
