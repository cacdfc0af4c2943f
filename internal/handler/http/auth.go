package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rcc-dimension/attendance-backend-go/internal/domain/auth"
	"github.com/rcc-dimension/attendance-backend-go/internal/handler/http/response"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/jwtoken"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService  auth.AuthService
	tokenService jwtoken.Service
}

func NewAuthHandler(authService auth.AuthService, tokenService jwtoken.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err, "email", loginReq.Email)
		response.HandleError(w, err)
		return
	}

	slog.Info("Login success", "email", loginReq.Email, "userType", loginResp.UserType)
	response.JSON(w, http.StatusOK, loginResp)
}

// Me implements AuthHandler. It echoes back the identity carried by the
// bearer token. The middleware already rejected absent or unverifiable
// tokens, but the claims are re-checked here.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := a.tokenService.Verify(jwtauth.TokenFromHeader(r))
	if err != nil {
		slog.Error("Me token error", "error", err)
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	response.JSON(w, http.StatusOK, auth.UserResponse{Email: claims.Email})
}
