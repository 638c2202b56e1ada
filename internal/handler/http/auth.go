package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/handler/http/response"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/jwt"
	"github.com/DLT-Africa-Hub/Recruita/internal/service/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *AuthHandlerImpl) writeAuthResponse(w http.ResponseWriter, u user.Response, pair auth.TokenPair, message string) {
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshTokenExpiresAt))
	response.SuccessWithMessage(w, message, user.AuthResponse{
		User:        u,
		AccessToken: pair.AccessToken,
		ExpiresAt:   pair.AccessTokenExpiresAt,
	})
}

// Register handles POST /auth/register
func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	u, pair, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.writeAuthResponse(w, u, pair, "Registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	u, pair, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.writeAuthResponse(w, u, pair, "Logged in successfully")
}

// RefreshToken handles POST /auth/refresh using the http-only cookie
func (h *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, user.ErrInvalidRefreshToken)
		return
	}

	pair, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshTokenExpiresAt))
	response.Success(w, map[string]interface{}{
		"access_token": pair.AccessToken,
		"expires_at":   pair.AccessTokenExpiresAt,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	expired := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// Me handles GET /auth/me
func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	u, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, u)
}
