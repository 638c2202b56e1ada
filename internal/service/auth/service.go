package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair carries an access token plus the refresh token destined for the
// http-only cookie.
type TokenPair struct {
	AccessToken           string
	AccessTokenExpiresAt  int64
	RefreshToken          string
	RefreshTokenExpiresAt int64
}

type AuthService interface {
	Register(ctx context.Context, req user.RegisterRequest) (user.Response, TokenPair, error)
	Login(ctx context.Context, req user.LoginRequest) (user.Response, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Me(ctx context.Context, userID string) (user.Response, error)
}

type AuthServiceImpl struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthService(users user.Repository, jwtService jwt.Service) AuthService {
	return &AuthServiceImpl{
		users: users,
		jwt:   jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issueTokens(u user.User) (TokenPair, error) {
	var pair TokenPair
	var err error

	pair.AccessToken, pair.AccessTokenExpiresAt, err = a.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to create access token: %w", err)
	}
	pair.RefreshToken, pair.RefreshTokenExpiresAt, err = a.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return pair, nil
}

// Register creates a user account and logs it in.
func (a *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.Response, TokenPair, error) {
	if err := req.Validate(); err != nil {
		return user.Response{}, TokenPair{}, err
	}

	role, _ := user.ParseRole(strings.TrimSpace(req.Role))

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return user.Response{}, TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.users.Create(ctx, user.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return user.Response{}, TokenPair{}, err
	}

	pair, err := a.issueTokens(created)
	if err != nil {
		return user.Response{}, TokenPair{}, err
	}

	return user.ToResponse(created), pair, nil
}

// Login verifies credentials and issues a token pair.
func (a *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.Response, TokenPair, error) {
	if err := req.Validate(); err != nil {
		return user.Response{}, TokenPair{}, err
	}

	userData, err := a.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Same error for unknown email and wrong password.
		return user.Response{}, TokenPair{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return user.Response{}, TokenPair{}, user.ErrInvalidCredentials
	}

	pair, err := a.issueTokens(userData)
	if err != nil {
		return user.Response{}, TokenPair{}, err
	}

	return user.ToResponse(userData), pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	userID, err := a.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, user.ErrInvalidRefreshToken
	}

	userData, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return TokenPair{}, user.ErrInvalidRefreshToken
	}

	return a.issueTokens(userData)
}

// Me returns the authenticated user's profile.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (user.Response, error) {
	userData, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return user.Response{}, err
	}
	return user.ToResponse(userData), nil
}
