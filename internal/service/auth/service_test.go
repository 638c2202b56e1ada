package auth

import (
	"context"
	"strconv"
	"testing"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/jwt"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type memoryUserRepo struct {
	users  map[string]user.User // by id
	nextID int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]user.User)}
}

func (m *memoryUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	m.nextID++
	u.ID = "user-" + strconv.Itoa(m.nextID)
	m.users[u.ID] = u
	return u, nil
}

func (m *memoryUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUserRepo) List(ctx context.Context, search string, role *user.Role, page, limit int) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (m *memoryUserRepo) Delete(ctx context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func newTestAuthService() (AuthService, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService), repo
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAuthService()

	resp, pair, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "Ada@Example.com",
		Password: "password123",
		Role:     "graduate",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", resp.Email)
	assert.Equal(t, user.RoleGraduate, resp.Role)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Greater(t, pair.AccessTokenExpiresAt, int64(0))

	stored, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	_, _, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	req := user.RegisterRequest{Email: "ada@example.com", Password: "password123", Role: "graduate"}
	_, _, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	_, _, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "ada@example.com",
		Password: "password123",
		Role:     "graduate",
	})
	require.NoError(t, err)

	resp, pair, err := svc.Login(ctx, user.LoginRequest{Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", resp.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	_, _, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "ada@example.com",
		Password: "password123",
		Role:     "graduate",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, user.LoginRequest{Email: "ada@example.com", Password: "wrongpassword"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	// Unknown email reports the same error as a wrong password.
	_, _, err := svc.Login(ctx, user.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	_, pair, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "ada@example.com",
		Password: "password123",
		Role:     "graduate",
	})
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEmpty(t, fresh.RefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	_, pair, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "ada@example.com",
		Password: "password123",
		Role:     "graduate",
	})
	require.NoError(t, err)

	// An access token is not a refresh token.
	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	_, err := svc.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAuthService()

	created, _, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "ada@example.com",
		Password: "password123",
		Role:     "company",
	})
	require.NoError(t, err)

	resp, err := svc.Me(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, resp.Email)
	assert.Equal(t, user.RoleCompany, resp.Role)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = svc.Me(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
