package auth

import (
	"context"
	"testing"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/auth"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/user"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	newUser.ID = "u-" + newUser.Email
	newUser.CreatedAt = time.Now()
	f.byEmail[newUser.Email] = newUser
	return newUser, nil
}

func newTestService(repo *fakeUserRepo) auth.AuthService {
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "8h", "168h"))
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{
		"hr@example.com": {
			ID:           "u-1",
			Email:        "hr@example.com",
			PasswordHash: hashOf(t, "correct horse"),
			Role:         user.RoleAdmin,
		},
	}}
	svc := newTestService(repo)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "admin", tokens.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{
		"hr@example.com": {
			ID:           "u-1",
			Email:        "hr@example.com",
			PasswordHash: hashOf(t, "correct horse"),
			Role:         user.RoleAdmin,
		},
	}}
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeUserRepo{byEmail: map[string]user.User{}})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{
		"hr@example.com": {
			ID:           "u-1",
			Email:        "hr@example.com",
			PasswordHash: hashOf(t, "correct horse"),
			Role:         user.RoleViewer,
		},
	}}
	svc := newTestService(repo)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{
		"hr@example.com": {
			ID:           "u-1",
			Email:        "hr@example.com",
			PasswordHash: hashOf(t, "correct horse"),
			Role:         user.RoleViewer,
		},
	}}
	svc := newTestService(repo)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: tokens.AccessToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestCreateUser(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{}}
	svc := newTestService(repo)

	created, err := svc.CreateUser(context.Background(), auth.CreateUserRequest{
		Email:    "viewer@example.com",
		Password: "long enough",
		Role:     "viewer",
	})
	require.NoError(t, err)
	assert.Equal(t, "viewer@example.com", created.Email)
	assert.Equal(t, "viewer", created.Role)
	assert.NotEmpty(t, created.ID)

	// The stored hash must verify against the original password
	stored := repo.byEmail["viewer@example.com"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("long enough")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{
		"taken@example.com": {ID: "u-1", Email: "taken@example.com"},
	}}
	svc := newTestService(repo)

	_, err := svc.CreateUser(context.Background(), auth.CreateUserRequest{
		Email:    "taken@example.com",
		Password: "long enough",
		Role:     "viewer",
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestCreateUserInvalidRole(t *testing.T) {
	svc := newTestService(&fakeUserRepo{byEmail: map[string]user.User{}})

	_, err := svc.CreateUser(context.Background(), auth.CreateUserRequest{
		Email:    "x@example.com",
		Password: "long enough",
		Role:     "superuser",
	})
	assert.Error(t, err)
}
