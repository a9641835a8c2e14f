package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/achievify/goal-tracker/internal/lib/apperr"
	"github.com/achievify/goal-tracker/internal/lib/jwt"
	"github.com/achievify/goal-tracker/internal/lib/password"
	"github.com/achievify/goal-tracker/internal/models"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UsersMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newMaker() jwt.Maker {
	return jwt.NewJWTMaker("test_secret_key_1234567890", 15*time.Minute)
}

func TestAuthService_Register(t *testing.T) {
	users := new(UsersMock)
	users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Username == "alice" && u.Email == "alice@example.com" && u.PasswordHash != "secret123"
	})).Return("uid-1", nil)

	svc := NewAuthService(users, newMaker())
	uid, err := svc.Register(context.Background(), "alice@example.com", "alice", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	users.AssertExpectations(t)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	users := new(UsersMock)
	users.On("GetUserByUsername", mock.Anything, "alice").Return(&models.User{
		UID:          "uid-1",
		Username:     "alice",
		PasswordHash: hash,
	}, nil)

	svc := NewAuthService(users, newMaker())
	token, err := svc.Login(context.Background(), "alice", "secret123")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "uid-1", user.UID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	users := new(UsersMock)
	users.On("GetUserByUsername", mock.Anything, "alice").Return(&models.User{
		UID:          "uid-1",
		Username:     "alice",
		PasswordHash: hash,
	}, nil)

	svc := NewAuthService(users, newMaker())
	_, err = svc.Login(context.Background(), "alice", "wrong")

	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := new(UsersMock)
	users.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, apperr.ErrNotFound)

	svc := NewAuthService(users, newMaker())
	_, err := svc.Login(context.Background(), "ghost", "whatever")

	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	users := new(UsersMock)
	users.On("GetUserByUsername", mock.Anything, "alice").Return(nil, apperr.ErrStoreUnavailable)

	svc := NewAuthService(users, newMaker())
	_, err := svc.Login(context.Background(), "alice", "secret123")

	require.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	require.False(t, errors.Is(err, apperr.ErrInvalidCredentials))
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	expiredMaker := jwt.NewJWTMaker("test_secret_key_1234567890", -time.Minute)
	token, err := expiredMaker.GenerateToken("alice", "uid-1")
	require.NoError(t, err)

	svc := NewAuthService(new(UsersMock), expiredMaker)
	_, err = svc.ValidateToken(context.Background(), token)

	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(new(UsersMock), newMaker())
	_, err := svc.ValidateToken(context.Background(), "not.a.token")

	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}
