package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/notes-server/internal/logger"
	"github.com/avolkov/notes-server/internal/model"
)

func TestAuth_SignUp(t *testing.T) {
	ctx := context.Background()
	userStore := &mockUserStore{}
	log := logger.New(0)

	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "alice" && u.Name == "Alice" && u.PasswordHash == "hashed:secret123" && u.ID != uuid.Nil
	})).Return(model.User{ID: uuid.New(), Username: "alice", Name: "Alice", PasswordHash: "hashed:secret123"}, nil)

	a := NewAuth(userStore, fakeHasher{}, &mockTokenManager{}, log)

	user, err := a.SignUp(ctx, "alice", "Alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	userStore.AssertExpectations(t)
}

func TestAuth_SignUp_MissingFields(t *testing.T) {
	ctx := context.Background()
	a := NewAuth(&mockUserStore{}, fakeHasher{}, &mockTokenManager{}, logger.New(0))

	var vErr *model.ValidationError

	_, err := a.SignUp(ctx, "", "Alice", "secret123")
	require.ErrorAs(t, err, &vErr)

	_, err = a.SignUp(ctx, "alice", "Alice", "")
	require.ErrorAs(t, err, &vErr)
}

func TestAuth_SignUp_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	userStore := &mockUserStore{}
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrUsernameTaken)

	a := NewAuth(userStore, fakeHasher{}, &mockTokenManager{}, logger.New(0))

	_, err := a.SignUp(ctx, "alice", "Alice", "secret123")
	require.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	userStore := &mockUserStore{}
	tokMan := &mockTokenManager{}

	userStore.On("GetByUsername", mock.Anything, "alice").
		Return(model.User{ID: userID, Username: "alice", Name: "Alice", PasswordHash: "hashed:secret123"}, nil)
	tokMan.On("Generate", "alice", userID).Return("token-string", nil)

	a := NewAuth(userStore, fakeHasher{}, tokMan, logger.New(0))

	tokenString, user, err := a.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "token-string", tokenString)
	assert.Equal(t, userID, user.ID)
	tokMan.AssertExpectations(t)
}

func TestAuth_Login_UnknownUserAndWrongPasswordFailIdentically(t *testing.T) {
	ctx := context.Background()
	userStore := &mockUserStore{}

	userStore.On("GetByUsername", mock.Anything, "nobody").Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByUsername", mock.Anything, "alice").
		Return(model.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed:secret123"}, nil)

	a := NewAuth(userStore, fakeHasher{}, &mockTokenManager{}, logger.New(0))

	_, _, unknownErr := a.Login(ctx, "nobody", "secret123")
	_, _, wrongErr := a.Login(ctx, "alice", "wrong")

	require.ErrorIs(t, unknownErr, model.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, model.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
