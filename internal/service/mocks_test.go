package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/avolkov/notes-server/internal/model"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserStore) AppendNoteID(ctx context.Context, userID, noteID uuid.UUID) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

type mockNoteStore struct {
	mock.Mock
}

func (m *mockNoteStore) GetByID(ctx context.Context, id uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockNoteStore) List(ctx context.Context) ([]model.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *mockNoteStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *mockNoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockNoteStore) Update(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockNoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) Generate(username string, userID uuid.UUID) (string, error) {
	args := m.Called(username, userID)
	return args.String(0), args.Error(1)
}

func (m *mockTokenManager) Parse(token string) (model.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenClaims), args.Error(1)
}

// fakeHasher avoids bcrypt cost in unit tests.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Verify(plaintext, digest string) bool {
	return digest == "hashed:"+plaintext
}
