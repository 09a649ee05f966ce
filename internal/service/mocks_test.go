package service_test

import (
	"context"
	"file-storage-server/internal/model"
	"file-storage-server/internal/platform"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/query"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAccount struct{ mock.Mock }

func (m *MockAccount) CreateEmailToken(ctx context.Context, userID, email string) (*model.Token, error) {
	args := m.Called(ctx, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockAccount) CreateSession(ctx context.Context, userID, secret string) (*model.Session, error) {
	args := m.Called(ctx, userID, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockAccount) Get(ctx context.Context) (*model.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccount) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockDatabases struct{ mock.Mock }

func (m *MockDatabases) ListUsers(ctx context.Context, queries []query.Query) (*model.UserList, error) {
	args := m.Called(ctx, queries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserList), args.Error(1)
}

func (m *MockDatabases) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockDatabases) CreateFile(ctx context.Context, file *model.File) (*model.File, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockDatabases) GetFile(ctx context.Context, fileID string) (*model.File, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockDatabases) ListFiles(ctx context.Context, queries []query.Query) (*model.FileList, error) {
	args := m.Called(ctx, queries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileList), args.Error(1)
}

func (m *MockDatabases) UpdateFile(ctx context.Context, fileID string, update model.FileUpdate) (*model.File, error) {
	args := m.Called(ctx, fileID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockDatabases) DeleteFile(ctx context.Context, fileID string) error {
	return m.Called(ctx, fileID).Error(0)
}

func (m *MockDatabases) SpaceUsage(ctx context.Context, ownerID string) (map[string]model.TypeUsage, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.TypeUsage), args.Error(1)
}

type MockStorage struct{ mock.Mock }

func (m *MockStorage) CreateFile(ctx context.Context, fileID string, file model.InputFile) (*model.BucketFile, error) {
	args := m.Called(ctx, fileID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BucketFile), args.Error(1)
}

func (m *MockStorage) GetFile(ctx context.Context, fileID string) (io.ReadCloser, *model.BucketFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.BucketFile), args.Error(2)
}

func (m *MockStorage) DeleteFile(ctx context.Context, fileID string) error {
	return m.Called(ctx, fileID).Error(0)
}

type MockAvatars struct{ mock.Mock }

func (m *MockAvatars) GetInitials(name string) string {
	return m.Called(name).String(0)
}

type MockFileCache struct{ mock.Mock }

func (m *MockFileCache) SetFile(ctx context.Context, file *model.File) error {
	return m.Called(ctx, file).Error(0)
}

func (m *MockFileCache) GetFile(ctx context.Context, fileID string) (*model.File, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileCache) DeleteFile(ctx context.Context, fileID string) error {
	return m.Called(ctx, fileID).Error(0)
}

type MockRouteCache struct{ mock.Mock }

func (m *MockRouteCache) RevalidatePath(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *MockRouteCache) RevalidatedAt(ctx context.Context, path string) (*time.Time, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) CreateAccount(ctx context.Context, fullName, email string) (string, error) {
	args := m.Called(ctx, fullName, email)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) SignInUser(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) VerifySecret(ctx context.Context, accountID, password string) (*model.Session, error) {
	args := m.Called(ctx, accountID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockUserService) GetCurrentUser(ctx context.Context, sessionSecret string) *model.User {
	args := m.Called(ctx, sessionSecret)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.User)
}

func (m *MockUserService) SignOutUser(ctx context.Context, sessionSecret string) error {
	return m.Called(ctx, sessionSecret).Error(0)
}

// fakeClients : фабрика клиентов поверх моков
type fakeClients struct {
	account        *MockAccount
	sessionAccount *MockAccount
	databases      *MockDatabases
	storage        *MockStorage
	avatars        *MockAvatars
}

func newFakeClients() *fakeClients {
	return &fakeClients{
		account:        new(MockAccount),
		sessionAccount: new(MockAccount),
		databases:      new(MockDatabases),
		storage:        new(MockStorage),
		avatars:        new(MockAvatars),
	}
}

func (f *fakeClients) Admin() ports.AdminClient {
	return fakeAdmin{f}
}

func (f *fakeClients) Session(secret string) (ports.SessionClient, error) {
	if secret == "" {
		return nil, platform.ErrNoSession
	}
	return fakeSession{f}, nil
}

type fakeAdmin struct{ f *fakeClients }

func (a fakeAdmin) Account() ports.Account     { return a.f.account }
func (a fakeAdmin) Databases() ports.Databases { return a.f.databases }
func (a fakeAdmin) Storage() ports.Storage     { return a.f.storage }
func (a fakeAdmin) Avatars() ports.Avatars     { return a.f.avatars }

type fakeSession struct{ f *fakeClients }

func (s fakeSession) Account() ports.Account     { return s.f.sessionAccount }
func (s fakeSession) Databases() ports.Databases { return s.f.databases }
