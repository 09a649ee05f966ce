package handler_test

import (
	"context"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

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

type MockFileService struct{ mock.Mock }

func (m *MockFileService) UploadFile(ctx context.Context, params ports.UploadFileParams) (*model.File, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) GetFiles(ctx context.Context, sessionSecret string, params ports.GetFilesParams) (*model.FileList, error) {
	args := m.Called(ctx, sessionSecret, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileList), args.Error(1)
}

func (m *MockFileService) GetFile(ctx context.Context, actor *model.User, fileID string) (*model.File, error) {
	args := m.Called(ctx, actor, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) RenameFile(ctx context.Context, actor *model.User, params ports.RenameFileParams) (*model.File, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) UpdateFileUsers(ctx context.Context, actor *model.User, params ports.UpdateFileUsersParams) (*model.File, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) DeleteFile(ctx context.Context, actor *model.User, params ports.DeleteFileParams) (map[string]string, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockFileService) GetTotalSpaceUsed(ctx context.Context, actor *model.User) (*model.SpaceUsage, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SpaceUsage), args.Error(1)
}

func (m *MockFileService) ViewFile(ctx context.Context, bucketFileID string) (io.ReadCloser, *model.BucketFile, error) {
	args := m.Called(ctx, bucketFileID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.BucketFile), args.Error(2)
}

func (m *MockFileService) RevalidatedAt(ctx context.Context, path string) (*time.Time, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}
