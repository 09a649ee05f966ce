package platform

import (
	"context"
	"file-storage-server/internal/model"
	"file-storage-server/internal/query"
)

// FileStore : коллекция файлов
type FileStore interface {
	CreateFile(ctx context.Context, file *model.File) (*model.File, error)
	GetFile(ctx context.Context, fileID string) (*model.File, error)
	ListFiles(ctx context.Context, queries []query.Query) (*model.FileList, error)
	UpdateFile(ctx context.Context, fileID string, update model.FileUpdate) (*model.File, error)
	DeleteFile(ctx context.Context, fileID string) error
	SpaceUsage(ctx context.Context, ownerID string) (map[string]model.TypeUsage, error)
}

// UserStore : коллекция пользователей
type UserStore interface {
	ListUsers(ctx context.Context, queries []query.Query) (*model.UserList, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
}

type databases struct {
	FileStore
	UserStore
}
