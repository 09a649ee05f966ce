package ports

import (
	"context"
	"file-storage-server/internal/model"
	"file-storage-server/internal/query"
	"io"
)

// ClientFactory : выдаёт клиентов платформы
type ClientFactory interface {
	Admin() AdminClient
	Session(secret string) (SessionClient, error)
}

// AdminClient : привилегированный клиент, аутентифицирован секретным ключом
type AdminClient interface {
	Account() Account
	Databases() Databases
	Storage() Storage
	Avatars() Avatars
}

// SessionClient : клиент от имени пользователя, аутентифицирован секретом сессии
type SessionClient interface {
	Account() Account
	Databases() Databases
}

type Account interface {
	CreateEmailToken(ctx context.Context, userID, email string) (*model.Token, error)
	CreateSession(ctx context.Context, userID, secret string) (*model.Session, error)
	Get(ctx context.Context) (*model.Account, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type Databases interface {
	ListUsers(ctx context.Context, queries []query.Query) (*model.UserList, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	CreateFile(ctx context.Context, file *model.File) (*model.File, error)
	GetFile(ctx context.Context, fileID string) (*model.File, error)
	ListFiles(ctx context.Context, queries []query.Query) (*model.FileList, error)
	UpdateFile(ctx context.Context, fileID string, update model.FileUpdate) (*model.File, error)
	DeleteFile(ctx context.Context, fileID string) error
	SpaceUsage(ctx context.Context, ownerID string) (map[string]model.TypeUsage, error)
}

type Storage interface {
	CreateFile(ctx context.Context, fileID string, file model.InputFile) (*model.BucketFile, error)
	GetFile(ctx context.Context, fileID string) (io.ReadCloser, *model.BucketFile, error)
	DeleteFile(ctx context.Context, fileID string) error
}

type Avatars interface {
	GetInitials(name string) string
}
