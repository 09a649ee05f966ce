package ports

import (
	"context"
	"file-storage-server/internal/model"
	"io"
	"time"
)

type UploadFileParams struct {
	File      model.UploadedFile
	OwnerID   string
	AccountID string
	Path      string
}

type GetFilesParams struct {
	Types      []string
	SearchText string
	Sort       string
	Limit      int
}

type RenameFileParams struct {
	FileID    string
	Name      string
	Extension string
	Path      string
}

type UpdateFileUsersParams struct {
	FileID string
	Emails []string
	Path   string
}

type DeleteFileParams struct {
	FileID       string
	BucketFileID string
	Path         string
}

type FileService interface {
	UploadFile(ctx context.Context, params UploadFileParams) (*model.File, error)
	GetFiles(ctx context.Context, sessionSecret string, params GetFilesParams) (*model.FileList, error)
	GetFile(ctx context.Context, actor *model.User, fileID string) (*model.File, error)
	RenameFile(ctx context.Context, actor *model.User, params RenameFileParams) (*model.File, error)
	UpdateFileUsers(ctx context.Context, actor *model.User, params UpdateFileUsersParams) (*model.File, error)
	DeleteFile(ctx context.Context, actor *model.User, params DeleteFileParams) (map[string]string, error)
	GetTotalSpaceUsed(ctx context.Context, actor *model.User) (*model.SpaceUsage, error)
	ViewFile(ctx context.Context, bucketFileID string) (io.ReadCloser, *model.BucketFile, error)
	RevalidatedAt(ctx context.Context, path string) (*time.Time, error)
}

type UserService interface {
	CreateAccount(ctx context.Context, fullName, email string) (string, error)
	SignInUser(ctx context.Context, email string) (string, error)
	VerifySecret(ctx context.Context, accountID, password string) (*model.Session, error)
	GetCurrentUser(ctx context.Context, sessionSecret string) *model.User
	SignOutUser(ctx context.Context, sessionSecret string) error
}
