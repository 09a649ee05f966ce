package ports

import (
	"context"
	"file-storage-server/internal/model"
	"time"
)

// FileCache : Redis слой для записей о файлах
type FileCache interface {
	SetFile(ctx context.Context, file *model.File) error
	GetFile(ctx context.Context, fileID string) (*model.File, error)
	DeleteFile(ctx context.Context, fileID string) error
}

// RouteCache : инвалидация закэшированных маршрутов
type RouteCache interface {
	RevalidatePath(ctx context.Context, path string) error
	RevalidatedAt(ctx context.Context, path string) (*time.Time, error)
}
