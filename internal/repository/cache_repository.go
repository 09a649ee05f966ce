package repository

import (
	"context"
	"encoding/json"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

// RevalidateChannel : канал, в который публикуются инвалидированные маршруты
const RevalidateChannel = "routes:revalidate"

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetFile(ctx context.Context, file *model.File) error {
	if r.ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(file)
	if err != nil {
		return util.LogError("[Cache] ошибка сериализации файла", err)
	}

	if err := r.client.Client.Set(ctx, r.fileKey(file.ID), data, r.ttl).Err(); err != nil {
		return util.LogError("[Cache] ошибка сохранения в Redis", err)
	}

	return nil
}

func (r *CacheRepository) GetFile(ctx context.Context, fileID string) (*model.File, error) {
	val, err := r.client.Client.Get(ctx, r.fileKey(fileID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("[Cache] ошибка получения файла из Redis", err)
	}

	var file model.File
	if err := json.Unmarshal([]byte(val), &file); err != nil {
		return nil, util.LogError("[Cache] ошибка десериализации файла из кэша", err)
	}
	return &file, nil
}

func (r *CacheRepository) DeleteFile(ctx context.Context, fileID string) error {
	if err := r.client.Client.Del(ctx, r.fileKey(fileID)).Err(); err != nil {
		return util.LogError("[Cache] ошибка удаления файла из Redis", err)
	}
	return nil
}

// RevalidatePath : отмечает маршрут устаревшим и оповещает подписчиков
func (r *CacheRepository) RevalidatePath(ctx context.Context, path string) error {
	now := time.Now().UTC()

	pipe := r.client.Client.TxPipeline()
	pipe.Set(ctx, r.routeKey(path), now.Format(time.RFC3339Nano), 0)
	pipe.Publish(ctx, RevalidateChannel, path)
	if _, err := pipe.Exec(ctx); err != nil {
		return util.LogError("[Cache] ошибка инвалидации маршрута", err)
	}

	return nil
}

// RevalidatedAt : время последней инвалидации маршрута, nil если её не было
func (r *CacheRepository) RevalidatedAt(ctx context.Context, path string) (*time.Time, error) {
	val, err := r.client.Client.Get(ctx, r.routeKey(path)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[Cache] ошибка чтения инвалидации маршрута", err)
	}

	at, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return nil, util.LogError("[Cache] некорректное время инвалидации", err)
	}
	return &at, nil
}

func (r *CacheRepository) fileKey(fileID string) string {
	return fmt.Sprintf("file:%s", fileID)
}

func (r *CacheRepository) routeKey(path string) string {
	return fmt.Sprintf("route:revalidated:%s", path)
}
