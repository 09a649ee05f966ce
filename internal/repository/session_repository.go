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

// SessionRepository : одноразовые коды и сессии платформы в Redis
type SessionRepository struct {
	client *config.RedisClient
}

func NewSessionRepository(rdb *config.RedisClient) *SessionRepository {
	return &SessionRepository{client: rdb}
}

// SaveOTP : сохраняет хэш кода и обнуляет счётчик попыток,
// предыдущий код учётной записи перестаёт действовать
func (r *SessionRepository) SaveOTP(ctx context.Context, accountID, codeHash string, ttl time.Duration) error {
	pipe := r.client.Client.TxPipeline()
	pipe.Set(ctx, r.otpKey(accountID), codeHash, ttl)
	pipe.Del(ctx, r.otpAttemptsKey(accountID))

	if _, err := pipe.Exec(ctx); err != nil {
		return util.LogError("[SessionRepo] ошибка сохранения кода", err)
	}
	return nil
}

func (r *SessionRepository) GetOTP(ctx context.Context, accountID string) (string, error) {
	val, err := r.client.Client.Get(ctx, r.otpKey(accountID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	} else if err != nil {
		return "", util.LogError("[SessionRepo] ошибка чтения кода", err)
	}
	return val, nil
}

// DeleteOTP : гасит код вместе со счётчиком попыток, ErrNotFound если код уже использовали
func (r *SessionRepository) DeleteOTP(ctx context.Context, accountID string) error {
	pipe := r.client.Client.TxPipeline()
	deleted := pipe.Del(ctx, r.otpKey(accountID))
	pipe.Del(ctx, r.otpAttemptsKey(accountID))

	if _, err := pipe.Exec(ctx); err != nil {
		return util.LogError("[SessionRepo] ошибка удаления кода", err)
	}
	if deleted.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementOTPAttempts : номер текущей попытки ввода кода, счётчик живёт не дольше ttl
func (r *SessionRepository) IncrementOTPAttempts(ctx context.Context, accountID string, ttl time.Duration) (int64, error) {
	key := r.otpAttemptsKey(accountID)

	pipe := r.client.Client.TxPipeline()
	attempts := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, util.LogError("[SessionRepo] ошибка учёта попытки", err)
	}
	return attempts.Val(), nil
}

func (r *SessionRepository) SaveSession(ctx context.Context, session *model.StoredSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return util.LogError("[SessionRepo] ошибка сериализации сессии", err)
	}

	ttl := time.Until(session.ExpireAt)
	if ttl <= 0 {
		return fmt.Errorf("[SessionRepo] сессия %s уже истекла", session.ID)
	}

	if err := r.client.Client.Set(ctx, r.sessionKey(session.ID), data, ttl).Err(); err != nil {
		return util.LogError("[SessionRepo] ошибка сохранения сессии", err)
	}
	return nil
}

func (r *SessionRepository) GetSession(ctx context.Context, sessionID string) (*model.StoredSession, error) {
	val, err := r.client.Client.Get(ctx, r.sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, util.LogError("[SessionRepo] ошибка чтения сессии", err)
	}

	var session model.StoredSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, util.LogError("[SessionRepo] ошибка десериализации сессии", err)
	}
	return &session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	deleted, err := r.client.Client.Del(ctx, r.sessionKey(sessionID)).Result()
	if err != nil {
		return util.LogError("[SessionRepo] ошибка удаления сессии", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SessionRepository) otpKey(accountID string) string {
	return fmt.Sprintf("otp:%s", accountID)
}

func (r *SessionRepository) otpAttemptsKey(accountID string) string {
	return fmt.Sprintf("otp:attempts:%s", accountID)
}

func (r *SessionRepository) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
