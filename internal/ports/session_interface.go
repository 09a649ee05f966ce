package ports

import (
	"context"
	"file-storage-server/internal/model"
	"time"
)

type AccountRepository interface {
	GetOrCreate(ctx context.Context, accountID, email string) (*model.Account, error)
	FindByID(ctx context.Context, accountID string) (*model.Account, error)
}

// SessionRepository : одноразовые коды и сессии
type SessionRepository interface {
	SaveOTP(ctx context.Context, accountID, codeHash string, ttl time.Duration) error
	GetOTP(ctx context.Context, accountID string) (string, error)
	DeleteOTP(ctx context.Context, accountID string) error
	IncrementOTPAttempts(ctx context.Context, accountID string, ttl time.Duration) (int64, error)
	SaveSession(ctx context.Context, session *model.StoredSession) error
	GetSession(ctx context.Context, sessionID string) (*model.StoredSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}
