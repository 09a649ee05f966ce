package platform

import (
	"context"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/repository"
	"file-storage-server/internal/security"
	"file-storage-server/internal/util"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// CurrentSession : идентификатор текущей сессии клиента
const CurrentSession = "current"

type accountService struct {
	accounts ports.AccountRepository
	sessions ports.SessionRepository
	mailer   ports.Mailer
	tokens   *security.SessionTokenService
	otpLen   int
	otpTTL   time.Duration
	attempts int64
	ttl      time.Duration
	secret   string
	now      func() time.Time
}

// CreateEmailToken : выпускает одноразовый код и отправляет его на почту.
// Если учётная запись с таким email уже есть, код привязывается к ней, userID игнорируется
func (a *accountService) CreateEmailToken(ctx context.Context, userID, email string) (*model.Token, error) {
	account, err := a.accounts.GetOrCreate(ctx, userID, email)
	if err != nil {
		return nil, util.LogError("[Account] не удалось получить учётную запись", err)
	}

	code, err := util.GenerateOTPCode(a.otpLen)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, util.LogError("[Account] ошибка хэширования кода", err)
	}

	if err := a.sessions.SaveOTP(ctx, account.ID, string(hash), a.otpTTL); err != nil {
		return nil, err
	}

	if err := a.mailer.SendOTP(ctx, account.Email, code); err != nil {
		return nil, util.LogError("[Account] не удалось отправить код", err)
	}

	return &model.Token{
		ID:       uuid.NewString(),
		UserID:   account.ID,
		ExpireAt: a.now().Add(a.otpTTL),
	}, nil
}

// CreateSession : обменивает одноразовый код на сессию, код гасится.
// После attempts неудачных попыток код гасится тоже
func (a *accountService) CreateSession(ctx context.Context, userID, secret string) (*model.Session, error) {
	hash, err := a.sessions.GetOTP(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	attempt, err := a.sessions.IncrementOTPAttempts(ctx, userID, a.otpTTL)
	if err != nil {
		return nil, err
	}
	if attempt > a.attempts {
		a.burnOTP(ctx, userID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		if attempt == a.attempts {
			a.burnOTP(ctx, userID)
		}
		return nil, ErrInvalidCredentials
	}

	if err := a.sessions.DeleteOTP(ctx, userID); errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	now := a.now().UTC()
	stored := &model.StoredSession{
		ID:        uuid.NewString(),
		AccountID: userID,
		ExpireAt:  now.Add(a.ttl),
		CreatedAt: now,
	}

	token, err := a.tokens.Sign(stored.ID, stored.AccountID, now, stored.ExpireAt)
	if err != nil {
		return nil, util.LogError("[Account] не удалось подписать сессию", err)
	}

	if err := a.sessions.SaveSession(ctx, stored); err != nil {
		return nil, err
	}

	return &model.Session{
		ID:        stored.ID,
		UserID:    stored.AccountID,
		Secret:    token,
		ExpireAt:  stored.ExpireAt,
		CreatedAt: stored.CreatedAt,
	}, nil
}

func (a *accountService) burnOTP(ctx context.Context, userID string) {
	err := a.sessions.DeleteOTP(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		util.Sugar.Warnw("[Account] не удалось погасить код", "accountId", userID, "error", err)
		return
	}
	util.Sugar.Infow("[Account] код погашен после неудачных попыток", "accountId", userID)
}

// Get : учётная запись текущей сессии
func (a *accountService) Get(ctx context.Context) (*model.Account, error) {
	session, err := a.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	account, err := a.accounts.FindByID(ctx, session.AccountID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteSession : удаляет сессию; CurrentSession означает сессию самого клиента
func (a *accountService) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == CurrentSession {
		session, err := a.currentSession(ctx)
		if err != nil {
			return err
		}
		sessionID = session.ID
	}

	err := a.sessions.DeleteSession(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidCredentials
	}
	return err
}

func (a *accountService) currentSession(ctx context.Context) (*model.StoredSession, error) {
	if a.secret == "" {
		return nil, ErrNoSession
	}

	claims, err := a.tokens.Parse(a.secret)
	if errors.Is(err, security.ErrMissingSecretKey) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	session, err := a.sessions.GetSession(ctx, claims.SessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if session.AccountID != claims.Subject {
		return nil, ErrInvalidCredentials
	}

	return session, nil
}
