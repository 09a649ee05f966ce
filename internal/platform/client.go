// Package platform реализует клиентов платформы поверх Postgres, Redis, S3 и SMTP.
// Admin-клиент действует от имени сервера, Session-клиент от имени пользователя.
package platform

import (
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/security"
	"time"
)

var (
	ErrNoSession          = errors.New("нет сессии")
	ErrInvalidCredentials = errors.New("неверный код или сессия")
	ErrFileNotFound       = errors.New("объект не найден в бакете")
)

// Dependencies : общая инфраструктура, создаётся один раз при старте
type Dependencies struct {
	Platform config.PlatformConfig
	Session  config.SessionConfig
	OTP      config.OTPConfig

	Accounts ports.AccountRepository
	Sessions ports.SessionRepository
	Mailer   ports.Mailer
	Files    FileStore
	Users    UserStore
	Storage  ports.Storage
}

const defaultOTPAttempts = 5

type Factory struct {
	deps   Dependencies
	tokens *security.SessionTokenService
}

func NewFactory(deps Dependencies) *Factory {
	return &Factory{
		deps:   deps,
		tokens: security.NewSessionTokenService(deps.Platform.SecretKey, deps.Session.Issuer),
	}
}

// Admin : никогда не падает, отсутствие ключа проявится при первом вызове, которому он нужен
func (f *Factory) Admin() ports.AdminClient {
	return &adminClient{factory: f}
}

// Session : ErrNoSession при пустом секрете, сам секрет проверяется при первом обращении
func (f *Factory) Session(secret string) (ports.SessionClient, error) {
	if secret == "" {
		return nil, ErrNoSession
	}
	return &sessionClient{factory: f, secret: secret}, nil
}

func (f *Factory) account(secret string) *accountService {
	attempts := f.deps.OTP.MaxAttempts
	if attempts <= 0 {
		attempts = defaultOTPAttempts
	}

	return &accountService{
		accounts: f.deps.Accounts,
		sessions: f.deps.Sessions,
		mailer:   f.deps.Mailer,
		tokens:   f.tokens,
		otpLen:   f.deps.OTP.Length,
		otpTTL:   config.Duration(f.deps.OTP.TTL),
		attempts: int64(attempts),
		ttl:      config.Duration(f.deps.Session.TTL),
		secret:   secret,
		now:      time.Now,
	}
}

func (f *Factory) databases() ports.Databases {
	return &databases{FileStore: f.deps.Files, UserStore: f.deps.Users}
}

type adminClient struct {
	factory *Factory
}

func (c *adminClient) Account() ports.Account {
	return c.factory.account("")
}

func (c *adminClient) Databases() ports.Databases {
	return c.factory.databases()
}

func (c *adminClient) Storage() ports.Storage {
	return c.factory.deps.Storage
}

func (c *adminClient) Avatars() ports.Avatars {
	return &avatars{cfg: c.factory.deps.Platform}
}

type sessionClient struct {
	factory *Factory
	secret  string
}

func (c *sessionClient) Account() ports.Account {
	return c.factory.account(c.secret)
}

func (c *sessionClient) Databases() ports.Databases {
	return c.factory.databases()
}
