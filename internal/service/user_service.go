package service

import (
	"context"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/platform"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/query"
	"file-storage-server/internal/util"
	"strings"

	"github.com/google/uuid"
)

type UserService struct {
	clients ports.ClientFactory
}

func NewUserService(clients ports.ClientFactory) *UserService {
	return &UserService{clients: clients}
}

// CreateAccount : отправляет код на почту и, если пользователя ещё нет, создаёт его запись.
// Возвращает accountId для последующей проверки кода
func (s *UserService) CreateAccount(ctx context.Context, fullName, email string) (string, error) {
	email = normalizeEmail(email)

	existingUser, err := s.getUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	accountID, err := s.sendEmailOTP(ctx, email)
	if err != nil {
		return "", err
	}

	if existingUser == nil {
		admin := s.clients.Admin()
		name := util.Sanitize(fullName)

		_, err := admin.Databases().CreateUser(ctx, &model.User{
			ID:        uuid.NewString(),
			FullName:  name,
			Email:     email,
			Avatar:    admin.Avatars().GetInitials(name),
			AccountID: accountID,
		})
		if err != nil {
			return "", util.LogError("[UserService] не удалось создать пользователя", err)
		}

		util.Sugar.Infow("[UserService] пользователь создан", "accountId", accountID)
	}

	return accountID, nil
}

// SignInUser : код отправляется только существующему пользователю
func (s *UserService) SignInUser(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)

	existingUser, err := s.getUserByEmail(ctx, email)
	if err != nil {
		return "", util.LogError("[UserService] не удалось выполнить вход", err)
	}
	if existingUser == nil {
		return "", ErrUserNotFound
	}

	if _, err := s.sendEmailOTP(ctx, email); err != nil {
		return "", util.LogError("[UserService] не удалось выполнить вход", err)
	}

	return existingUser.AccountID, nil
}

// VerifySecret : обменивает код на сессию, секрет сессии кладёт в cookie обработчик
func (s *UserService) VerifySecret(ctx context.Context, accountID, password string) (*model.Session, error) {
	session, err := s.clients.Admin().Account().CreateSession(ctx, accountID, password)
	if err != nil {
		return nil, util.LogError("[UserService] не удалось подтвердить код", err)
	}

	return session, nil
}

// GetCurrentUser : пользователь текущей сессии или nil, ошибки только логируются
func (s *UserService) GetCurrentUser(ctx context.Context, sessionSecret string) *model.User {
	client, err := s.clients.Session(sessionSecret)
	if err != nil {
		return nil
	}

	account, err := client.Account().Get(ctx)
	if err != nil {
		if !errors.Is(err, platform.ErrInvalidCredentials) {
			util.Sugar.Errorw("[UserService] не удалось получить учётную запись", "error", err)
		}
		return nil
	}

	users, err := s.clients.Admin().Databases().ListUsers(ctx, []query.Query{
		query.Equal("accountId", account.ID),
	})
	if err != nil {
		util.Sugar.Errorw("[UserService] не удалось получить пользователя", "error", err)
		return nil
	}
	if users.Total <= 0 || len(users.Documents) == 0 {
		return nil
	}

	user, err := util.ParseStringify(users.Documents[0])
	if err != nil {
		util.Sugar.Errorw("[UserService] ошибка копирования пользователя", "error", err)
		return nil
	}

	return user
}

// SignOutUser : удаляет текущую сессию на стороне платформы
func (s *UserService) SignOutUser(ctx context.Context, sessionSecret string) error {
	client, err := s.clients.Session(sessionSecret)
	if err != nil {
		return util.LogError("[UserService] не удалось выйти", err)
	}

	if err := client.Account().DeleteSession(ctx, platform.CurrentSession); err != nil {
		return util.LogError("[UserService] не удалось выйти", err)
	}

	return nil
}

func (s *UserService) getUserByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := s.clients.Admin().Databases().ListUsers(ctx, []query.Query{
		query.Equal("email", email),
	})
	if err != nil {
		return nil, util.LogError("[UserService] не удалось найти пользователя", err)
	}

	if users.Total > 0 && len(users.Documents) > 0 {
		return users.Documents[0], nil
	}
	return nil, nil
}

func (s *UserService) sendEmailOTP(ctx context.Context, email string) (string, error) {
	token, err := s.clients.Admin().Account().CreateEmailToken(ctx, uuid.NewString(), email)
	if err != nil {
		return "", util.LogError("[UserService] не удалось отправить код", err)
	}
	if token == nil || token.UserID == "" {
		return "", ErrOTPNotSent
	}

	return token.UserID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
