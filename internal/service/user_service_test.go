package service_test

import (
	"context"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/platform"
	"file-storage-server/internal/query"
	"file-storage-server/internal/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func byEmail(email string) []query.Query {
	return []query.Query{query.Equal("email", email)}
}

func TestCreateAccount_NewUser(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	clients.databases.On("ListUsers", mock.Anything, byEmail("jane@example.com")).
		Return(&model.UserList{Total: 0, Documents: []*model.User{}}, nil)
	clients.account.On("CreateEmailToken", mock.Anything, mock.AnythingOfType("string"), "jane@example.com").
		Return(&model.Token{ID: "t1", UserID: "acc1"}, nil)
	clients.avatars.On("GetInitials", "Jane Doe").Return("https://img/avatar.png")
	clients.databases.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.FullName == "Jane Doe" && u.Email == "jane@example.com" &&
			u.AccountID == "acc1" && u.Avatar == "https://img/avatar.png" && u.ID != ""
	})).Return(&model.User{ID: "u1"}, nil)

	accountID, err := users.CreateAccount(context.Background(), "Jane Doe", "  Jane@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "acc1", accountID)
	clients.databases.AssertExpectations(t)
}

func TestCreateAccount_ExistingUserStillGetsOTP(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	clients.databases.On("ListUsers", mock.Anything, byEmail("jane@example.com")).
		Return(&model.UserList{Total: 1, Documents: []*model.User{{ID: "u1", AccountID: "acc1"}}}, nil)
	clients.account.On("CreateEmailToken", mock.Anything, mock.Anything, "jane@example.com").
		Return(&model.Token{UserID: "acc1"}, nil)

	accountID, err := users.CreateAccount(context.Background(), "Jane Doe", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "acc1", accountID)
	clients.account.AssertNumberOfCalls(t, "CreateEmailToken", 1)
	clients.databases.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestCreateAccount_OTPFailure(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	clients.databases.On("ListUsers", mock.Anything, mock.Anything).Return(&model.UserList{}, nil)
	clients.account.On("CreateEmailToken", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("smtp down"))

	_, err := users.CreateAccount(context.Background(), "Jane", "jane@example.com")
	require.Error(t, err)
	clients.databases.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestSignInUser_UnknownEmail(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	clients.databases.On("ListUsers", mock.Anything, byEmail("ghost@example.com")).
		Return(&model.UserList{Total: 0}, nil)

	accountID, err := users.SignInUser(context.Background(), "ghost@example.com")
	assert.Equal(t, "", accountID)
	assert.True(t, errors.Is(err, service.ErrUserNotFound))
	clients.account.AssertNotCalled(t, "CreateEmailToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignInUser_ReturnsStoredAccountID(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	clients.databases.On("ListUsers", mock.Anything, byEmail("jane@example.com")).
		Return(&model.UserList{Total: 1, Documents: []*model.User{{ID: "u1", AccountID: "stored-acc"}}}, nil)
	clients.account.On("CreateEmailToken", mock.Anything, mock.Anything, "jane@example.com").
		Return(&model.Token{UserID: "stored-acc"}, nil)

	accountID, err := users.SignInUser(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "stored-acc", accountID)
}

func TestVerifySecret(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	clients.account.On("CreateSession", mock.Anything, "acc1", "123456").
		Return(&model.Session{ID: "s1", UserID: "acc1", Secret: "tok"}, nil)
	clients.account.On("CreateSession", mock.Anything, "acc1", "000000").
		Return(nil, platform.ErrInvalidCredentials)

	session, err := users.VerifySecret(context.Background(), "acc1", "123456")
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Secret)

	_, err = users.VerifySecret(context.Background(), "acc1", "000000")
	assert.True(t, errors.Is(err, platform.ErrInvalidCredentials))
}

func TestGetCurrentUser(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	assert.Nil(t, users.GetCurrentUser(context.Background(), ""))

	clients.sessionAccount.On("Get", mock.Anything).Return(&model.Account{ID: "acc1"}, nil)
	clients.databases.On("ListUsers", mock.Anything, []query.Query{query.Equal("accountId", "acc1")}).
		Return(&model.UserList{Total: 1, Documents: []*model.User{{ID: "u1", AccountID: "acc1", Email: "jane@example.com"}}}, nil)

	user := users.GetCurrentUser(context.Background(), "tok")
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

func TestGetCurrentUser_SwallowsErrors(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	clients.sessionAccount.On("Get", mock.Anything).Return(nil, platform.ErrInvalidCredentials)
	assert.Nil(t, users.GetCurrentUser(context.Background(), "expired"))

	clients = newFakeClients()
	users = service.NewUserService(clients)
	clients.sessionAccount.On("Get", mock.Anything).Return(&model.Account{ID: "acc1"}, nil)
	clients.databases.On("ListUsers", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	assert.Nil(t, users.GetCurrentUser(context.Background(), "tok"))

	clients = newFakeClients()
	users = service.NewUserService(clients)
	clients.sessionAccount.On("Get", mock.Anything).Return(&model.Account{ID: "acc1"}, nil)
	clients.databases.On("ListUsers", mock.Anything, mock.Anything).Return(&model.UserList{Total: 0}, nil)
	assert.Nil(t, users.GetCurrentUser(context.Background(), "tok"))
}

func TestSignOutUser(t *testing.T) {
	clients := newFakeClients()
	users := service.NewUserService(clients)

	err := users.SignOutUser(context.Background(), "")
	assert.True(t, errors.Is(err, platform.ErrNoSession))

	clients.sessionAccount.On("DeleteSession", mock.Anything, platform.CurrentSession).Return(nil)
	assert.NoError(t, users.SignOutUser(context.Background(), "tok"))
	clients.sessionAccount.AssertExpectations(t)
}
