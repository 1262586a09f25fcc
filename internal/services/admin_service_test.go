package services

import (
	"context"
	"testing"
	"time"

	"iinreg_backend/internal/auth"
	"iinreg_backend/internal/models"
	"iinreg_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdminConfig() AdminConfig {
	return AdminConfig{
		Password:  "admin-password",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
}

func TestAdminLogin(t *testing.T) {
	svc := NewAdminService(newFakeUserRepo(), testAdminConfig())

	token, err := svc.Login("admin-password")
	require.NoError(t, err)

	claims, err := auth.ParseAdminToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Scope)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	svc := NewAdminService(newFakeUserRepo(), testAdminConfig())

	_, err := svc.Login("not-the-password")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestAdminLogin_EmptyConfiguredPassword(t *testing.T) {
	cfg := testAdminConfig()
	cfg.Password = ""
	svc := NewAdminService(newFakeUserRepo(), cfg)

	// пустой пароль в конфиге не должен открывать админку
	_, err := svc.Login("")
	assert.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := registeredUserRepo(models.UserStatusWaiting)
	repo.users["880101300456"] = &models.User{
		IIN: "880101300456", PasswordHash: "h", AccessToken: "t2",
		CreatedAt: time.Now(), Status: models.UserStatusWaiting,
	}
	svc := NewAdminService(repo, testAdminConfig())

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.UpdateStatus(context.Background(), db, testIIN, models.UserStatusAccepted)
	require.NoError(t, err)

	// статус изменился только у целевого пользователя
	users, err := svc.ListUsers(context.Background(), db)
	require.NoError(t, err)
	byIIN := make(map[string]models.UserStatus, len(users))
	for _, u := range users {
		byIIN[u.IIN] = u.Status
	}
	assert.Equal(t, models.UserStatusAccepted, byIIN[testIIN])
	assert.Equal(t, models.UserStatusWaiting, byIIN["880101300456"])
}

func TestUpdateStatus_UnknownIIN(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewAdminService(newFakeUserRepo(), testAdminConfig())

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := svc.UpdateStatus(context.Background(), db, testIIN, models.UserStatusAccepted)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewAdminService(registeredUserRepo(models.UserStatusWaiting), testAdminConfig())

	err := svc.UpdateStatus(context.Background(), db, testIIN, models.UserStatus("approved"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestListUsers_IncludesUserData(t *testing.T) {
	db, _ := newTestDB(t)
	repo := registeredUserRepo(models.UserStatusWaiting)
	repo.users[testIIN].UserData = testPerson().ToModel(testIIN)
	svc := NewAdminService(repo, testAdminConfig())

	users, err := svc.ListUsers(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, testIIN, users[0].IIN)
	assert.NotEmpty(t, users[0].CreatedAt)
	require.NotNil(t, users[0].UserData)
	assert.Equal(t, "Aidar", users[0].UserData.FirstName)
}
