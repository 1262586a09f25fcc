package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"iinreg_backend/internal/models"
	"iinreg_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registeredUserRepo(status models.UserStatus) *fakeUserRepo {
	repo := newFakeUserRepo()
	repo.users[testIIN] = &models.User{
		IIN:          testIIN,
		PasswordHash: "hash",
		AccessToken:  "token",
		CreatedAt:    time.Now(),
		Status:       status,
	}
	return repo
}

func TestGetPerson_CacheMissThenHit(t *testing.T) {
	db, mock := newTestDB(t)
	userRepo := registeredUserRepo(models.UserStatusWaiting)
	dataRepo := newFakeUserDataRepo()
	fetcher := &fakeFetcher{person: testPerson()}
	svc := NewPersonService(userRepo, dataRepo, fetcher)

	// первый вызов: ровно один поход во внешний сервис + запись в кэш
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.GetPerson(context.Background(), db, testIIN)
	require.NoError(t, err)
	assert.True(t, resp.IsExists)
	require.NotNil(t, resp.Status)
	assert.Equal(t, models.UserStatusWaiting, *resp.Status)
	require.NotNil(t, resp.Person)
	assert.Equal(t, "Aidar", resp.Person.FirstName)
	assert.Equal(t, 1, fetcher.callCount())

	// второй вызов: из кэша, внешний сервис не трогаем
	resp, err = svc.GetPerson(context.Background(), db, testIIN)
	require.NoError(t, err)
	require.NotNil(t, resp.Person)
	assert.Equal(t, "Almaty, Abay 10", resp.Person.Address)
	assert.Equal(t, 1, fetcher.callCount(), "повторный вызов не должен ходить наружу")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPerson_UnregisteredIsNotCached(t *testing.T) {
	db, _ := newTestDB(t)
	dataRepo := newFakeUserDataRepo()
	fetcher := &fakeFetcher{person: testPerson()}
	svc := NewPersonService(newFakeUserRepo(), dataRepo, fetcher)

	resp, err := svc.GetPerson(context.Background(), db, testIIN)
	require.NoError(t, err)
	assert.False(t, resp.IsExists)
	assert.Nil(t, resp.Status)
	require.NotNil(t, resp.Person)

	// user_data держит FK на users - для незарегистрированных не пишем
	_, err = dataRepo.FindByIIN(context.Background(), db, testIIN)
	assert.Error(t, err)
}

func TestGetPerson_CachedWithoutUpstream(t *testing.T) {
	db, _ := newTestDB(t)
	userRepo := registeredUserRepo(models.UserStatusAccepted)
	dataRepo := newFakeUserDataRepo()
	dataRepo.put(testPerson().ToModel(testIIN))
	fetcher := &fakeFetcher{person: testPerson()}
	svc := NewPersonService(userRepo, dataRepo, fetcher)

	resp, err := svc.GetPerson(context.Background(), db, testIIN)
	require.NoError(t, err)
	assert.True(t, resp.IsExists)
	assert.Equal(t, models.UserStatusAccepted, *resp.Status)
	require.NotNil(t, resp.Person)
	assert.Equal(t, 0, fetcher.callCount())
}

func TestGetPerson_UpstreamFailure(t *testing.T) {
	db, _ := newTestDB(t)
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	svc := NewPersonService(registeredUserRepo(models.UserStatusWaiting), newFakeUserDataRepo(), fetcher)

	_, err := svc.GetPerson(context.Background(), db, testIIN)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeUpstreamFailure, appErr.Code)
	assert.Equal(t, 502, appErr.HTTPCode)
}

func TestGetPerson_LostCacheFillRace(t *testing.T) {
	db, mock := newTestDB(t)
	userRepo := registeredUserRepo(models.UserStatusWaiting)
	dataRepo := newFakeUserDataRepo()
	dataRepo.loseCreateRace = true
	dataRepo.missFirstLookup = true
	fetcher := &fakeFetcher{person: testPerson()}
	svc := NewPersonService(userRepo, dataRepo, fetcher)

	// конкурентное заполнение кэша: Create упирается в первичный ключ,
	// сервис перечитывает строку победителя вместо падения запроса
	winner := testPerson()
	winner.Address = "winner-address"
	dataRepo.put(winner.ToModel(testIIN))

	mock.ExpectBegin()
	mock.ExpectRollback()
	resp, err := svc.GetPerson(context.Background(), db, testIIN)
	require.NoError(t, err)
	require.NotNil(t, resp.Person)
	assert.Equal(t, "winner-address", resp.Person.Address)
}
