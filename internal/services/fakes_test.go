package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"iinreg_backend/internal/models"
	"iinreg_backend/internal/repositories"
	"iinreg_backend/internal/services/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB поднимает gorm поверх sqlmock: сервисам нужен рабочий
// *gorm.DB только ради Transaction (Begin/Commit), SQL не выполняется -
// репозитории в тестах фейковые.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock
}

// fakeUserRepo - in-memory реализация UserRepository.
// Create повторяет поведение уникального ключа БД.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.IIN]; ok {
		return repositories.ErrUserAlreadyExists
	}
	cp := *user
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	f.users[user.IIN] = &cp
	return nil
}

func (f *fakeUserRepo) FindByIIN(_ context.Context, _ *gorm.DB, iin string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[iin]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByToken(_ context.Context, _ *gorm.DB, token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.AccessToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, _ *gorm.DB, iin string, status models.UserStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[iin]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, _ *gorm.DB) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

// fakeUserDataRepo - in-memory реализация UserDataRepository
type fakeUserDataRepo struct {
	mu   sync.Mutex
	data map[string]*models.UserData

	// имитация проигранной гонки: Create возвращает "уже существует",
	// хотя записи в data на момент вызова не было
	loseCreateRace bool

	// первый FindByIIN промахивается, дальше читает из data -
	// так выглядит кэш глазами проигравшего конкурента
	missFirstLookup bool
	missedOnce      bool
}

func newFakeUserDataRepo() *fakeUserDataRepo {
	return &fakeUserDataRepo{data: make(map[string]*models.UserData)}
}

func (f *fakeUserDataRepo) Create(_ context.Context, _ *gorm.DB, d *models.UserData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loseCreateRace {
		return repositories.ErrUserDataAlreadyExists
	}
	if _, ok := f.data[d.IIN]; ok {
		return repositories.ErrUserDataAlreadyExists
	}
	cp := *d
	f.data[d.IIN] = &cp
	return nil
}

func (f *fakeUserDataRepo) FindByIIN(_ context.Context, _ *gorm.DB, iin string) (*models.UserData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missFirstLookup && !f.missedOnce {
		f.missedOnce = true
		return nil, repositories.ErrUserDataNotFound
	}
	d, ok := f.data[iin]
	if !ok {
		return nil, repositories.ErrUserDataNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeUserDataRepo) put(d *models.UserData) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[d.IIN] = d
}

// fakeFetcher - счетчик походов во внешний сервис
type fakeFetcher struct {
	mu     sync.Mutex
	calls  int
	person *dto.Person
	err    error
}

func (f *fakeFetcher) FetchPerson(_ context.Context, _ string) (*dto.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	cp := *f.person
	return &cp, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testPerson() *dto.Person {
	phone := "+77010000000"
	return &dto.Person{
		Address:     "Almaty, Abay 10",
		FirstName:   "Aidar",
		LastName:    "Bekov",
		SecondName:  "Serikuly",
		Org:         "KazTech",
		BirthDate:   "1999-01-01",
		PhoneNumber: &phone,
	}
}
