package repositories

import (
	"context"
	"errors"

	"iinreg_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository - доступ к учетным записям. Методы принимают *gorm.DB
// текущего запроса (пул или транзакцию), репозиторий сам состояния не держит.
type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *models.User) error
	FindByIIN(ctx context.Context, db *gorm.DB, iin string) (*models.User, error)
	FindByToken(ctx context.Context, db *gorm.DB, token string) (*models.User, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, iin string, status models.UserStatus) error
	FindAll(ctx context.Context, db *gorm.DB) ([]models.User, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

// Create вставляет пользователя одним условным INSERT.
// Гонка двух одновременных регистраций разрешается уникальным ключом БД:
// проигравший получает ErrUserAlreadyExists, а не 500.
func (r *UserRepositoryImpl) Create(ctx context.Context, db *gorm.DB, user *models.User) error {
	err := db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByIIN(ctx context.Context, db *gorm.DB, iin string) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).First(&user, "iin = ?", iin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByToken(ctx context.Context, db *gorm.DB, token string) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).First(&user, "access_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdateStatus(ctx context.Context, db *gorm.DB, iin string, status models.UserStatus) error {
	res := db.WithContext(ctx).Model(&models.User{}).Where("iin = ?", iin).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.WithContext(ctx).Preload("UserData").Order("created_at").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
