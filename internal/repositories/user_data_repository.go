package repositories

import (
	"context"
	"errors"

	"iinreg_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserDataNotFound      = errors.New("user data not found")
	ErrUserDataAlreadyExists = errors.New("user data already exists for this iin")
)

// UserDataRepository - доступ к персональным данным (кэш ответов внешнего сервиса)
type UserDataRepository interface {
	Create(ctx context.Context, db *gorm.DB, data *models.UserData) error
	FindByIIN(ctx context.Context, db *gorm.DB, iin string) (*models.UserData, error)
}

type UserDataRepositoryImpl struct{}

func NewUserDataRepository() UserDataRepository {
	return &UserDataRepositoryImpl{}
}

// Create вставляет запись ровно один раз: повторная вставка по тому же ИИН
// упирается в первичный ключ и возвращает ErrUserDataAlreadyExists.
func (r *UserDataRepositoryImpl) Create(ctx context.Context, db *gorm.DB, data *models.UserData) error {
	err := db.WithContext(ctx).Create(data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserDataAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserDataRepositoryImpl) FindByIIN(ctx context.Context, db *gorm.DB, iin string) (*models.UserData, error) {
	var data models.UserData
	err := db.WithContext(ctx).First(&data, "iin = ?", iin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserDataNotFound
		}
		return nil, err
	}
	return &data, nil
}
