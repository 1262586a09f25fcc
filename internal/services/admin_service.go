package services

import (
	"context"
	"crypto/subtle"
	"time"

	"iinreg_backend/internal/auth"
	"iinreg_backend/internal/models"
	"iinreg_backend/internal/repositories"
	"iinreg_backend/internal/services/dto"
	"iinreg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AdminService - админский workflow верификации:
// список пользователей и перевод статуса waiting/accepted/rejected.
type AdminService interface {
	Login(password string) (string, error)
	ListUsers(ctx context.Context, db *gorm.DB) ([]dto.UserResponse, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, iin string, status models.UserStatus) error
}

type AdminConfig struct {
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
	cfg      AdminConfig
}

func NewAdminService(userRepo repositories.UserRepository, cfg AdminConfig) AdminService {
	return &AdminServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Login обменивает админский пароль на короткоживущий JWT
func (s *AdminServiceImpl) Login(password string) (string, error) {
	if s.cfg.Password == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) != 1 {
		return "", apperrors.ErrInvalidAdminCredentials
	}

	token, err := auth.GenerateAdminToken(s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

func (s *AdminServiceImpl) ListUsers(ctx context.Context, db *gorm.DB) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx, db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			IIN:       u.IIN,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
			Status:    u.Status,
			UserData:  dto.PersonFromModel(u.UserData),
		})
	}
	return out, nil
}

// UpdateStatus выставляет статус безусловно: переходы не ограничены,
// админ может вернуть rejected обратно в waiting для повторной проверки.
func (s *AdminServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, iin string, status models.UserStatus) error {
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus("Status must be one of: waiting, accepted, rejected")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.UpdateStatus(ctx, tx, iin, status)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
