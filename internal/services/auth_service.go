package services

import (
	"context"

	"iinreg_backend/internal/auth"
	"iinreg_backend/internal/models"
	"iinreg_backend/internal/repositories"
	"iinreg_backend/internal/services/dto"
	"iinreg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService - регистрация, логин и резолв сессии по токену.
// Exists и проверка пароля намеренно разнесены: API различает
// "не зарегистрирован" и "неверный пароль".
type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, iin string) (*dto.RegisterResult, error)
	Login(ctx context.Context, db *gorm.DB, iin, password string) (*dto.LoginResult, error)
	StatusByIIN(ctx context.Context, db *gorm.DB, iin string) (*dto.StatusResult, error)
	StatusByToken(ctx context.Context, db *gorm.DB, token string) (*dto.StatusResult, error)
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	bcryptCost     int
	passwordLength int
}

func NewAuthService(userRepo repositories.UserRepository, bcryptCost, passwordLength int) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		bcryptCost:     bcryptCost,
		passwordLength: passwordLength,
	}
}

// Register создает учетку со сгенерированным паролем и сессионным токеном.
// Вставка атомарная: при дубле ИИН (в т.ч. гонка двух одновременных
// регистраций) возвращается AlreadyExists без нового пароля.
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, iin string) (*dto.RegisterResult, error) {
	password, err := auth.GeneratePassword(s.passwordLength)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	passwordHash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		IIN:          iin,
		PasswordHash: passwordHash,
		AccessToken:  token,
		Status:       models.UserStatusWaiting,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return &dto.RegisterResult{AlreadyExists: true}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.RegisterResult{
		Password:    password,
		AccessToken: token,
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, iin, password string) (*dto.LoginResult, error) {
	user, err := s.userRepo.FindByIIN(ctx, db, iin)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return &dto.LoginResult{Exists: false}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return &dto.LoginResult{Exists: true, Correct: false}, nil
	}

	return &dto.LoginResult{
		Exists:      true,
		Correct:     true,
		AccessToken: user.AccessToken,
	}, nil
}

func (s *AuthServiceImpl) StatusByIIN(ctx context.Context, db *gorm.DB, iin string) (*dto.StatusResult, error) {
	user, err := s.userRepo.FindByIIN(ctx, db, iin)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return &dto.StatusResult{Exists: false}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.StatusResult{Exists: true, Status: user.Status}, nil
}

func (s *AuthServiceImpl) StatusByToken(ctx context.Context, db *gorm.DB, token string) (*dto.StatusResult, error) {
	if token == "" {
		return &dto.StatusResult{Exists: false}, nil
	}

	user, err := s.userRepo.FindByToken(ctx, db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return &dto.StatusResult{Exists: false}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.StatusResult{Exists: true, Status: user.Status}, nil
}
