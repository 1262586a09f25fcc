package services

import (
	"context"

	"iinreg_backend/internal/logger"
	"iinreg_backend/internal/repositories"
	"iinreg_backend/internal/services/dto"
	"iinreg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PersonFetcher - внешний сервис проверки ИИН (реализуется iinclient.Client)
type PersonFetcher interface {
	FetchPerson(ctx context.Context, iin string) (*dto.Person, error)
}

// PersonService отдает персональные данные по ИИН: из кэша user_data,
// либо одним походом во внешний сервис с записью результата в кэш.
type PersonService interface {
	GetPerson(ctx context.Context, db *gorm.DB, iin string) (*dto.PersonResponse, error)
}

type PersonServiceImpl struct {
	userRepo repositories.UserRepository
	dataRepo repositories.UserDataRepository
	fetcher  PersonFetcher
}

func NewPersonService(userRepo repositories.UserRepository, dataRepo repositories.UserDataRepository, fetcher PersonFetcher) PersonService {
	return &PersonServiceImpl{
		userRepo: userRepo,
		dataRepo: dataRepo,
		fetcher:  fetcher,
	}
}

func (s *PersonServiceImpl) GetPerson(ctx context.Context, db *gorm.DB, iin string) (*dto.PersonResponse, error) {
	resp := &dto.PersonResponse{}

	user, err := s.userRepo.FindByIIN(ctx, db, iin)
	switch {
	case err == nil:
		resp.IsExists = true
		status := user.Status
		resp.Status = &status
	case apperrors.Is(err, repositories.ErrUserNotFound):
		// не зарегистрирован - данные все равно отдаем
	default:
		return nil, apperrors.InternalError(err)
	}

	data, err := s.dataRepo.FindByIIN(ctx, db, iin)
	if err == nil {
		resp.Person = dto.PersonFromModel(data)
		return resp, nil
	}
	if !apperrors.Is(err, repositories.ErrUserDataNotFound) {
		return nil, apperrors.InternalError(err)
	}

	person, err := s.fetcher.FetchPerson(ctx, iin)
	if err != nil {
		return nil, apperrors.ErrUpstreamFailure(err)
	}

	// Кэшируем только для зарегистрированных: user_data держит FK на users.
	// Гонку двух одновременных заполнений разрешает первичный ключ -
	// проигравший читает строку победителя.
	if resp.IsExists {
		if err := s.cachePerson(ctx, db, iin, person); err != nil {
			return nil, err
		}
	}

	resp.Person = person
	return resp, nil
}

func (s *PersonServiceImpl) cachePerson(ctx context.Context, db *gorm.DB, iin string, person *dto.Person) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return s.dataRepo.Create(ctx, tx, person.ToModel(iin))
	})
	if err == nil {
		return nil
	}
	if apperrors.Is(err, repositories.ErrUserDataAlreadyExists) {
		logger.CtxWarn(ctx, "Concurrent cache fill lost, reusing stored record", "iin", iin)
		stored, findErr := s.dataRepo.FindByIIN(ctx, db, iin)
		if findErr != nil {
			return apperrors.InternalError(findErr)
		}
		*person = *dto.PersonFromModel(stored)
		return nil
	}
	return apperrors.InternalError(err)
}
