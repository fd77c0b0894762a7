package usecase

//go:generate mockgen -source=specialty_usecase.go -destination=mocks/specialty_mocks.go -package=mocks

import (
	"context"
	"fmt"

	"doctor-matching/internal/converter"
	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SpecialtyUsecase interface {
	GetAllSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
}

func NewSpecialtyUsecase(db *gorm.DB, log *logrus.Logger, specialtyRepo repository.SpecialtyRepository) SpecialtyUsecase {
	return &specialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
	}
}

func (u *specialtyUsecase) GetAllSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return converter.SpecialtiesToResponses(specialties), nil
}
