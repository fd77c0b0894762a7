package repository

import (
	"context"

	"doctor-matching/internal/domain/entity"
	domainRepo "doctor-matching/internal/domain/repository"

	"gorm.io/gorm"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.WithContext(ctx).Order("id ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByNames(ctx context.Context, db *gorm.DB, names []string) ([]entity.Specialty, error) {
	if len(names) == 0 {
		return []entity.Specialty{}, nil
	}

	var specialties []entity.Specialty
	err := db.WithContext(ctx).Where("name IN ?", names).Order("id ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}
