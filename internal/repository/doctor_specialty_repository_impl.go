package repository

import (
	"context"

	"doctor-matching/internal/domain/entity"
	domainRepo "doctor-matching/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorSpecialtyRepository struct{}

func NewDoctorSpecialtyRepository() domainRepo.DoctorSpecialtyRepository {
	return &doctorSpecialtyRepository{}
}

// CreateBatch writes every link in one multi-row INSERT, so a constraint
// failure on any row leaves none of them behind.
func (r *doctorSpecialtyRepository) CreateBatch(ctx context.Context, db *gorm.DB, links []entity.DoctorSpecialty) error {
	if len(links) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&links).Error
}
