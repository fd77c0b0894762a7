package repository

import (
	"context"

	"doctor-matching/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Doctor, error)
	// FindByID returns the doctor with its specialties ordered by specialty id, or nil when absent.
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error)
	// FindAll returns every doctor with specialties, ordered by name.
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
}
