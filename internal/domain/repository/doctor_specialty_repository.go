package repository

import (
	"context"

	"doctor-matching/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorSpecialtyRepository interface {
	// CreateBatch inserts all links as one unit; on error none of them are stored.
	CreateBatch(ctx context.Context, db *gorm.DB, links []entity.DoctorSpecialty) error
}
