package repository

import (
	"context"

	"doctor-matching/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialty, error)
	// FindByNames matches names exactly and case-sensitively in a single query.
	FindByNames(ctx context.Context, db *gorm.DB, names []string) ([]entity.Specialty, error)
}
