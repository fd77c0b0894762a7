package repository

import (
	"context"

	"doctor-matching/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	// FindByDoctorID returns the newest rows first, at most limit of them.
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int64, limit int) ([]entity.AuditLog, error)
}
