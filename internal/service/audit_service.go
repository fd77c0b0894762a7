package service

import (
	"context"

	"doctor-matching/internal/domain/entity"
	"doctor-matching/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogRegistration(ctx context.Context, db *gorm.DB, registration *entity.Registration) error
	LogEvent(ctx context.Context, db *gorm.DB, doctorID int64, action string, metadata entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogRegistration records the terminal outcome of a registration that created a doctor
func (s *auditService) LogRegistration(ctx context.Context, db *gorm.DB, registration *entity.Registration) error {
	metadata := entity.JSON{
		"outcome": string(registration.Outcome),
	}
	if len(registration.MissingSpecialties) > 0 {
		metadata["missing_specialties"] = registration.MissingSpecialties
	}
	if registration.Detail != "" {
		metadata["detail"] = registration.Detail
	}

	return s.LogEvent(ctx, db, registration.DoctorID, entity.AuditActionDoctorRegister, metadata)
}

func (s *auditService) LogEvent(ctx context.Context, db *gorm.DB, doctorID int64, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		DoctorID: &doctorID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
