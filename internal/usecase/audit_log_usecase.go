package usecase

//go:generate mockgen -source=audit_log_usecase.go -destination=mocks/audit_log_mocks.go -package=mocks

import (
	"context"
	"fmt"

	"doctor-matching/internal/converter"
	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditLogPageSize = 100

type AuditLogUsecase interface {
	GetDoctorAuditLogs(ctx context.Context, doctorID int64) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetDoctorAuditLogs(ctx context.Context, doctorID int64) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditLogRepo.FindByDoctorID(ctx, u.db, doctorID, auditLogPageSize)
	if err != nil {
		u.log.Warnf("Failed to find audit logs of doctor %d: %+v", doctorID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return converter.AuditLogsToListResponse(logs), nil
}
