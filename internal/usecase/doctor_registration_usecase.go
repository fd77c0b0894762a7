package usecase

//go:generate mockgen -source=doctor_registration_usecase.go -destination=mocks/doctor_registration_mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/domain/entity"
	"doctor-matching/internal/domain/repository"
	"doctor-matching/internal/service"
	"doctor-matching/pkg/metrics"
	"doctor-matching/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRejectedInput          = errors.New("rejected input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInternal               = errors.New("internal error")
)

// Outcome labels for registrations that end before the doctor row exists
const (
	outcomeRejectedInput = "rejected_input"
	outcomeConflict      = "conflict"
	outcomeInternalError = "internal_error"
)

// Caller-safe details for degraded outcomes
const (
	detailCatalogLookupFailed = "specialty catalog lookup failed"
	detailAssociationFailed   = "doctor_specialties batch insert failed"
	detailCatalogChanged      = "specialty removed from catalog during registration"
)

// DoctorRegistrationUsecase runs Validating, Hashing, PersistingDoctor,
// ResolvingSpecialties and AssociatingSpecialties strictly in that order.
//
// Register returns an error only for the pre-insert terminal states:
// ErrRejectedInput, ErrEmailAlreadyRegistered and ErrInternal. Once the doctor
// row is written the result is always a Registration and the row is never removed.
type DoctorRegistrationUsecase interface {
	Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*entity.Registration, error)
}

type doctorRegistrationUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	validate            *validator.CustomValidator
	hasher              service.PasswordHasher
	doctorRepo          repository.DoctorRepository
	doctorSpecialtyRepo repository.DoctorSpecialtyRepository
	resolver            SpecialtyResolver
	auditService        service.AuditService
	metrics             *metrics.Metrics
}

func NewDoctorRegistrationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	hasher service.PasswordHasher,
	doctorRepo repository.DoctorRepository,
	doctorSpecialtyRepo repository.DoctorSpecialtyRepository,
	resolver SpecialtyResolver,
	auditService service.AuditService,
	metrics *metrics.Metrics,
) DoctorRegistrationUsecase {
	return &doctorRegistrationUsecase{
		db:                  db,
		log:                 log,
		validate:            validate,
		hasher:              hasher,
		doctorRepo:          doctorRepo,
		doctorSpecialtyRepo: doctorSpecialtyRepo,
		resolver:            resolver,
		auditService:        auditService,
		metrics:             metrics,
	}
}

func (u *doctorRegistrationUsecase) Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*entity.Registration, error) {
	// Validating
	doctor, err := u.buildDoctor(req)
	if err != nil {
		u.metrics.RecordRegistration(outcomeRejectedInput)
		return nil, fmt.Errorf("%w: %w", ErrRejectedInput, err)
	}

	// Hashing
	passwordHash, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		u.metrics.RecordRegistration(outcomeInternalError)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	doctor.PasswordHash = passwordHash

	// PersistingDoctor
	if err := u.doctorRepo.Create(ctx, u.db, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			u.metrics.RecordRegistration(outcomeConflict)
			return nil, ErrEmailAlreadyRegistered
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		u.metrics.RecordRegistration(outcomeInternalError)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return u.finish(ctx, u.linkSpecialties(ctx, doctor.ID, req.SpecialtyNames())), nil
}

func (u *doctorRegistrationUsecase) buildDoctor(req *dto.RegisterDoctorRequest) (*entity.Doctor, error) {
	if req == nil {
		return nil, errors.New("request body is required")
	}
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	birthdate, err := time.Parse(entity.DateLayout, req.Birthdate)
	if err != nil {
		return nil, err
	}
	licenseDate, err := time.Parse(entity.DateLayout, req.LicenseDate)
	if err != nil {
		return nil, err
	}

	return &entity.Doctor{
		UserTypeID:  entity.UserTypeIDDoctor,
		Name:        req.Name,
		Gender:      req.Gender,
		Birthdate:   birthdate,
		LicenseDate: licenseDate,
		Email:       req.Email,
	}, nil
}

// linkSpecialties covers ResolvingSpecialties and AssociatingSpecialties.
// Linkage is all-or-nothing: any unmatched name means no rows are written.
func (u *doctorRegistrationUsecase) linkSpecialties(ctx context.Context, doctorID int64, names []string) *entity.Registration {
	registration := &entity.Registration{
		Outcome:  entity.RegistrationRegistered,
		DoctorID: doctorID,
	}
	if len(names) == 0 {
		return registration
	}

	resolution, err := u.resolver.Resolve(ctx, names)
	if err != nil {
		u.log.Warnf("Doctor %d registered without specialties: %+v", doctorID, err)
		registration.Outcome = entity.RegistrationRegisteredWithSpecialtyError
		registration.Detail = detailCatalogLookupFailed
		return registration
	}

	if resolution.HasMissing() {
		registration.Outcome = entity.RegistrationRegisteredWithMissingSpecialties
		registration.MissingSpecialties = resolution.Missing
		return registration
	}

	specialtyIDs := resolution.SpecialtyIDs(names)
	links := make([]entity.DoctorSpecialty, len(specialtyIDs))
	for i, specialtyID := range specialtyIDs {
		links[i] = entity.DoctorSpecialty{DoctorID: doctorID, SpecialtyID: specialtyID}
	}

	if err := u.doctorSpecialtyRepo.CreateBatch(ctx, u.db, links); err != nil {
		u.log.Warnf("Failed to associate specialties %v with doctor %d: %+v", specialtyIDs, doctorID, err)
		registration.Outcome = entity.RegistrationRegisteredWithAssociationError
		registration.Detail = detailAssociationFailed
		if isForeignKeyError(err, "specialty") {
			registration.Detail = detailCatalogChanged
		}
	}

	return registration
}

func (u *doctorRegistrationUsecase) finish(ctx context.Context, registration *entity.Registration) *entity.Registration {
	// the audit row is best-effort and never changes the outcome
	if err := u.auditService.LogRegistration(ctx, u.db, registration); err != nil {
		u.log.Warnf("Failed to audit registration of doctor %d: %+v", registration.DoctorID, err)
	}
	u.metrics.RecordRegistration(string(registration.Outcome))

	return registration
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint whose name contains constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// on a constraint whose name contains constraintName
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
