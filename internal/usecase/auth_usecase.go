package usecase

//go:generate mockgen -source=auth_usecase.go -destination=mocks/auth_mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"doctor-matching/internal/converter"
	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/domain/entity"
	"doctor-matching/internal/domain/repository"
	"doctor-matching/internal/service"
	"doctor-matching/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, doctorID int64, accessTokenID string, req *dto.LogoutRequest) error
	LogoutAll(ctx context.Context, doctorID int64) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentDoctor(ctx context.Context, doctorID int64) (*dto.DoctorResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	tokenRepo    repository.TokenRepository
	hasher       service.PasswordHasher
	auditService service.AuditService
	jwtService   *jwt.JWTService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	tokenRepo repository.TokenRepository,
	hasher service.PasswordHasher,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		auditService: auditService,
		jwtService:   jwtService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	doctor, err := u.doctorRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// unknown email and wrong password are indistinguishable to the caller
	if doctor == nil || !doctor.IsDoctor() || !u.hasher.Verify(req.Password, doctor.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, jwt.Subject{
		DoctorID:   doctor.ID,
		Email:      doctor.Email,
		UserTypeID: doctor.UserTypeID,
	})
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, u.db, doctor.ID, entity.AuditActionDoctorLogin, nil); err != nil {
		u.log.Warnf("Failed to audit login of doctor %d: %+v", doctor.ID, err)
	}

	return tokens, nil
}

// Logout revokes the presented access token and, when supplied, a refresh token
// belonging to the same doctor. An unusable refresh token is ignored.
func (u *authUsecase) Logout(ctx context.Context, doctorID int64, accessTokenID string, req *dto.LogoutRequest) error {
	if err := u.tokenRepo.DeleteAccess(ctx, doctorID, accessTokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if req != nil && req.RefreshToken != "" {
		claims, err := u.jwtService.ValidateToken(req.RefreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.DoctorID == doctorID {
			if err := u.tokenRepo.DeleteRefresh(ctx, doctorID, claims.TokenID); err != nil {
				u.log.Warnf("Failed to delete refresh token: %+v", err)
				return fmt.Errorf("%w: %w", ErrInternal, err)
			}
		}
	}

	if err := u.auditService.LogEvent(ctx, u.db, doctorID, entity.AuditActionDoctorLogout, nil); err != nil {
		u.log.Warnf("Failed to audit logout of doctor %d: %+v", doctorID, err)
	}

	return nil
}

// LogoutAll revokes every outstanding token of the doctor
func (u *authUsecase) LogoutAll(ctx context.Context, doctorID int64) error {
	if err := u.tokenRepo.DeleteAllForDoctor(ctx, doctorID); err != nil {
		u.log.Warnf("Failed to revoke tokens of doctor %d: %+v", doctorID, err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := u.auditService.LogEvent(ctx, u.db, doctorID, entity.AuditActionDoctorLogout, entity.JSON{"scope": "all"}); err != nil {
		u.log.Warnf("Failed to audit logout of doctor %d: %+v", doctorID, err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokenRepo.RefreshExists(ctx, claims.DoctorID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	// rotate: the presented refresh token is single use
	if err := u.tokenRepo.DeleteRefresh(ctx, claims.DoctorID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return u.issueTokens(ctx, jwt.Subject{
		DoctorID:   claims.DoctorID,
		Email:      claims.Email,
		UserTypeID: claims.UserTypeID,
	})
}

func (u *authUsecase) GetCurrentDoctor(ctx context.Context, doctorID int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, subject jwt.Subject) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(subject)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(subject)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := u.tokenRepo.StoreAccess(ctx, subject.DoctorID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := u.tokenRepo.StoreRefresh(ctx, subject.DoctorID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
