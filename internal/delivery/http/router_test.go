package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctor-matching/config"
	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/delivery/http/handler"
	"doctor-matching/internal/delivery/http/middleware"
	"doctor-matching/internal/domain/entity"
	"doctor-matching/internal/usecase/mocks"
	"doctor-matching/pkg/jwt"
	"doctor-matching/pkg/metrics"
	"doctor-matching/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

type routerFixture struct {
	handler      http.Handler
	registration *mocks.MockDoctorRegistrationUsecase
	doctors      *mocks.MockDoctorUsecase
	specialties  *mocks.MockSpecialtyUsecase
}

type noTokens struct{}

func (noTokens) StoreAccess(context.Context, int64, string, time.Duration) error { return nil }
func (noTokens) StoreRefresh(context.Context, int64, string, time.Duration) error { return nil }
func (noTokens) AccessExists(context.Context, int64, string) (bool, error) { return false, nil }
func (noTokens) RefreshExists(context.Context, int64, string) (bool, error) { return false, nil }
func (noTokens) DeleteAccess(context.Context, int64, string) error { return nil }
func (noTokens) DeleteRefresh(context.Context, int64, string) error { return nil }
func (noTokens) DeleteAllForDoctor(context.Context, int64) error { return nil }

func newRouterFixture(t *testing.T, burst int) *routerFixture {
	ctrl := gomock.NewController(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	reg := prometheus.NewRegistry()
	v := validator.NewValidator()

	f := &routerFixture{
		registration: mocks.NewMockDoctorRegistrationUsecase(ctrl),
		doctors:      mocks.NewMockDoctorUsecase(ctrl),
		specialties:  mocks.NewMockSpecialtyUsecase(ctrl),
	}
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: time.Hour, RefreshExpiry: time.Hour})

	f.handler = NewRouter(
		handler.NewDoctorHandler(f.registration, f.doctors, v),
		handler.NewSpecialtyHandler(f.specialties),
		handler.NewAuthHandler(mocks.NewMockAuthUsecase(ctrl), v),
		handler.NewAuditLogHandler(mocks.NewMockAuditLogUsecase(ctrl)),
		handler.NewHealthHandler(),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		middleware.NewAuthMiddleware(log, jwtService, noTokens{}),
		middleware.NewCORSMiddleware(),
		middleware.NewAPIKeyMiddleware("k3y"),
		middleware.NewRateLimiter(middleware.RateLimiterConfig{Rate: rate.Every(time.Hour), Burst: burst}),
		middleware.NewLoggingMiddleware(log),
		middleware.NewMetricsMiddleware(metrics.NewMetrics(reg)),
	).Setup()
	return f
}

func (f *routerFixture) do(method, path, body string, withKey bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if withKey {
		req.Header.Set(middleware.APIKeyHeader, "k3y")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthAndMetricsNeedNoKey(t *testing.T) {
	f := newRouterFixture(t, 5)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/health", "", false).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/metrics", "", false).Code)
}

func TestRouter_APIKeyGuardsRoutes(t *testing.T) {
	f := newRouterFixture(t, 5)
	f.specialties.EXPECT().GetAllSpecialties(gomock.Any()).Return([]dto.SpecialtyResponse{}, nil)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/specialties", "", false).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/v1/register", "{}", false).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/specialties", "", true).Code)
}

func TestRouter_ProtectedRoutesNeedBearer(t *testing.T) {
	f := newRouterFixture(t, 5)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/me", "", true).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/v1/logout", "", true).Code)
}

func TestRouter_PreflightSkipsRouting(t *testing.T) {
	f := newRouterFixture(t, 5)

	rec := f.do(http.MethodOptions, "/api/v1/register", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-API-Key")
}

func TestRouter_RegisterIsRateLimited(t *testing.T) {
	f := newRouterFixture(t, 1)
	f.registration.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(&entity.Registration{Outcome: entity.RegistrationRegistered, DoctorID: 1}, nil)

	assert.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/v1/register", "{}", true).Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodPost, "/api/v1/register", "{}", true).Code)
}

func TestRouter_DoctorDetailRoute(t *testing.T) {
	f := newRouterFixture(t, 5)
	f.doctors.EXPECT().GetDoctor(gomock.Any(), int64(12)).Return(&dto.DoctorResponse{ID: 12}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/doctors/12", "", true).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/doctors/x", "", true).Code)
}
