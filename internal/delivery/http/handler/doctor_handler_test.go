package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/domain/entity"
	"doctor-matching/internal/usecase"
	"doctor-matching/internal/usecase/mocks"
	"doctor-matching/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DoctorHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRegistration *mocks.MockDoctorRegistrationUsecase
	mockDoctors      *mocks.MockDoctorUsecase
	router           *mux.Router
}

func TestDoctorHandlerSuite(t *testing.T) {
	suite.Run(t, new(DoctorHandlerSuite))
}

func (s *DoctorHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRegistration = mocks.NewMockDoctorRegistrationUsecase(s.ctrl)
	s.mockDoctors = mocks.NewMockDoctorUsecase(s.ctrl)

	h := NewDoctorHandler(s.mockRegistration, s.mockDoctors, validator.NewValidator())
	s.router = mux.NewRouter()
	s.router.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	s.router.HandleFunc("/doctors", h.GetAllDoctors).Methods(http.MethodGet)
	s.router.HandleFunc("/doctors/{id}", h.GetDoctor).Methods(http.MethodGet)
}

func (s *DoctorHandlerSuite) do(method, path, body string) (int, map[string]interface{}) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec.Code, decoded
}

const registerBody = `{"name":"A","gender":"M","birthdate":"1980-01-01","license_date":"2005-04-01",` +
	`"email":"a@x.com","password":"secret1","specialties":["内科"]}`

func (s *DoctorHandlerSuite) TestRegister_Created() {
	s.mockRegistration.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *dto.RegisterDoctorRequest) (*entity.Registration, error) {
			s.Equal("a@x.com", req.Email)
			s.Equal([]string{"内科"}, req.SpecialtyNames())
			return &entity.Registration{Outcome: entity.RegistrationRegistered, DoctorID: 7}, nil
		})

	status, body := s.do(http.MethodPost, "/register", registerBody)

	s.Equal(http.StatusCreated, status)
	s.Equal(true, body["success"])
	s.Equal(7.0, body["doctorId"])
	s.NotEmpty(body["message"])
	s.NotContains(body, "details")
}

func (s *DoctorHandlerSuite) TestRegister_DegradedOutcomesAreMultiStatus() {
	tests := []struct {
		name string
		reg  *entity.Registration
	}{
		{"specialty error", &entity.Registration{Outcome: entity.RegistrationRegisteredWithSpecialtyError, DoctorID: 1, Detail: "specialty catalog lookup failed"}},
		{"missing specialties", &entity.Registration{Outcome: entity.RegistrationRegisteredWithMissingSpecialties, DoctorID: 2, MissingSpecialties: []string{"未知科"}}},
		{"association error", &entity.Registration{Outcome: entity.RegistrationRegisteredWithAssociationError, DoctorID: 3, Detail: "doctor_specialties batch insert failed"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockRegistration.EXPECT().Register(gomock.Any(), gomock.Any()).Return(tt.reg, nil)

			status, body := s.do(http.MethodPost, "/register", registerBody)

			s.Equal(http.StatusMultiStatus, status)
			s.Equal(true, body["success"])
			s.Equal(float64(tt.reg.DoctorID), body["doctorId"])
			if tt.reg.Detail != "" {
				s.Equal(tt.reg.Detail, body["details"])
			}
			if len(tt.reg.MissingSpecialties) > 0 {
				s.Equal([]interface{}{"未知科"}, body["missing_specialties"])
			}
		})
	}
}

func (s *DoctorHandlerSuite) TestRegister_ErrorMapping() {
	v := validator.NewValidator()
	validationErr := v.Validate(&dto.RegisterDoctorRequest{})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"rejected input", fmt.Errorf("%w: %w", usecase.ErrRejectedInput, validationErr), http.StatusBadRequest},
		{"conflict", usecase.ErrEmailAlreadyRegistered, http.StatusConflict},
		{"internal", fmt.Errorf("%w: %w", usecase.ErrInternal, assert.AnError), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockRegistration.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			status, body := s.do(http.MethodPost, "/register", registerBody)

			s.Equal(tt.status, status)
			s.Equal(false, body["success"])
			s.NotEmpty(body["error"])
			s.NotContains(body["error"], assert.AnError.Error())
		})
	}
}

func (s *DoctorHandlerSuite) TestRegister_ValidationDetailsNameFields() {
	v := validator.NewValidator()
	s.mockRegistration.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", usecase.ErrRejectedInput, v.Validate(&dto.RegisterDoctorRequest{Name: "A"})))

	status, body := s.do(http.MethodPost, "/register", `{"name":"A"}`)

	s.Equal(http.StatusBadRequest, status)
	details, ok := body["details"].(map[string]interface{})
	s.Require().True(ok)
	s.Contains(details, "email")
	s.Contains(details, "specialties")
	s.NotContains(details, "name")
}

func (s *DoctorHandlerSuite) TestRegister_MalformedBody() {
	s.mockRegistration.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	status, body := s.do(http.MethodPost, "/register", "{bad-json")

	s.Equal(http.StatusBadRequest, status)
	s.Equal("Invalid request body", body["error"])
}

func (s *DoctorHandlerSuite) TestGetDoctor() {
	s.mockDoctors.EXPECT().GetDoctor(gomock.Any(), int64(5)).Return(&dto.DoctorResponse{
		ID:          5,
		Name:        "A",
		Specialties: []dto.SpecialtyResponse{{ID: 1, Name: "内科"}},
	}, nil)

	status, body := s.do(http.MethodGet, "/doctors/5", "")

	s.Equal(http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	s.Equal(5.0, data["id"])
	s.Len(data["specialties"], 1)
}

func (s *DoctorHandlerSuite) TestGetDoctor_Errors() {
	status, _ := s.do(http.MethodGet, "/doctors/abc", "")
	s.Equal(http.StatusBadRequest, status)

	s.mockDoctors.EXPECT().GetDoctor(gomock.Any(), int64(9)).Return(nil, usecase.ErrDoctorNotFound)
	status, _ = s.do(http.MethodGet, "/doctors/9", "")
	s.Equal(http.StatusNotFound, status)

	s.mockDoctors.EXPECT().GetDoctor(gomock.Any(), int64(10)).Return(nil, fmt.Errorf("%w: %w", usecase.ErrInternal, assert.AnError))
	status, _ = s.do(http.MethodGet, "/doctors/10", "")
	s.Equal(http.StatusInternalServerError, status)
}

func (s *DoctorHandlerSuite) TestGetAllDoctors() {
	s.mockDoctors.EXPECT().GetAllDoctors(gomock.Any()).Return([]dto.DoctorResponse{{ID: 1}, {ID: 2}}, nil)

	status, body := s.do(http.MethodGet, "/doctors", "")

	s.Equal(http.StatusOK, status)
	s.Len(body["data"], 2)
}
