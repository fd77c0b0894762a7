package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"doctor-matching/internal/converter"
	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/usecase"
	"doctor-matching/pkg/response"
	"doctor-matching/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	registrationUsecase usecase.DoctorRegistrationUsecase
	doctorUsecase       usecase.DoctorUsecase
	validator           *validator.CustomValidator
}

func NewDoctorHandler(
	registrationUsecase usecase.DoctorRegistrationUsecase,
	doctorUsecase usecase.DoctorUsecase,
	validator *validator.CustomValidator,
) *DoctorHandler {
	return &DoctorHandler{
		registrationUsecase: registrationUsecase,
		doctorUsecase:       doctorUsecase,
		validator:           validator,
	}
}

// Register handles doctor registration
// @Summary Register a doctor
// @Description Create a doctor account and link the named specialties
// @Tags Doctors
// @Accept json
// @Produce json
// @Param request body dto.RegisterDoctorRequest true "Register Request"
// @Success 201 {object} dto.RegisterDoctorResponse
// @Success 207 {object} dto.RegisterDoctorResponse
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register [post]
func (h *DoctorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	registration, err := h.registrationUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRejectedInput):
			fields := h.validator.FormatValidationErrors(err)
			if len(fields) == 0 {
				response.BadRequest(w, "Invalid registration request")
				return
			}
			response.ValidationError(w, fields)
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
			response.Conflict(w, "Email already registered")
		default:
			response.InternalServerError(w, "Unexpected error during registration")
		}
		return
	}

	status := http.StatusCreated
	if registration.IsDegraded() {
		status = http.StatusMultiStatus
	}
	response.JSON(w, status, converter.RegistrationToResponse(registration))
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || doctorID <= 0 {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "", doctors)
}
