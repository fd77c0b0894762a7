package converter

import (
	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:          doctor.ID,
		UserTypeID:  doctor.UserTypeID,
		Name:        doctor.Name,
		Gender:      doctor.Gender,
		Birthdate:   doctor.Birthdate.Format(entity.DateLayout),
		LicenseDate: doctor.LicenseDate.Format(entity.DateLayout),
		Email:       doctor.Email,
		Specialties: SpecialtiesToResponses(doctor.Specialties),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// RegistrationToResponse shapes a workflow result for the register endpoint
func RegistrationToResponse(registration *entity.Registration) *dto.RegisterDoctorResponse {
	resp := &dto.RegisterDoctorResponse{
		Success:  registration.Success(),
		DoctorID: registration.DoctorID,
		Details:  registration.Detail,
	}

	switch registration.Outcome {
	case entity.RegistrationRegistered:
		resp.Message = "Doctor registered successfully"
	case entity.RegistrationRegisteredWithSpecialtyError:
		resp.Message = "Doctor registered, but specialties could not be verified and were left unset"
	case entity.RegistrationRegisteredWithMissingSpecialties:
		resp.Message = "Doctor registered, but some specialties were not found and none were set"
		resp.MissingSpecialties = registration.MissingSpecialties
	case entity.RegistrationRegisteredWithAssociationError:
		resp.Message = "Doctor registered, but specialty association failed"
	}

	return resp
}
