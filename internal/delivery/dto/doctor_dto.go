package dto

// Request DTOs

type RegisterDoctorRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Gender      string `json:"gender" validate:"required,oneof=M F O N"`
	Birthdate   string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	LicenseDate string `json:"license_date" validate:"required,datetime=2006-01-02"`
	Email       string `json:"email" validate:"required,email,max=255"`
	// bcrypt ignores input past 72 bytes, so longer passwords are refused.
	Password string `json:"password" validate:"required,max=72"`
	// Present but possibly empty; nil means the field was omitted.
	Specialties *[]string `json:"specialties" validate:"required"`
}

// SpecialtyNames returns the requested names, empty when the field was omitted
func (r *RegisterDoctorRequest) SpecialtyNames() []string {
	if r.Specialties == nil {
		return nil
	}
	return *r.Specialties
}

// Response DTOs

type RegisterDoctorResponse struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	DoctorID           int64    `json:"doctorId"`
	Details            string   `json:"details,omitempty"`
	MissingSpecialties []string `json:"missing_specialties,omitempty"`
}

type DoctorResponse struct {
	ID          int64               `json:"id"`
	UserTypeID  int                 `json:"user_type_id"`
	Name        string              `json:"name"`
	Gender      string              `json:"gender"`
	Birthdate   string              `json:"birthdate"`
	LicenseDate string              `json:"license_date"`
	Email       string              `json:"email"`
	Specialties []SpecialtyResponse `json:"specialties"`
}
