package entity

// DoctorSpecialty links a doctor to one catalog specialty
type DoctorSpecialty struct {
	DoctorID    int64 `gorm:"primaryKey;autoIncrement:false" json:"doctor_id"`
	SpecialtyID int   `gorm:"primaryKey;autoIncrement:false" json:"specialty_id"`
}

func (DoctorSpecialty) TableName() string {
	return "doctor_specialties"
}
