package entity

import "time"

// Gender codes accepted by the doctors.gender CHECK constraint
const (
	GenderMale        = "M"
	GenderFemale      = "F"
	GenderOther       = "O"
	GenderNotDeclared = "N"
)

// DateLayout is the wire and storage layout for calendar dates
const DateLayout = "2006-01-02"

// Doctor represents a registered medical-professional account
type Doctor struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserTypeID   int       `gorm:"not null;default:1" json:"user_type_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Gender       string    `gorm:"type:char(1);not null" json:"gender"`
	Birthdate    time.Time `gorm:"type:date;not null" json:"birthdate"`
	LicenseDate  time.Time `gorm:"type:date;not null" json:"license_date"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:doctors_email_key;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Loaded explicitly by the query repository, never written through gorm associations.
	Specialties []Specialty `gorm:"-" json:"specialties"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsDoctor reports whether the account carries the doctor discriminator
func (d *Doctor) IsDoctor() bool {
	return d.UserTypeID == UserTypeIDDoctor
}

// ValidGender reports whether code is one of the enumerated gender codes
func ValidGender(code string) bool {
	switch code {
	case GenderMale, GenderFemale, GenderOther, GenderNotDeclared:
		return true
	}
	return false
}
