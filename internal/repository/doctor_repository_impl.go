package repository

import (
	"context"
	"errors"
	"time"

	"doctor-matching/internal/domain/entity"
	domainRepo "doctor-matching/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

// doctorSpecialtyRow is one row of the doctor x specialty left join.
// Specialty columns are NULL for a doctor without associations.
type doctorSpecialtyRow struct {
	ID            int64
	UserTypeID    int
	Name          string
	Gender        string
	Birthdate     time.Time
	LicenseDate   time.Time
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SpecialtyID   *int
	SpecialtyName *string
}

const doctorSpecialtyColumns = `d.id, d.user_type_id, d.name, d.gender, d.birthdate, d.license_date,
	d.email, d.created_at, d.updated_at, s.id AS specialty_id, s.name AS specialty_name`

func (r *doctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error) {
	var rows []doctorSpecialtyRow
	err := joinedDoctors(ctx, db).
		Where("d.id = ?", id).
		Order("s.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	doctors := groupDoctorRows(rows)
	if len(doctors) == 0 {
		return nil, nil
	}
	return &doctors[0], nil
}

func (r *doctorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	var rows []doctorSpecialtyRow
	err := joinedDoctors(ctx, db).
		Order("d.name ASC, d.id ASC, s.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return groupDoctorRows(rows), nil
}

func joinedDoctors(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("doctors AS d").
		Select(doctorSpecialtyColumns).
		Joins("LEFT JOIN doctor_specialties ds ON ds.doctor_id = d.id").
		Joins("LEFT JOIN specialties s ON s.id = ds.specialty_id").
		Where("d.user_type_id = ?", entity.UserTypeIDDoctor)
}

// groupDoctorRows folds join rows into doctors, keeping the row order of the
// first occurrence of each doctor and of each specialty within a doctor.
func groupDoctorRows(rows []doctorSpecialtyRow) []entity.Doctor {
	doctors := make([]entity.Doctor, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			doctors = append(doctors, entity.Doctor{
				ID:          row.ID,
				UserTypeID:  row.UserTypeID,
				Name:        row.Name,
				Gender:      row.Gender,
				Birthdate:   row.Birthdate,
				LicenseDate: row.LicenseDate,
				Email:       row.Email,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
				Specialties: []entity.Specialty{},
			})
			i = len(doctors) - 1
			index[row.ID] = i
		}

		if row.SpecialtyID != nil && row.SpecialtyName != nil {
			doctors[i].Specialties = append(doctors[i].Specialties, entity.Specialty{
				ID:   *row.SpecialtyID,
				Name: *row.SpecialtyName,
			})
		}
	}

	return doctors
}
