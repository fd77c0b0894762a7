package usecase

import (
	"context"
	"testing"
	"time"

	"doctor-matching/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDoctor(t *testing.T, repo *fakeDoctorRepo, name, email string) int64 {
	t.Helper()
	doctor := &entity.Doctor{
		UserTypeID:   entity.UserTypeIDDoctor,
		Name:         name,
		Gender:       entity.GenderFemale,
		Birthdate:    time.Date(1975, 6, 1, 0, 0, 0, 0, time.UTC),
		LicenseDate:  time.Date(2001, 4, 1, 0, 0, 0, 0, time.UTC),
		Email:        email,
		PasswordHash: "hashed:secret1",
	}
	require.NoError(t, repo.Create(context.Background(), nil, doctor))
	return doctor.ID
}

func TestDoctorUsecase_GetDoctorNotFound(t *testing.T) {
	uc := NewDoctorUsecase(nil, newTestLogger(), newFakeDoctorRepo(nil, nil))

	_, err := uc.GetDoctor(context.Background(), 99)

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorUsecase_StoreFailureIsInternal(t *testing.T) {
	repo := newFakeDoctorRepo(nil, nil)
	repo.findErr = errStoreDown
	uc := NewDoctorUsecase(nil, newTestLogger(), repo)

	_, err := uc.GetDoctor(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.GetAllDoctors(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDoctorUsecase_GetAllDoctorsOrderedByName(t *testing.T) {
	catalog := newFakeSpecialtyRepo("内科")
	links := &fakeDoctorSpecialtyRepo{}
	repo := newFakeDoctorRepo(catalog, links)
	seedDoctor(t, repo, "Suzuki", "s@x.com")
	satoID := seedDoctor(t, repo, "Sato", "t@x.com")
	require.NoError(t, links.CreateBatch(context.Background(), nil, []entity.DoctorSpecialty{{DoctorID: satoID, SpecialtyID: 1}}))

	doctors, err := NewDoctorUsecase(nil, newTestLogger(), repo).GetAllDoctors(context.Background())
	require.NoError(t, err)

	require.Len(t, doctors, 2)
	assert.Equal(t, "Sato", doctors[0].Name)
	assert.Equal(t, "内科", doctors[0].Specialties[0].Name)
	assert.Equal(t, "Suzuki", doctors[1].Name)
	assert.NotNil(t, doctors[1].Specialties)
	assert.Empty(t, doctors[1].Specialties)
}

func TestSpecialtyUsecase_GetAllSpecialties(t *testing.T) {
	repo := newFakeSpecialtyRepo("内科", "外科")
	uc := NewSpecialtyUsecase(nil, newTestLogger(), repo)

	specialties, err := uc.GetAllSpecialties(context.Background())
	require.NoError(t, err)
	assert.Len(t, specialties, 2)
	assert.Equal(t, 1, specialties[0].ID)

	repo.err = errStoreDown
	_, err = uc.GetAllSpecialties(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
