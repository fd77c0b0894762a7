package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialtyResolution_SpecialtyIDs(t *testing.T) {
	resolution := &SpecialtyResolution{
		Matched: map[string]int{"内科": 1, "外科": 2, "眼科": 5},
		Missing: []string{"Xenology"},
	}

	ids := resolution.SpecialtyIDs([]string{"眼科", "Xenology", "内科", "眼科", "外科"})

	assert.Equal(t, []int{5, 1, 2}, ids)
	assert.True(t, resolution.HasMissing())
}

func TestSpecialtyResolution_Empty(t *testing.T) {
	resolution := &SpecialtyResolution{Matched: map[string]int{}}

	assert.Empty(t, resolution.SpecialtyIDs(nil))
	assert.False(t, resolution.HasMissing())
}

func TestRegistration_Flags(t *testing.T) {
	complete := &Registration{Outcome: RegistrationRegistered, DoctorID: 1}
	assert.True(t, complete.IsComplete())
	assert.False(t, complete.IsDegraded())
	assert.True(t, complete.Success())

	for _, outcome := range []RegistrationOutcome{
		RegistrationRegisteredWithSpecialtyError,
		RegistrationRegisteredWithMissingSpecialties,
		RegistrationRegisteredWithAssociationError,
	} {
		degraded := &Registration{Outcome: outcome, DoctorID: 1}
		assert.False(t, degraded.IsComplete(), outcome)
		assert.True(t, degraded.IsDegraded(), outcome)
		assert.True(t, degraded.Success(), outcome)
	}
}

func TestValidGender(t *testing.T) {
	for _, code := range []string{"M", "F", "O", "N"} {
		assert.True(t, ValidGender(code), code)
	}
	for _, code := range []string{"", "m", "X", "Male"} {
		assert.False(t, ValidGender(code), code)
	}
}

func TestDoctor_IsDoctor(t *testing.T) {
	assert.True(t, (&Doctor{UserTypeID: UserTypeIDDoctor}).IsDoctor())
	assert.False(t, (&Doctor{UserTypeID: 2}).IsDoctor())
}

func TestJSON_ValueAndScan(t *testing.T) {
	value, err := JSON{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = JSON{"outcome": "registered"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"outcome":"registered"}`, string(value.([]byte)))

	var decoded JSON
	require.NoError(t, decoded.Scan([]byte(`{"outcome":"registered","count":2}`)))
	assert.Equal(t, "registered", decoded["outcome"])
	assert.Equal(t, float64(2), decoded["count"])

	require.NoError(t, decoded.Scan(`{"a":"b"}`))
	assert.Equal(t, JSON{"a": "b"}, decoded)

	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, decoded)

	assert.Error(t, decoded.Scan(42))
}
