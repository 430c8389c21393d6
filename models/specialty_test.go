package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorSpecialtyUnmarshalAcceptsLegacyKeys(t *testing.T) {
	cases := map[string]string{
		"current key":      `{"specialtyId":"cardio"}`,
		"legacy key":       `{"specialityId":"cardio"}`,
		"oldest key":       `{"specialitiesId":"cardio"}`,
		"current key wins": `{"specialtyId":"cardio","specialitiesId":"derma"}`,
	}
	for name, raw := range cases {
		var ds DoctorSpecialty
		require.NoError(t, json.Unmarshal([]byte(raw), &ds), name)
		assert.Equal(t, "cardio", ds.SpecialtyID, name)
	}
}

func TestDoctorSpecialtyUnmarshalKeepsEmbeddedSpecialty(t *testing.T) {
	raw := `{"specialityId":"cardio","specialty":{"id":"cardio","title":"Cardiology"}}`

	var ds DoctorSpecialty
	require.NoError(t, json.Unmarshal([]byte(raw), &ds))
	assert.Equal(t, "cardio", ds.SpecialtyID)
	require.NotNil(t, ds.Specialty)
	assert.Equal(t, "Cardiology", ds.Specialty.Title)
}

func TestDashboardPathByRole(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", DashboardPath(RoleAdmin))
	assert.Equal(t, "/admin/dashboard", DashboardPath(RoleSuperAdmin))
	assert.Equal(t, "/doctor/dashboard", DashboardPath(RoleDoctor))
	assert.Equal(t, "/", DashboardPath(RolePatient))
	assert.Equal(t, "/", DashboardPath("unknown"))
}
