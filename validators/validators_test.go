package validators

import (
	"testing"

	"hms_back_end_go/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("jane@example.com"))
	assert.NoError(t, Email("a@b.co"))

	for _, v := range []string{"", "jane", "jane@", "@example.com", "jane example@x.com", "jane@nodot"} {
		assert.Error(t, Email(v), "email %q", v)
	}
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("0123456789"))

	for _, v := range []string{"", "12345", "12345678901", "012345678a", "012-345-6789"} {
		err := Phone(v)
		var ve *errs.ValidationError
		require.ErrorAs(t, err, &ve, "phone %q", v)
		assert.Equal(t, "phone", ve.Field)
	}
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("2025-10-12"))
	assert.Error(t, Date("2025-1-2"))
	assert.Error(t, Date("12/10/2025"))
	assert.Error(t, Date(""))
}

func TestClockTime(t *testing.T) {
	assert.NoError(t, ClockTime("10:00"))
	assert.NoError(t, ClockTime("10:00:30"))
	assert.Error(t, ClockTime("10"))
	assert.Error(t, ClockTime("10:0"))
	assert.Error(t, ClockTime(""))
}

func TestNormalizeTime(t *testing.T) {
	v, err := NormalizeTime("10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", v)

	v, err = NormalizeTime("10:00:30")
	require.NoError(t, err)
	assert.Equal(t, "10:00:30", v)
}

func TestPatientStatus(t *testing.T) {
	assert.NoError(t, PatientStatus("Attended"))
	assert.NoError(t, PatientStatus("Not Attended"))
	assert.Error(t, PatientStatus("attended"))
	assert.Error(t, PatientStatus("Done"))
}
