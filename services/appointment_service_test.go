package services

import (
	"testing"

	"hms_back_end_go/errs"
	"hms_back_end_go/updates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentAppointment() map[string]string {
	return map[string]string{
		"status": "scheduled",
		"reason": "Checkup",
		"date":   "2025-10-12",
		"time":   "10:00:00",
	}
}

func TestAppointmentUpdateNormalizesTime(t *testing.T) {
	var p updates.Patch
	p.Set("time", strPtr("09:30"))

	clause, err := appointmentResolver.Resolve(currentAppointment(), p)
	require.NoError(t, err)
	require.Len(t, clause.Assignments, 1)
	assert.Equal(t, "09:30:00", clause.Assignments[0].Value)
}

func TestAppointmentUpdateRejectsBadDate(t *testing.T) {
	var p updates.Patch
	p.Set("date", strPtr("12/10/2025"))

	_, err := appointmentResolver.Resolve(currentAppointment(), p)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "date", ve.Field)
}

func TestAppointmentUpdateFullReplacement(t *testing.T) {
	var p updates.Patch
	p.Set("status", strPtr("completed"))
	p.Set("reason", strPtr("Follow-up"))
	p.Set("date", strPtr("2025-11-01"))
	p.Set("time", strPtr("14:15"))

	clause, err := appointmentResolver.Resolve(currentAppointment(), p)
	require.NoError(t, err)
	require.Len(t, clause.Assignments, 4)

	set, args := clause.SetClause(1)
	assert.Equal(t, "status = $1, reason = $2, date = $3, time = $4", set)
	assert.Equal(t, []interface{}{"completed", "Follow-up", "2025-11-01", "14:15:00"}, args)
}

func TestAppointmentUpdateSameValuesIsNoOp(t *testing.T) {
	var p updates.Patch
	p.Set("status", strPtr("scheduled"))
	p.Set("time", strPtr("10:00"))

	_, err := appointmentResolver.Resolve(currentAppointment(), p)
	var no *errs.NoOpError
	require.ErrorAs(t, err, &no)
}
