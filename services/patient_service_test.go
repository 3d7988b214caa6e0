package services

import (
	"testing"

	"hms_back_end_go/errs"
	"hms_back_end_go/updates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func currentPatient() map[string]string {
	return map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"phone":   "0123456789",
		"dob":     "1990-06-15",
		"address": "12 Main St",
		"notes":   "",
		"status":  "Attended",
	}
}

func TestPatientPatchToggleStatus(t *testing.T) {
	var p updates.Patch
	p.Set("status", strPtr("toggle"))

	clause, err := patientResolver.Resolve(currentPatient(), p)
	require.NoError(t, err)
	require.Len(t, clause.Assignments, 1)
	assert.Equal(t, "status", clause.Assignments[0].Column)
	assert.Equal(t, "Not Attended", clause.Assignments[0].Value)
}

func TestPatientPatchExplicitStatus(t *testing.T) {
	var p updates.Patch
	p.Set("status", strPtr("Not Attended"))

	clause, err := patientResolver.Resolve(currentPatient(), p)
	require.NoError(t, err)
	assert.Equal(t, "Not Attended", clause.Assignments[0].Value)
}

func TestPatientPatchRejectsBadStatus(t *testing.T) {
	var p updates.Patch
	p.Set("status", strPtr("Done"))

	_, err := patientResolver.Resolve(currentPatient(), p)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
}

func TestPatientPatchRejectsShortPhone(t *testing.T) {
	var p updates.Patch
	p.Set("name", strPtr("Janet Doe"))
	p.Set("phone", strPtr("12345"))

	_, err := patientResolver.Resolve(currentPatient(), p)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)
}

func TestPatientPatchEmptyBodyIsNoOp(t *testing.T) {
	_, err := patientResolver.Resolve(currentPatient(), updates.Patch{})
	var no *errs.NoOpError
	require.ErrorAs(t, err, &no)
}

func TestPatientPatchAllowsClearingNotes(t *testing.T) {
	var p updates.Patch
	p.Set("notes", strPtr("allergic to penicillin"))

	clause, err := patientResolver.Resolve(currentPatient(), p)
	require.NoError(t, err)
	require.Len(t, clause.Assignments, 1)
	assert.Equal(t, "notes", clause.Assignments[0].Column)
}

func TestPatientPatchBuildsUpdateStatement(t *testing.T) {
	var p updates.Patch
	p.Set("name", strPtr("Janet Doe"))
	p.Set("email", strPtr("janet@example.com"))

	clause, err := patientResolver.Resolve(currentPatient(), p)
	require.NoError(t, err)

	set, args := clause.SetClause(1)
	assert.Equal(t, "name = $1, email = $2", set)
	assert.Equal(t, []interface{}{"Janet Doe", "janet@example.com"}, args)
}
