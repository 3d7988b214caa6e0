package updates

import (
	"testing"

	"hms_back_end_go/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testResolver() *Resolver {
	return NewResolver(
		Rule{Column: "name"},
		Rule{Column: "phone", Validate: func(v string) error {
			for _, r := range v {
				if r < '0' || r > '9' {
					return &errs.ValidationError{Field: "phone", Reason: "Phone number must be 10 digits"}
				}
			}
			if len(v) != 10 {
				return &errs.ValidationError{Field: "phone", Reason: "Phone number must be 10 digits"}
			}
			return nil
		}},
		Rule{Column: "status", Toggle: [2]string{"Not Attended", "Attended"}},
	)
}

func TestResolveRestrictsToWhitelist(t *testing.T) {
	r := testResolver()
	var p Patch
	p.Set("name", strPtr("Jane Doe"))
	p.Set("favorite_color", strPtr("blue"))

	clause, err := r.Resolve(map[string]string{"name": "John Doe"}, p)
	require.NoError(t, err)
	require.Len(t, clause.Assignments, 1)
	assert.Equal(t, "name", clause.Assignments[0].Column)
	assert.Equal(t, "Jane Doe", clause.Assignments[0].Value)
}

func TestResolveAbsentFieldsIgnored(t *testing.T) {
	r := testResolver()
	var p Patch
	p.Set("name", nil)
	p.Set("phone", strPtr("0123456789"))

	clause, err := r.Resolve(map[string]string{"name": "John Doe", "phone": "9876543210"}, p)
	require.NoError(t, err)
	require.Len(t, clause.Assignments, 1)
	assert.Equal(t, "phone", clause.Assignments[0].Column)
}

func TestResolveValidationNamesField(t *testing.T) {
	r := testResolver()
	var p Patch
	p.Set("name", strPtr("Jane Doe"))
	p.Set("phone", strPtr("12345"))

	clause, err := r.Resolve(map[string]string{}, p)
	assert.Nil(t, clause)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)
}

func TestResolveEmptyPatchIsNoOp(t *testing.T) {
	r := testResolver()

	clause, err := r.Resolve(map[string]string{"name": "John Doe"}, Patch{})
	assert.Nil(t, clause)
	var no *errs.NoOpError
	require.ErrorAs(t, err, &no)
}

func TestResolveUnchangedValuesAreNoOp(t *testing.T) {
	r := testResolver()
	var p Patch
	p.Set("name", strPtr("John Doe"))
	p.Set("phone", strPtr("0123456789"))

	clause, err := r.Resolve(map[string]string{"name": "John Doe", "phone": "0123456789"}, p)
	assert.Nil(t, clause)
	var no *errs.NoOpError
	require.ErrorAs(t, err, &no)
}

func TestResolveToggleFlipsStatus(t *testing.T) {
	r := testResolver()
	var p Patch
	p.Set("status", strPtr(ToggleToken))

	clause, err := r.Resolve(map[string]string{"status": "Attended"}, p)
	require.NoError(t, err)
	require.Len(t, clause.Assignments, 1)
	assert.Equal(t, "Not Attended", clause.Assignments[0].Value)
}

func TestResolveToggleTwiceRestoresStatus(t *testing.T) {
	r := testResolver()
	current := map[string]string{"status": "Attended"}

	for i := 0; i < 2; i++ {
		var p Patch
		p.Set("status", strPtr(ToggleToken))
		clause, err := r.Resolve(current, p)
		require.NoError(t, err)
		require.Len(t, clause.Assignments, 1)
		current["status"] = clause.Assignments[0].Value
	}

	assert.Equal(t, "Attended", current["status"])
}

func TestResolveTransformNormalizesValue(t *testing.T) {
	r := NewResolver(Rule{Column: "time", Transform: func(v string) (string, error) {
		return v + ":00", nil
	}})
	var p Patch
	p.Set("time", strPtr("10:30"))

	clause, err := r.Resolve(map[string]string{"time": "08:00:00"}, p)
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", clause.Assignments[0].Value)
}

func TestSetClauseRendering(t *testing.T) {
	clause := &Clause{Assignments: []Assignment{
		{Column: "name", Value: "Jane Doe"},
		{Column: "phone", Value: "0123456789"},
	}}

	set, args := clause.SetClause(1)
	assert.Equal(t, "name = $1, phone = $2", set)
	assert.Equal(t, []interface{}{"Jane Doe", "0123456789"}, args)

	set, args = clause.SetClause(3)
	assert.Equal(t, "name = $3, phone = $4", set)
	assert.Len(t, args, 2)
}
