package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(&ValidationError{Field: "phone", Reason: "Phone number must be 10 digits"}))
	assert.Equal(t, http.StatusBadRequest, Status(&NoOpError{Reason: "No changes applied"}))
	assert.Equal(t, http.StatusNotFound, Status(&NotFoundError{Entity: "Patient"}))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("connection refused")))
}

func TestStatusWrapped(t *testing.T) {
	err := fmt.Errorf("resolving patch: %w", &NotFoundError{Entity: "Patient"})
	assert.Equal(t, http.StatusNotFound, Status(err))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Patient not found", (&NotFoundError{Entity: "Patient"}).Error())
	assert.Equal(t, "Invalid email format", (&ValidationError{Field: "email", Reason: "Invalid email format"}).Error())
	assert.Equal(t, "No changes applied", (&NoOpError{Reason: "No changes applied"}).Error())
}
