package errs

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationError reports a malformed or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// NoOpError reports a well-formed request that would change nothing.
type NoOpError struct {
	Reason string
}

func (e *NoOpError) Error() string {
	return e.Reason
}

// Status maps an error to its HTTP status code. Anything outside the three
// request-level kinds is treated as an infrastructure failure.
func Status(err error) int {
	var ve *ValidationError
	var nf *NotFoundError
	var no *NoOpError
	switch {
	case errors.As(err, &ve), errors.As(err, &no):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes the error envelope for err. Infrastructure failures are logged
// and reported with a generic message.
func JSON(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
