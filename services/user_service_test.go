package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "johndoe", normalizeIdentifier(" JohnDoe "))
	assert.Equal(t, "jane@example.com", normalizeIdentifier("Jane@Example.COM"))
	assert.Equal(t, "", normalizeIdentifier("   "))
}

// A username stored as JohnDoe must still match the lowercased identifier
// the login and forgot-password handlers bind, so both lookups have to fold
// the stored column too.
func TestIdentifierLookupsFoldUsernameCase(t *testing.T) {
	assert.Contains(t, userCredentialsByIdentifier, "LOWER(username) = $1")
	assert.Contains(t, userEmailByIdentifier, "LOWER(username) = $1")
	assert.NotContains(t, userCredentialsByIdentifier, "WHERE username")
	assert.NotContains(t, userEmailByIdentifier, "WHERE username")
}
