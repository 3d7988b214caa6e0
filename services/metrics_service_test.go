package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupancyPercent(t *testing.T) {
	assert.Equal(t, 30, occupancyPercent(3, 10))
	assert.Equal(t, 33, occupancyPercent(1, 3))
	assert.Equal(t, 67, occupancyPercent(2, 3))
	assert.Equal(t, 100, occupancyPercent(10, 10))
	assert.Equal(t, 0, occupancyPercent(0, 10))
	assert.Equal(t, 0, occupancyPercent(0, 0))
	assert.Equal(t, 0, occupancyPercent(5, 0))
}
