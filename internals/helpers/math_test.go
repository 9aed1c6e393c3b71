package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 85.0, Percentage(85, 100))
	assert.Equal(t, 50.0, Percentage(25, 50))
	assert.Equal(t, 0.0, Percentage(10, 0), "zero total guards against division by zero")
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 85.7, Round1(85.666))
	assert.Equal(t, 85.6, Round1(85.649))
	assert.Equal(t, -2.5, Round1(-2.45))
}

func TestMeanRound1(t *testing.T) {
	assert.Equal(t, 0.0, MeanRound1(nil))
	assert.Equal(t, 80.0, MeanRound1([]float64{70, 80, 90}))
	assert.Equal(t, 83.3, MeanRound1([]float64{100, 50, 100}))
}
