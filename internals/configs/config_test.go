package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", GetEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("UNSET_KEY", "fallback"))

	t.Setenv("EMPTY_KEY", "")
	assert.Equal(t, "fallback", GetEnv("EMPTY_KEY", "fallback"))
}

func TestIsProduction(t *testing.T) {
	AppEnv = "development"
	assert.False(t, IsProduction())
	AppEnv = "production"
	assert.True(t, IsProduction())
}
