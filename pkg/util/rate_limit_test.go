package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestParseRateLimitSyntax(t *testing.T) {
	limiter, err := ParseRateLimitSyntax("2+1/5s")
	assert.NoError(t, err)
	assert.Equal(t, 2, limiter.Burst())
	assert.Equal(t, rate.Every(5*time.Second), limiter.Limit())

	limiter, err = ParseRateLimitSyntax("1/1s")
	assert.NoError(t, err)
	assert.Equal(t, 1, limiter.Burst())

	_, err = ParseRateLimitSyntax("whatever")
	assert.Error(t, err)
}

func TestNewValidLimiter(t *testing.T) {
	_, err := NewValidLimiter(rate.Every(time.Second), 0)
	assert.Error(t, err)
}
