package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	RegisterHealthCheck("up", func(context.Context) error { return nil })
	RegisterHealthCheck("down", func(context.Context) error { return errors.New("boom") })
	t.Cleanup(func() {
		mu.Lock()
		delete(checks, "up")
		delete(checks, "down")
		mu.Unlock()
	})

	status := CheckHealth(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.True(t, status.Checks["up"])
	assert.False(t, status.Checks["down"])

	stored := GetHealthStatus()
	assert.Equal(t, status.Checks, stored.Checks)
}
