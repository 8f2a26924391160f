package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecker_RunAll(t *testing.T) {
	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name     string
		database func(context.Context) error
		cache    func(context.Context) error
		want     HealthStatus
	}{
		{"all healthy", ok, ok, Healthy},
		{"cache down degrades", ok, fail, Degraded},
		{"database down", fail, ok, Unhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := CreateHealthChecker(time.Second)
			hc.AddCheck("database", true, tt.database)
			hc.AddCheck("cache", false, tt.cache)

			report := hc.RunAll(context.Background())
			assert.Equal(t, tt.want, report.Status)
			require.Len(t, report.Checks, 2)
			assert.Equal(t, "cache", report.Checks[0].Name)
			assert.Equal(t, "database", report.Checks[1].Name)
		})
	}
}

func TestHealthChecker_Timeout(t *testing.T) {
	hc := CreateHealthChecker(10 * time.Millisecond)
	hc.AddCheck("database", true, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	report := hc.RunAll(context.Background())
	assert.Equal(t, Unhealthy, report.Status)
	assert.Contains(t, report.Checks[0].Error, "deadline exceeded")
}
