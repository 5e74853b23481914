package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vancha/binary-clock/internal/clock"
)

func TestSampleAppliesOffset(t *testing.T) {
	noon := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		offsetSeconds int
		wantHour      int
		wantMinute    int
	}{
		{"utc+1", 3600, 13, 0},
		{"utc", 0, 12, 0},
		{"utc-5", -5 * 3600, 7, 0},
		{"half hour zone", 5*3600 + 1800, 17, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.Sample(clock.Fixed{T: noon}, tt.offsetSeconds)
			assert.Equal(t, tt.wantHour, got.Hour())
			assert.Equal(t, tt.wantMinute, got.Minute())
			assert.Equal(t, 0, got.Second())
			// Same instant, different zone.
			assert.True(t, got.Equal(noon))
		})
	}
}

func TestSampleZoneName(t *testing.T) {
	noon := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)

	zone, _ := clock.Sample(clock.Fixed{T: noon}, 3600).Zone()
	assert.Equal(t, "UTC+01:00", zone)

	zone, _ = clock.Sample(clock.Fixed{T: noon}, -(9*3600 + 1800)).Zone()
	assert.Equal(t, "UTC-09:30", zone)
}

func TestSystemNow(t *testing.T) {
	before := time.Now()
	got := clock.System{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
