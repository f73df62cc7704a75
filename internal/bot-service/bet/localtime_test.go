package bet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeforeNoonLocal(t *testing.T) {
	tests := []struct {
		name string
		utc  time.Time
		want bool
	}{
		// 05:29:59 UTC = 11:59:59 local
		{"last second of the morning", time.Date(2025, 3, 1, 5, 29, 59, 0, time.UTC), true},
		// 05:30:00 UTC = 12:00:00 local
		{"noon boundary is excluded", time.Date(2025, 3, 1, 5, 30, 0, 0, time.UTC), false},
		// 17:30 UTC = 00:00 local do dia seguinte
		{"midnight local", time.Date(2025, 3, 1, 17, 30, 0, 0, time.UTC), true},
		{"early morning local", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"evening local", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BeforeNoonLocal(tt.utc))
		})
	}
}

func TestBeforeNoonLocalIgnoresInputLocation(t *testing.T) {
	utc := time.Date(2025, 3, 1, 5, 0, 0, 0, time.UTC)
	elsewhere := utc.In(time.FixedZone("X", -5*3600))
	assert.Equal(t, BeforeNoonLocal(utc), BeforeNoonLocal(elsewhere))
}
