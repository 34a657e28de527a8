package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDailyRunTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"02:00", "0 2 * * *"},
		{"03:30", "30 3 * * *"},
		{"23:59", "59 23 * * *"},
		{"garbage", "0 3 * * *"},
		{"", "0 3 * * *"},
		{"24:00", "0 3 * * *"},
		{"12:60", "0 3 * * *"},
		{"25:70", "0 3 * * *"},
		{"-1:30", "0 3 * * *"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseDailyRunTime(tt.in), "input: %s", tt.in)
	}
}

func TestStartWithoutSearchClient(t *testing.T) {
	s := &Scheduler{}
	assert.NoError(t, s.Start("03:00"))
	s.Stop()
}
