package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeWindow(t *testing.T) {
	tests := []struct {
		in   string
		want TimeWindow
	}{
		{"18:00-21:00", TimeWindow{StartHour: 18, EndHour: 21}},
		{"18:30-21:15", TimeWindow{StartHour: 18, EndHour: 21}},
		{"09:00-11:00", TimeWindow{StartHour: 9, EndHour: 11}},
		{" 7:45-8:05 ", TimeWindow{StartHour: 7, EndHour: 8}},
	}
	for _, tt := range tests {
		got, err := ParseTimeWindow(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseTimeWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "18:00", "18-21", "aa:00-21:00", "18:00-21:xx", "21:00-18:00", "10:00-10:30", "18:00-25:00", "1:00-2:00-3:00"} {
		_, err := ParseTimeWindow(in)
		assert.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidTimeWindow), in)
	}
}

func TestParseTimeWindowsStopsAtFirstError(t *testing.T) {
	_, err := ParseTimeWindows([]string{"09:00-10:00", "bad"})
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)

	windows, err := ParseTimeWindows(nil)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestFormatSlotTime(t *testing.T) {
	assert.Equal(t, "09:00-10:00", FormatSlotTime(9, 10))
	assert.Equal(t, "18:00-21:00", TimeWindow{StartHour: 18, EndHour: 21}.String())
}
