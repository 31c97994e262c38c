package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeWindow parses "HH:MM-HH:MM". Only the hour component is kept, so
// "18:30-21:15" yields 18..21.
func ParseTimeWindow(s string) (TimeWindow, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return TimeWindow{}, fmt.Errorf("%w: %q", ErrInvalidTimeWindow, s)
	}

	start, err := parseHour(parts[0])
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeWindow, s, err)
	}
	end, err := parseHour(parts[1])
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeWindow, s, err)
	}
	if start >= end {
		return TimeWindow{}, fmt.Errorf("%w: %q: start must be before end", ErrInvalidTimeWindow, s)
	}

	return TimeWindow{StartHour: start, EndHour: end}, nil
}

func ParseTimeWindows(slots []string) ([]TimeWindow, error) {
	windows := make([]TimeWindow, 0, len(slots))
	for _, s := range slots {
		w, err := ParseTimeWindow(s)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func parseHour(part string) (int, error) {
	hm := strings.Split(strings.TrimSpace(part), ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", part)
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, err
	}
	if _, err := strconv.Atoi(hm[1]); err != nil {
		return 0, err
	}
	if h < 0 || h > 24 {
		return 0, fmt.Errorf("hour %d out of range", h)
	}
	return h, nil
}

// FormatSlotTime always renders whole hours, e.g. "09:00-10:00".
func FormatSlotTime(startHour, endHour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", startHour, endHour)
}

func (w TimeWindow) String() string {
	return FormatSlotTime(w.StartHour, w.EndHour)
}
