package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHour is returned for hours not in H:MM form.
	ErrInvalidHour = errors.New("store: invalid hour")
	// ErrInvalidSchedule is returned when a schedule event is malformed.
	ErrInvalidSchedule = errors.New("store: invalid schedule")
	// ErrInvalidUser is returned for empty user or friend names.
	ErrInvalidUser = errors.New("store: invalid user")
)

// Event is one entry of a daily schedule: the class or activity that starts
// at Hour in the building with short name Location.
type Event struct {
	Hour     string `json:"hour"`
	Location string `json:"location"`
	Desc     string `json:"desc"`
}

// Schedule lists a user's events in the order they happen.
type Schedule []Event

// ParseHour converts "H:MM" (24 hour clock) into minutes after midnight.
func ParseHour(hour string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hour), ":")
	if !ok || len(m) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, hour)
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, hour)
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, hour)
	}
	return hh*60 + mm, nil
}

// IndexAtHour returns the index of the first event starting at minute, or
// -1 if no event starts then. Events with malformed hours never match.
func (s Schedule) IndexAtHour(minute int) int {
	for i, e := range s {
		if m, err := ParseHour(e.Hour); err == nil && m == minute {
			return i
		}
	}
	return -1
}

// Validate checks every event has a well-formed hour and a location.
func (s Schedule) Validate() error {
	for i, e := range s {
		if _, err := ParseHour(e.Hour); err != nil {
			return fmt.Errorf("%w: event %d: %w", ErrInvalidSchedule, i, err)
		}
		if strings.TrimSpace(e.Location) == "" {
			return fmt.Errorf("%w: event %d: missing location", ErrInvalidSchedule, i)
		}
	}
	return nil
}
