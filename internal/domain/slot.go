package domain

import (
	"fmt"
	"time"
)

// HourSlot represents one bookable hour on a date.
// Label and Enabled come from the turf API and are never derived locally.
type HourSlot struct {
	HourIndex int
	Label     string
	Enabled   bool
}

// IsValidHour reports whether h is a clock hour of the day grid
func IsValidHour(h int) bool {
	return h >= MinHour && h <= MaxHour
}

// FinalizedSlot is a validated contiguous run of hours
type FinalizedSlot struct {
	StartHour int
	Hours     []int
}

// IsZero returns true if no hours were finalized
func (s FinalizedSlot) IsZero() bool {
	return len(s.Hours) == 0
}

// EndHour returns the exclusive end boundary of the run.
// For a single hour this is StartHour+1; it is used for display only.
func (s FinalizedSlot) EndHour() int {
	if len(s.Hours) == 0 {
		return s.StartHour + 1
	}
	return s.Hours[len(s.Hours)-1] + 1
}

// Duration returns the number of booked hours
func (s FinalizedSlot) Duration() int {
	return len(s.Hours)
}

// DisplayRange formats the run like "2:00 PM to 4:00 PM"
func (s FinalizedSlot) DisplayRange() string {
	return fmt.Sprintf("%s to %s", HourLabel(s.StartHour), HourLabel(s.EndHour()))
}

// HourLabel formats a clock hour in 12h form; 24 is rendered as midnight
func HourLabel(h int) string {
	t := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(h) * time.Hour)
	return t.Format(HourFormat)
}

// AvailableDate is one entry of the date calendar
type AvailableDate struct {
	Date    string // YYYY-MM-DD, opaque token for the wizard
	Enabled bool
}

// DateCalendar groups available dates by month key
type DateCalendar map[string][]AvailableDate

// Lookup finds a date in the calendar
func (c DateCalendar) Lookup(date string) (AvailableDate, bool) {
	for _, dates := range c {
		for _, d := range dates {
			if d.Date == date {
				return d, true
			}
		}
	}
	return AvailableDate{}, false
}

// EnabledCount returns the number of dates a user can pick
func (c DateCalendar) EnabledCount() int {
	count := 0
	for _, dates := range c {
		for _, d := range dates {
			if d.Enabled {
				count++
			}
		}
	}
	return count
}
