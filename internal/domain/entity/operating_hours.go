package entity

import (
	"fmt"
	"time"
)

// OperatingHours is one weekday row of a business's schedule. Times are
// "HH:MM" 24h strings; BreakStart/BreakEnd are both set or both nil.
// The full week is replaced atomically (delete-all then insert-seven in one
// transaction) so a failed replace keeps the previous week intact.
type OperatingHours struct {
	ID         string
	BusinessID string
	DayOfWeek  int // 0=Sunday .. 6=Saturday, matching time.Weekday
	IsOpen     bool
	OpenTime   string
	CloseTime  string
	BreakStart *string
	BreakEnd   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks internal consistency of a single day row.
func (h *OperatingHours) Validate() error {
	if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
		return fmt.Errorf("day_of_week %d out of range", h.DayOfWeek)
	}
	if !h.IsOpen {
		return nil
	}
	open, err := parseClock(h.OpenTime)
	if err != nil {
		return fmt.Errorf("open_time: %w", err)
	}
	closeM, err := parseClock(h.CloseTime)
	if err != nil {
		return fmt.Errorf("close_time: %w", err)
	}
	if closeM <= open {
		return fmt.Errorf("close_time %q not after open_time %q", h.CloseTime, h.OpenTime)
	}
	if (h.BreakStart == nil) != (h.BreakEnd == nil) {
		return fmt.Errorf("break_start and break_end must be set together")
	}
	if h.BreakStart != nil {
		bs, err := parseClock(*h.BreakStart)
		if err != nil {
			return fmt.Errorf("break_start: %w", err)
		}
		be, err := parseClock(*h.BreakEnd)
		if err != nil {
			return fmt.Errorf("break_end: %w", err)
		}
		if be <= bs || bs < open || be > closeM {
			return fmt.Errorf("break window %q-%q outside opening hours", *h.BreakStart, *h.BreakEnd)
		}
	}
	return nil
}

// OpenStatus is the answer to "is this business open right now".
type OpenStatus struct {
	IsOpen     bool   `json:"isOpen"`
	Status     string `json:"status"`
	NextChange string `json:"nextChange,omitempty"` // "HH:MM" of the next state change today
}

// WeekSchedule is the seven-day schedule of one business.
type WeekSchedule []OperatingHours

// StatusAt evaluates the schedule at the given local time.
func (w WeekSchedule) StatusAt(t time.Time) OpenStatus {
	var day *OperatingHours
	for i := range w {
		if w[i].DayOfWeek == int(t.Weekday()) {
			day = &w[i]
			break
		}
	}
	if day == nil || !day.IsOpen {
		return OpenStatus{IsOpen: false, Status: "Closed today"}
	}

	now := t.Hour()*60 + t.Minute()
	open, err1 := parseClock(day.OpenTime)
	closeM, err2 := parseClock(day.CloseTime)
	if err1 != nil || err2 != nil {
		return OpenStatus{IsOpen: false, Status: "Closed today"}
	}

	switch {
	case now < open:
		return OpenStatus{
			IsOpen:     false,
			Status:     fmt.Sprintf("Closed (opens at %s)", day.OpenTime),
			NextChange: day.OpenTime,
		}
	case now >= closeM:
		return OpenStatus{IsOpen: false, Status: "Closed"}
	}

	if day.BreakStart != nil && day.BreakEnd != nil {
		bs, err1 := parseClock(*day.BreakStart)
		be, err2 := parseClock(*day.BreakEnd)
		if err1 == nil && err2 == nil {
			if now >= bs && now < be {
				return OpenStatus{
					IsOpen:     false,
					Status:     fmt.Sprintf("On break (returns at %s)", *day.BreakEnd),
					NextChange: *day.BreakEnd,
				}
			}
			if now < bs {
				return OpenStatus{IsOpen: true, Status: "Open", NextChange: *day.BreakStart}
			}
		}
	}
	return OpenStatus{IsOpen: true, Status: "Open", NextChange: day.CloseTime}
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}
