package slate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Viewing window names, in priority order.
const (
	WindowEarlyMorning = "Early Morning"
	WindowBreakfast    = "Breakfast"
)

// Default window boundaries: evening tipoffs land between roughly
// 05:00 and 10:30 on the viewer's clock.
const (
	defaultEarlyMorningStart = "05:00"
	defaultEarlyMorningEnd   = "07:00"
	defaultBreakfastStart    = "07:30"
	defaultBreakfastEnd      = "10:30"
)

// TimeOfDay is a wall-clock minute within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTimeOfDay, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTimeOfDay, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTimeOfDay, s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Minutes returns the minute offset from midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Window is a closed local time-of-day range games can fall into.
type Window struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether a tipoff's wall clock falls inside the
// closed range, boundaries included.
func (w Window) Contains(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	return m >= w.Start.Minutes() && m <= w.End.Minutes()
}

// Overlaps reports whether two closed ranges share any minute.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Minutes() <= o.End.Minutes() && o.Start.Minutes() <= w.End.Minutes()
}

// DefaultWindows returns the two viewing windows in priority order.
func DefaultWindows() []Window {
	return []Window{
		mustWindow(WindowEarlyMorning, defaultEarlyMorningStart, defaultEarlyMorningEnd),
		mustWindow(WindowBreakfast, defaultBreakfastStart, defaultBreakfastEnd),
	}
}

func mustWindow(name, start, end string) Window {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	return Window{Name: name, Start: s, End: e}
}

// ValidateWindows rejects window sets the selector refuses to run
// with: inverted ranges and overlapping windows would both assign
// games ambiguously.
func ValidateWindows(windows []Window) error {
	if len(windows) == 0 {
		return ErrNoWindows
	}
	for _, w := range windows {
		if w.Start.Minutes() > w.End.Minutes() {
			return fmt.Errorf("%w: %s %s-%s", ErrWindowInverted, w.Name, w.Start, w.End)
		}
	}
	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if windows[i].Overlaps(windows[j]) {
				return fmt.Errorf("%w: %s and %s", ErrWindowsOverlap, windows[i].Name, windows[j].Name)
			}
		}
	}
	return nil
}
