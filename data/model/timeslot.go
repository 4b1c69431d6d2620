package model

import "fmt"

var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// Timeslot is one weekly recurring meeting window. Times are stored as
// minutes since midnight which keeps the math integer only (the upstream
// feed never carries sub-minute precision).
//
// Invariants (held by the ingestion layer, not rechecked here):
//   - 1 <= Day <= 5 (Monday through Friday)
//   - 0 <= StartMinutes < EndMinutes
type Timeslot struct {
	Day          int `json:"day"`
	StartMinutes int `json:"start_minutes"`
	EndMinutes   int `json:"end_minutes"`
}

func NewTimeslot(day int, startMinutes int, endMinutes int) Timeslot {
	return Timeslot{
		Day:          day,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
	}
}

// Duration returns the length of this timeslot in hours. No rounding.
func (t Timeslot) Duration() float64 {
	return float64(t.EndMinutes-t.StartMinutes) / 60
}

// HasConflict reports whether the two timeslots overlap. The comparison is
// half open so back to back slots (one ends exactly when the other starts)
// do not conflict. Symmetric.
func (t Timeslot) HasConflict(other Timeslot) bool {
	if t.Day != other.Day {
		return false
	}
	return !(t.EndMinutes <= other.StartMinutes || t.StartMinutes >= other.EndMinutes)
}

func (t Timeslot) String() string {
	day := "???"
	if t.Day >= 1 && t.Day <= len(dayNames) {
		day = dayNames[t.Day-1]
	}
	return fmt.Sprintf("%s %02d:%02d-%02d:%02d",
		day,
		t.StartMinutes/60, t.StartMinutes%60,
		t.EndMinutes/60, t.EndMinutes%60,
	)
}
