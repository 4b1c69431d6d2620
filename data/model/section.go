package model

import "strings"

// Valid semester codes for the current catalogs.
var Semesters = []string{"20239", "20241"}

// IsValidSemester reports whether code is one of the known semester codes.
func IsValidSemester(code string) bool {
	for _, semester := range Semesters {
		if semester == code {
			return true
		}
	}
	return false
}

// Section is one scheduled offering of a course component. SectionCode is
// always 7 characters with a LEC, TUT, or PRA prefix (e.g. "LEC0101") and
// the timeslots keep the order they appeared in the source records.
//
// A section's own timeslots are allowed to overlap each other; callers of
// Duration that care about a meaningful total are responsible for only
// using sections without internal conflicts.
type Section struct {
	SectionCode  string     `json:"section_code"`
	SemesterCode string     `json:"semester_code"`
	Timeslots    []Timeslot `json:"timeslots"`
}

// Duration returns the combined length of all meeting timeslots in hours.
func (s *Section) Duration() float64 {
	var total float64
	for _, timeslot := range s.Timeslots {
		total += timeslot.Duration()
	}
	return total
}

// HasConflict reports whether any timeslot of this section overlaps any
// timeslot of the other section.
func (s *Section) HasConflict(other *Section) bool {
	for _, timeslot := range s.Timeslots {
		for _, otherTimeslot := range other.Timeslots {
			if timeslot.HasConflict(otherTimeslot) {
				return true
			}
		}
	}
	return false
}

// IsLecture reports whether this is a lecture section.
func (s *Section) IsLecture() bool {
	return strings.HasPrefix(s.SectionCode, "LEC")
}

// SameIdentity reports whether both sections share the natural key of
// section code plus semester code. Course construction guarantees the key
// is unique within a single course.
func (s *Section) SameIdentity(other *Section) bool {
	return s.SectionCode == other.SectionCode && s.SemesterCode == other.SemesterCode
}
