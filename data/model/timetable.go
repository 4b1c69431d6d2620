package model

import "fmt"

// CourseSelection pairs a course with the sections of it chosen so far.
type CourseSelection struct {
	Course   *Course    `json:"course"`
	Sections []*Section `json:"sections"`
}

// Timetable is a semester scoped selection of sections. Courses and
// sections are shared references into an externally owned catalog; the
// timetable never mutates them, it only grows its own selection list.
//
// Selections are kept as an ordered association list keyed by course code
// rather than a map keyed by the course struct itself.
type Timetable struct {
	SemesterCode string
	selections   []*CourseSelection
}

// NewTimetable returns an empty timetable for the given semester. An empty
// timetable is vacuously valid.
func NewTimetable(semesterCode string) *Timetable {
	return &Timetable{SemesterCode: semesterCode}
}

// AddSectionByCode looks up sectionCode on the course in this timetable's
// semester and appends it to the course's selection, creating the entry on
// the first add. Returns false and changes nothing when the course has no
// matching section. No validity checking happens here: a timetable may be
// freely built into an invalid state and inspected later with IsValid.
func (t *Timetable) AddSectionByCode(course *Course, sectionCode string) bool {
	section, ok := course.LookupSection(sectionCode, t.SemesterCode)
	if !ok {
		return false
	}

	for _, selection := range t.selections {
		if selection.Course.Code == course.Code {
			selection.Sections = append(selection.Sections, section)
			return true
		}
	}
	t.selections = append(t.selections, &CourseSelection{
		Course:   course,
		Sections: []*Section{section},
	})
	return true
}

// Selections returns the per course selections in the order courses were
// first added. The returned slice is shared; callers must not modify it.
func (t *Timetable) Selections() []*CourseSelection {
	return t.selections
}

// AllSections flattens the selection lists into one slice. Callers must
// not depend on the ordering.
func (t *Timetable) AllSections() []*Section {
	sections := []*Section{}
	for _, selection := range t.selections {
		sections = append(sections, selection.Sections...)
	}
	return sections
}

// IsValid reports whether the timetable satisfies all three rules:
//
//  1. every selected section is in the timetable's semester
//  2. no two distinct selected sections conflict, across all courses
//  3. every selected course has exactly one lecture section
//
// Validity is recomputed from the current contents on every call, never
// cached.
func (t *Timetable) IsValid() bool {
	return t.semestersConsistent() && t.conflictFree() && t.lectureCountsOk()
}

// Violations returns a human readable description of every broken rule,
// empty exactly when IsValid returns true.
func (t *Timetable) Violations() []string {
	violations := []string{}

	for _, section := range t.AllSections() {
		if section.SemesterCode != t.SemesterCode {
			violations = append(violations, fmt.Sprintf(
				"section %s is in semester %s, timetable is for %s",
				section.SectionCode, section.SemesterCode, t.SemesterCode))
		}
	}

	sections := t.AllSections()
	for i, section := range sections {
		for _, other := range sections[i+1:] {
			if section.SameIdentity(other) {
				continue
			}
			if section.HasConflict(other) {
				violations = append(violations, fmt.Sprintf(
					"sections %s and %s have overlapping timeslots",
					section.SectionCode, other.SectionCode))
			}
		}
	}

	for _, selection := range t.selections {
		lectures := countLectures(selection.Sections)
		if lectures != 1 {
			violations = append(violations, fmt.Sprintf(
				"course %s has %d lecture sections, needs exactly 1",
				selection.Course.Code, lectures))
		}
	}

	return violations
}

func (t *Timetable) semestersConsistent() bool {
	for _, section := range t.AllSections() {
		if section.SemesterCode != t.SemesterCode {
			return false
		}
	}
	return true
}

// conflictFree checks every distinct pair of selected sections, including
// pairs from different courses. Repeated selections of the same section
// (same natural key) are treated as one entity, not a self conflict.
func (t *Timetable) conflictFree() bool {
	sections := t.AllSections()
	for i, section := range sections {
		for _, other := range sections[i+1:] {
			if section.SameIdentity(other) {
				continue
			}
			if section.HasConflict(other) {
				return false
			}
		}
	}
	return true
}

func (t *Timetable) lectureCountsOk() bool {
	for _, selection := range t.selections {
		if countLectures(selection.Sections) != 1 {
			return false
		}
	}
	return true
}

func countLectures(sections []*Section) int {
	count := 0
	for _, section := range sections {
		if section.IsLecture() {
			count++
		}
	}
	return count
}
