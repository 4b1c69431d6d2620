package model

// Course is a named academic offering and the sections it runs across
// semesters. Sections keep their source order. No two sections of the same
// course share both section code and semester code; the ingestion layer
// owns that invariant, lookups here rely on it.
type Course struct {
	Name     string     `json:"name"`
	Code     string     `json:"code"`
	Sections []*Section `json:"sections"`
}

// LookupSection returns the section matching both codes. The second return
// is false when the course has no such section.
func (c *Course) LookupSection(sectionCode string, semesterCode string) (*Section, bool) {
	for _, section := range c.Sections {
		if section.SectionCode == sectionCode && section.SemesterCode == semesterCode {
			return section, true
		}
	}
	return nil, false
}

// CompatibleSections returns the sections of this course that are in the
// same semester as other and do not conflict with it, preserving the
// course's section order. An empty result is normal, not an error.
func (c *Course) CompatibleSections(other *Section) []*Section {
	compatible := []*Section{}
	for _, section := range c.Sections {
		if section.SemesterCode == other.SemesterCode && !section.HasConflict(other) {
			compatible = append(compatible, section)
		}
	}
	return compatible
}
