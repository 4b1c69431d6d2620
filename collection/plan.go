package collection

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tbaxter17/coursetable/data/model"
)

// RawPlan is the on disk shape of a timetable request: a semester and the
// course/section pairs to select, in order.
type RawPlan struct {
	SemesterCode string         `json:"semester_code"`
	Selections   []RawSelection `json:"selections"`
}

type RawSelection struct {
	CourseCode  string `json:"course_code"`
	SectionCode string `json:"section_code"`
}

// LoadPlan reads a plan file.
func LoadPlan(path string) (*RawPlan, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read plan file %s: %w", path, err)
	}
	var plan RawPlan
	if err := json.Unmarshal(contents, &plan); err != nil {
		return nil, fmt.Errorf("could not parse plan file %s: %w", path, err)
	}
	return &plan, nil
}

// BuildTimetable assembles a timetable from the plan against the catalog.
// Selections that name an unknown course, or a section code the course does
// not run in the plan's semester, are reported as misses and skipped; they
// never abort the build. The returned timetable may still be invalid, that
// is for the caller to check with IsValid.
func BuildTimetable(catalog *Catalog, plan *RawPlan) (*model.Timetable, []string) {
	timetable := model.NewTimetable(plan.SemesterCode)
	misses := []string{}
	for _, selection := range plan.Selections {
		course, ok := catalog.Get(selection.CourseCode)
		if !ok {
			misses = append(misses, fmt.Sprintf(
				"no course %s in the catalog", selection.CourseCode))
			continue
		}
		if !timetable.AddSectionByCode(course, selection.SectionCode) {
			misses = append(misses, fmt.Sprintf(
				"course %s has no section %s in semester %s",
				selection.CourseCode, selection.SectionCode, plan.SemesterCode))
		}
	}
	return timetable, misses
}
