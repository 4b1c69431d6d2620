package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/tbaxter17/coursetable/data/model"
)

// TimetableCSVRow is one meeting of one selected section.
type TimetableCSVRow struct {
	CourseCode  string  `csv:"course_code"`
	CourseName  string  `csv:"course_name"`
	SectionCode string  `csv:"section_code"`
	Semester    string  `csv:"semester"`
	Day         int     `csv:"day"`
	Start       string  `csv:"start"`
	End         string  `csv:"end"`
	Hours       float64 `csv:"hours"`
}

func flattenTimetable(timetable *model.Timetable) []TimetableCSVRow {
	rows := []TimetableCSVRow{}
	for _, selection := range timetable.Selections() {
		for _, section := range selection.Sections {
			for _, timeslot := range section.Timeslots {
				rows = append(rows, TimetableCSVRow{
					CourseCode:  selection.Course.Code,
					CourseName:  selection.Course.Name,
					SectionCode: section.SectionCode,
					Semester:    section.SemesterCode,
					Day:         timeslot.Day,
					Start:       clock(timeslot.StartMinutes),
					End:         clock(timeslot.EndMinutes),
					Hours:       timeslot.Duration(),
				})
			}
		}
	}
	return rows
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ExportTimetable writes the timetable to the CSV file at path, replacing
// any existing file.
func ExportTimetable(timetable *model.Timetable, path string) error {
	rows := flattenTimetable(timetable)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create csv file %s: %w", path, err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("could not write csv file %s: %w", path, err)
	}
	return nil
}

// ExportTimetableString renders the timetable as CSV in memory, used by the
// plan export endpoint.
func ExportTimetableString(timetable *model.Timetable) (string, error) {
	rows := flattenTimetable(timetable)
	return gocsv.MarshalString(&rows)
}
