package collection

import (
	"context"
	"path/filepath"
	"testing"
)

func TestLoadCourse(t *testing.T) {
	course, err := LoadCourse(filepath.Join("testdata", "course-csc148.json"))
	if err != nil {
		t.Fatal(err)
	}

	if course.Code != "CSC148H1" {
		t.Errorf("course code = %s, want CSC148H1", course.Code)
	}
	if course.Name != "Introduction to Computer Science" {
		t.Errorf("course name = %q", course.Name)
	}
	if len(course.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(course.Sections))
	}

	lecture := course.Sections[0]
	if lecture.SectionCode != "LEC0101" || lecture.SemesterCode != "20239" {
		t.Errorf("first section = %s/%s", lecture.SectionCode, lecture.SemesterCode)
	}
	if len(lecture.Timeslots) != 2 {
		t.Fatalf("got %d timeslots, want 2", len(lecture.Timeslots))
	}
	// 36000000ms and 39600000ms are 10:00 and 11:00
	first := lecture.Timeslots[0]
	if first.Day != 1 || first.StartMinutes != 10*60 || first.EndMinutes != 11*60 {
		t.Errorf("first timeslot = %v", first)
	}
	second := lecture.Timeslots[1]
	if second.Day != 3 || second.StartMinutes != 9*60 || second.EndMinutes != 11*60 {
		t.Errorf("second timeslot = %v", second)
	}
	if lecture.Duration() != 3.0 {
		t.Errorf("lecture duration = %v, want 3.0", lecture.Duration())
	}
}

func TestLoadCourses(t *testing.T) {
	catalog, err := LoadCourses(filepath.Join("testdata", "courses-mat.json"))
	if err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("got %d courses, want 2", catalog.Len())
	}

	courses := catalog.Courses()
	if courses[0].Code != "MAT137Y1" || courses[1].Code != "CSC108H1" {
		t.Errorf("catalog order = %s, %s", courses[0].Code, courses[1].Code)
	}
	if _, ok := catalog.Get("MAT137Y1"); !ok {
		t.Error("expected MAT137Y1 in the catalog")
	}
	if _, ok := catalog.Get("PHY151H1"); ok {
		t.Error("did not expect PHY151H1 in the catalog")
	}
}

func TestLoadDir(t *testing.T) {
	catalog, err := LoadDir(context.Background(), "testdata")
	if err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 3 {
		t.Fatalf("got %d courses, want 3", catalog.Len())
	}

	// files merge in name order so the catalog order is stable
	courses := catalog.Courses()
	wantCodes := []string{"CSC148H1", "MAT137Y1", "CSC108H1"}
	for i, want := range wantCodes {
		if courses[i].Code != want {
			t.Errorf("catalog[%d] = %s, want %s", i, courses[i].Code, want)
		}
	}
}

func TestBuildTimetable(t *testing.T) {
	catalog, err := LoadDir(context.Background(), "testdata")
	if err != nil {
		t.Fatal(err)
	}

	plan := &RawPlan{
		SemesterCode: "20239",
		Selections: []RawSelection{
			{CourseCode: "CSC148H1", SectionCode: "LEC0101"},
			{CourseCode: "CSC148H1", SectionCode: "TUT0101"},
			{CourseCode: "MAT137Y1", SectionCode: "LEC0101"},
			{CourseCode: "MAT137Y1", SectionCode: "TUT0201"}, // wrong semester
			{CourseCode: "PHY151H1", SectionCode: "LEC0101"}, // unknown course
		},
	}
	timetable, misses := BuildTimetable(catalog, plan)

	if len(misses) != 2 {
		t.Errorf("got %d misses, want 2: %v", len(misses), misses)
	}
	if len(timetable.AllSections()) != 3 {
		t.Errorf("got %d sections, want 3", len(timetable.AllSections()))
	}
	if !timetable.IsValid() {
		t.Errorf("timetable should be valid: %v", timetable.Violations())
	}
}
