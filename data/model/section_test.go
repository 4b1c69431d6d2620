package model

import "testing"

func makeSection(sectionCode string, semesterCode string, timeslots ...Timeslot) *Section {
	return &Section{
		SectionCode:  sectionCode,
		SemesterCode: semesterCode,
		Timeslots:    timeslots,
	}
}

func TestSectionDuration(t *testing.T) {
	section := makeSection("LEC0101", "20239",
		NewTimeslot(1, 10*60, 11*60),
		NewTimeslot(3, 9*60, 11*60),
	)
	if got := section.Duration(); got != 3.0 {
		t.Errorf("Duration() = %v, want 3.0", got)
	}
}

func TestSectionConflict(t *testing.T) {
	lecture := makeSection("LEC0101", "20239",
		NewTimeslot(1, 10*60, 11*60),
		NewTimeslot(3, 9*60, 11*60),
	)

	// only the Wednesday slot overlaps, one pair is enough
	overlapping := makeSection("TUT0201", "20239",
		NewTimeslot(2, 10*60, 11*60),
		NewTimeslot(3, 10*60, 12*60),
	)
	if !lecture.HasConflict(overlapping) {
		t.Error("expected conflict via the single overlapping pair")
	}
	if !overlapping.HasConflict(lecture) {
		t.Error("section conflict should be symmetric")
	}

	clear := makeSection("TUT0301", "20239",
		NewTimeslot(1, 11*60, 12*60),
		NewTimeslot(5, 9*60, 11*60),
	)
	if lecture.HasConflict(clear) {
		t.Error("sections with no overlapping pair should not conflict")
	}
}

func TestSectionIsLecture(t *testing.T) {
	if !makeSection("LEC0101", "20239").IsLecture() {
		t.Error("LEC section should be a lecture")
	}
	if makeSection("TUT0101", "20239").IsLecture() {
		t.Error("TUT section should not be a lecture")
	}
	if makeSection("PRA0101", "20239").IsLecture() {
		t.Error("PRA section should not be a lecture")
	}
}

func TestSectionSameIdentity(t *testing.T) {
	a := makeSection("LEC0101", "20239", NewTimeslot(1, 10*60, 11*60))
	b := makeSection("LEC0101", "20239", NewTimeslot(2, 10*60, 11*60))
	c := makeSection("LEC0101", "20241", NewTimeslot(1, 10*60, 11*60))

	if !a.SameIdentity(b) {
		t.Error("same code and semester should share identity")
	}
	if a.SameIdentity(c) {
		t.Error("different semesters should not share identity")
	}
}

func TestIsValidSemester(t *testing.T) {
	if !IsValidSemester("20239") || !IsValidSemester("20241") {
		t.Error("known semester codes should be valid")
	}
	if IsValidSemester("20229") {
		t.Error("unknown semester code should not be valid")
	}
}
