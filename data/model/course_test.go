package model

import "testing"

func makeCourse() *Course {
	return &Course{
		Name: "Introduction to Computer Science",
		Code: "CSC148H1",
		Sections: []*Section{
			makeSection("LEC0101", "20239",
				NewTimeslot(1, 10*60, 11*60),
				NewTimeslot(3, 9*60, 11*60)),
			makeSection("LEC0201", "20239",
				NewTimeslot(2, 13*60, 15*60)),
			makeSection("TUT0101", "20239",
				NewTimeslot(1, 11*60, 12*60)),
			makeSection("LEC0101", "20241",
				NewTimeslot(1, 10*60, 11*60)),
		},
	}
}

func TestLookupSection(t *testing.T) {
	course := makeCourse()

	section, ok := course.LookupSection("LEC0101", "20239")
	if !ok {
		t.Fatal("expected to find LEC0101 in 20239")
	}
	if section.SectionCode != "LEC0101" || section.SemesterCode != "20239" {
		t.Errorf("found wrong section %s/%s", section.SectionCode, section.SemesterCode)
	}

	if _, ok := course.LookupSection("LEC0301", "20239"); ok {
		t.Error("lookup of a missing section code should miss")
	}
	if _, ok := course.LookupSection("TUT0101", "20241"); ok {
		t.Error("lookup in the wrong semester should miss")
	}
}

func TestCompatibleSections(t *testing.T) {
	course := makeCourse()

	// overlaps LEC0101's Monday slot exactly and sits back to back with
	// TUT0101, which starts right as it ends
	other := makeSection("LEC0301", "20239", NewTimeslot(1, 10*60, 11*60))

	compatible := course.CompatibleSections(other)
	wantCodes := []string{"LEC0201", "TUT0101"}
	if len(compatible) != len(wantCodes) {
		t.Fatalf("got %d compatible sections, want %d", len(compatible), len(wantCodes))
	}
	for i, section := range compatible {
		if section.SectionCode != wantCodes[i] {
			t.Errorf("compatible[%d] = %s, want %s", i, section.SectionCode, wantCodes[i])
		}
		if section.SemesterCode != other.SemesterCode {
			t.Errorf("compatible[%d] is in semester %s, want %s",
				i, section.SemesterCode, other.SemesterCode)
		}
		if section.HasConflict(other) {
			t.Errorf("compatible[%d] conflicts with the query section", i)
		}
	}
}

func TestCompatibleSectionsEmpty(t *testing.T) {
	course := makeCourse()

	// no sections exist in this semester at all
	other := makeSection("LEC9901", "20229", NewTimeslot(1, 10*60, 11*60))
	if compatible := course.CompatibleSections(other); len(compatible) != 0 {
		t.Errorf("got %d compatible sections, want none", len(compatible))
	}
}
