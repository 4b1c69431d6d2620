package model

import "testing"

func TestTimeslotDuration(t *testing.T) {
	cases := []struct {
		name     string
		timeslot Timeslot
		want     float64
	}{
		{"one hour", NewTimeslot(5, 9*60, 10*60), 1.0},
		{"almost full day", NewTimeslot(1, 0, 23*60+15), 23.25},
		{"half hour", NewTimeslot(2, 10*60, 10*60+30), 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.timeslot.Duration(); got != c.want {
				t.Errorf("Duration() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestTimeslotConflict(t *testing.T) {
	cases := []struct {
		name string
		a, b Timeslot
		want bool
	}{
		{
			"different days same times",
			NewTimeslot(1, 9*60, 11*60),
			NewTimeslot(2, 9*60, 11*60),
			false,
		},
		{
			"back to back",
			NewTimeslot(1, 9*60, 11*60),
			NewTimeslot(1, 11*60, 12*60),
			false,
		},
		{
			"fully contained",
			NewTimeslot(3, 9*60, 11*60),
			NewTimeslot(3, 10*60, 10*60+30),
			true,
		},
		{
			"partial overlap",
			NewTimeslot(1, 1*60, 4*60),
			NewTimeslot(1, 3*60, 6*60),
			true,
		},
		{
			"identical intervals",
			NewTimeslot(4, 13*60, 14*60),
			NewTimeslot(4, 13*60, 14*60),
			true,
		},
		{
			"disjoint with gap",
			NewTimeslot(2, 9*60, 10*60),
			NewTimeslot(2, 12*60, 13*60),
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.HasConflict(c.b); got != c.want {
				t.Errorf("HasConflict() = %v, want %v", got, c.want)
			}
			// conflict is symmetric
			if got := c.b.HasConflict(c.a); got != c.want {
				t.Errorf("reversed HasConflict() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestTimeslotString(t *testing.T) {
	timeslot := NewTimeslot(1, 10*60, 12*60+30)
	want := "Mon 10:00-12:30"
	if got := timeslot.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
