package collection

import (
	"github.com/tbaxter17/coursetable/data/model"
)

// Raw record types matching the upstream JSON feed. A course document nests
// its section documents; each meeting time carries its day and its start
// and end as milliseconds since midnight.

type RawCourse struct {
	Name     string       `json:"name"`
	Code     string       `json:"code"`
	Sections []RawSection `json:"sections"`
}

type RawSection struct {
	Name          string            `json:"name"`
	DeliveryModes []RawDeliveryMode `json:"deliveryModes"`
	MeetingTimes  []RawMeetingTime  `json:"meetingTimes"`
}

type RawDeliveryMode struct {
	Session string `json:"session"`
}

type RawMeetingTime struct {
	Start RawMeetingPoint `json:"start"`
	End   RawMeetingPoint `json:"end"`
}

type RawMeetingPoint struct {
	Day         int `json:"day"`
	MillisOfDay int `json:"millisofday"`
}

// minutesOfDay converts milliseconds since midnight to whole minutes. The
// feed guarantees exact minute boundaries so integer division drops nothing;
// it must never round up.
func minutesOfDay(millis int) int {
	return millis / 1000 / 60
}

// BuildSection converts one raw section document, keeping the meeting times
// in source order. The section's semester comes from its first delivery
// mode, the only one the feed populates.
func BuildSection(raw RawSection) *model.Section {
	section := &model.Section{
		SectionCode: raw.Name,
	}
	if len(raw.DeliveryModes) > 0 {
		section.SemesterCode = raw.DeliveryModes[0].Session
	}
	for _, meeting := range raw.MeetingTimes {
		section.Timeslots = append(section.Timeslots, model.NewTimeslot(
			meeting.Start.Day,
			minutesOfDay(meeting.Start.MillisOfDay),
			minutesOfDay(meeting.End.MillisOfDay),
		))
	}
	return section
}

// BuildCourse converts one raw course document and all of its sections.
func BuildCourse(raw RawCourse) *model.Course {
	course := &model.Course{
		Name: raw.Name,
		Code: raw.Code,
	}
	for _, rawSection := range raw.Sections {
		course.Sections = append(course.Sections, BuildSection(rawSection))
	}
	return course
}
