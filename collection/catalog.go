package collection

import (
	"github.com/tbaxter17/coursetable/data/model"
)

// Catalog is the set of courses available to build timetables from. It
// preserves insertion order for listings and keys lookups by course code.
// Once loaded a catalog is read only, so any number of timetables may
// share its courses and sections concurrently.
type Catalog struct {
	codes  []string
	byCode map[string]*model.Course
}

func NewCatalog() *Catalog {
	return &Catalog{byCode: map[string]*model.Course{}}
}

// Add registers a course, replacing any earlier course with the same code
// while keeping the original position.
func (c *Catalog) Add(course *model.Course) {
	if _, ok := c.byCode[course.Code]; !ok {
		c.codes = append(c.codes, course.Code)
	}
	c.byCode[course.Code] = course
}

// Get returns the course with the given code, false when absent.
func (c *Catalog) Get(code string) (*model.Course, bool) {
	course, ok := c.byCode[code]
	return course, ok
}

// Courses returns every course in insertion order.
func (c *Catalog) Courses() []*model.Course {
	courses := make([]*model.Course, 0, len(c.codes))
	for _, code := range c.codes {
		courses = append(courses, c.byCode[code])
	}
	return courses
}

func (c *Catalog) Len() int {
	return len(c.codes)
}
