package servercatalog

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/tbaxter17/coursetable/collection"
	"github.com/tbaxter17/coursetable/data/model"
)

type catalogHandler struct {
	catalog *collection.Catalog
	logger  *slog.Logger
}

type courseListing struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Sections int    `json:"sections"`
}

func (h *catalogHandler) getCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	offset := ctx.Value(offsetKey).(int)
	limit := ctx.Value(limitKey).(int)

	courses := h.catalog.Courses()
	if offset > len(courses) {
		offset = len(courses)
	}
	end := offset + limit
	if end > len(courses) {
		end = len(courses)
	}

	listings := []courseListing{}
	for _, course := range courses[offset:end] {
		listings = append(listings, courseListing{
			Name:     course.Name,
			Code:     course.Code,
			Sections: len(course.Sections),
		})
	}

	coursesJSON, err := json.Marshal(listings)
	if err != nil {
		h.logger.Error("Could not marshal course listings", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(coursesJSON)
}

func (h *catalogHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	course := r.Context().Value(courseKey).(*model.Course)

	courseJSON, err := json.Marshal(course)
	if err != nil {
		h.logger.Error("Could not marshal course", "code", course.Code, "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(courseJSON)
}

// getCompatibleSections answers with the sections of the course that share
// the query section's semester and do not conflict with it. The query
// section is named by the section and semester query params and may belong
// to a different course than the one in the path.
func (h *catalogHandler) getCompatibleSections(w http.ResponseWriter, r *http.Request) {
	course := r.Context().Value(courseKey).(*model.Course)

	sectionCode := r.URL.Query().Get("section")
	semesterCode := r.URL.Query().Get("semester")
	againstCourseCode := r.URL.Query().Get("course")
	if sectionCode == "" || semesterCode == "" {
		http.Error(w, "Missing section or semester query param", http.StatusBadRequest)
		return
	}

	againstCourse := course
	if againstCourseCode != "" {
		other, ok := h.catalog.Get(againstCourseCode)
		if !ok {
			http.Error(w, http.StatusText(404), 404)
			return
		}
		againstCourse = other
	}
	section, ok := againstCourse.LookupSection(sectionCode, semesterCode)
	if !ok {
		http.Error(w, http.StatusText(404), 404)
		return
	}

	compatibleJSON, err := json.Marshal(course.CompatibleSections(section))
	if err != nil {
		h.logger.Error("Could not marshal compatible sections", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(compatibleJSON)
}
