package serverplan

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logginghelpers "github.com/tbaxter17/coursetable/data/logging-helpers"
	"github.com/tbaxter17/coursetable/data/model"
	"github.com/tbaxter17/coursetable/internal/csvio"
)

type planParam int

const planKey planParam = iota

type createPlanRequest struct {
	SemesterCode string `json:"semester_code"`
}

type createPlanResponse struct {
	ID           string `json:"id"`
	SemesterCode string `json:"semester_code"`
}

type addSectionRequest struct {
	CourseCode  string `json:"course_code"`
	SectionCode string `json:"section_code"`
}

type planResponse struct {
	SemesterCode string                   `json:"semester_code"`
	Selections   []*model.CourseSelection `json:"selections"`
}

type validityResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

func (h *planHandler) createPlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid plan request body", http.StatusBadRequest)
		return
	}
	if !model.IsValidSemester(req.SemesterCode) {
		http.Error(w, "Unknown semester code", http.StatusBadRequest)
		return
	}

	id := uuid.New()
	h.mu.Lock()
	h.plans[id] = model.NewTimetable(req.SemesterCode)
	h.mu.Unlock()
	h.logger.Info("Created plan", "plan", id, "semester", req.SemesterCode)

	respJSON, err := json.Marshal(createPlanResponse{
		ID:           id.String(),
		SemesterCode: req.SemesterCode,
	})
	if err != nil {
		h.logger.Error("Could not marshal plan response", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(respJSON)
}

// verifyPlan resolves the plan path param once for the whole subtree.
func (h *planHandler) verifyPlan(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := uuid.Parse(chi.URLParam(r, "planID"))
		if err != nil {
			http.Error(w, http.StatusText(404), 404)
			return
		}
		h.mu.RLock()
		timetable, ok := h.plans[id]
		h.mu.RUnlock()
		if !ok {
			http.Error(w, http.StatusText(404), 404)
			return
		}
		ctx = context.WithValue(ctx, planKey, timetable)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *planHandler) getPlan(w http.ResponseWriter, r *http.Request) {
	timetable := r.Context().Value(planKey).(*model.Timetable)

	h.mu.RLock()
	resp := planResponse{
		SemesterCode: timetable.SemesterCode,
		Selections:   timetable.Selections(),
	}
	respJSON, err := json.Marshal(resp)
	h.mu.RUnlock()
	if err != nil {
		h.logger.Error("Could not marshal plan", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(respJSON)
}

// addSection adds a section to the plan. A section code the course does not
// run in the plan's semester is a plain 404, the plan is left untouched. No
// validity checking happens here, an invalid plan is a perfectly buildable
// state that the validity endpoint reports on.
func (h *planHandler) addSection(w http.ResponseWriter, r *http.Request) {
	timetable := r.Context().Value(planKey).(*model.Timetable)

	var req addSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid section request body", http.StatusBadRequest)
		return
	}
	course, ok := h.catalog.Get(req.CourseCode)
	if !ok {
		http.Error(w, http.StatusText(404), 404)
		return
	}

	h.mu.Lock()
	added := timetable.AddSectionByCode(course, req.SectionCode)
	h.mu.Unlock()
	if !added {
		http.Error(w, http.StatusText(404), 404)
		return
	}
	h.logger.Info("Added section to plan",
		"course", req.CourseCode, "section", req.SectionCode)
	w.WriteHeader(http.StatusNoContent)
}

func (h *planHandler) getValidity(w http.ResponseWriter, r *http.Request) {
	timetable := r.Context().Value(planKey).(*model.Timetable)

	h.mu.RLock()
	violations := timetable.Violations()
	h.mu.RUnlock()

	respJSON, err := json.Marshal(validityResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
	if err != nil {
		h.logger.Error("Could not marshal validity response", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(respJSON)
}

func (h *planHandler) exportPlan(w http.ResponseWriter, r *http.Request) {
	timetable := r.Context().Value(planKey).(*model.Timetable)

	h.mu.RLock()
	csv, err := csvio.ExportTimetableString(timetable)
	h.mu.RUnlock()
	if err != nil {
		h.logger.Log(r.Context(), logginghelpers.LevelBrokenStore,
			"Could not render plan csv", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=timetable.csv")
	w.Write([]byte(csv))
}
