package serverplan

import (
	"log/slog"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tbaxter17/coursetable/collection"
	"github.com/tbaxter17/coursetable/data/model"
)

func PopulatePlanRoutes(r *chi.Router, catalog *collection.Catalog, logger slog.Logger) {
	planHandler := planHandler{
		catalog: catalog,
		logger:  &logger,
		plans:   map[uuid.UUID]*model.Timetable{},
	}

	(*r).Post("/", planHandler.createPlan)
	(*r).Route("/{planID}", func(r chi.Router) {
		r.Use(planHandler.verifyPlan)
		r.Get("/", planHandler.getPlan)
		r.Post("/sections", planHandler.addSection)
		r.Get("/validity", planHandler.getValidity)
		r.Get("/export", planHandler.exportPlan)
	})
}

// planHandler keeps the in progress timetables, keyed by the id handed out
// at creation. Each timetable is only mutated while holding mu; the catalog
// it references is read only.
type planHandler struct {
	catalog *collection.Catalog
	logger  *slog.Logger
	mu      sync.RWMutex
	plans   map[uuid.UUID]*model.Timetable
}
