package servercatalog

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tbaxter17/coursetable/collection"
)

func PopulateCatalogRoutes(r *chi.Router, catalog *collection.Catalog, logger slog.Logger) {
	catalogHandler := catalogHandler{
		catalog: catalog,
		logger:  &logger,
	}

	(*r).Use(populatePagination)
	(*r).Get("/", catalogHandler.getCourses)
	(*r).Route("/{courseCode}", func(r chi.Router) {
		r.Use(catalogHandler.verifyCourse)
		r.Get("/", catalogHandler.getCourse)
		r.Get("/compatible", catalogHandler.getCompatibleSections)
	})
}

type catalogQueriesParam int

const (
	offsetKey catalogQueriesParam = iota
	limitKey
	courseKey
)

func populatePagination(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		offset := 0
		limit := 200
		queryOffset := r.URL.Query().Get("offset")
		if queryOffset != "" {
			newOffset, err := strconv.Atoi(queryOffset)
			if err != nil || newOffset < 0 {
				http.Error(w, "Invalid query offset param", http.StatusBadRequest)
				return
			}
			offset = newOffset
		}
		queryLimit := r.URL.Query().Get("limit")
		if queryLimit != "" {
			setLimit, err := strconv.Atoi(queryLimit)
			if err != nil || setLimit < 0 {
				http.Error(w, "Invalid query limit param", http.StatusBadRequest)
				return
			}
			limit = setLimit
		}
		ctx = context.WithValue(ctx, offsetKey, offset)
		ctx = context.WithValue(ctx, limitKey, limit)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// verifyCourse resolves the course path param once for the whole subtree.
func (h *catalogHandler) verifyCourse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		course, ok := h.catalog.Get(chi.URLParam(r, "courseCode"))
		if !ok {
			http.Error(w, http.StatusText(404), 404)
			return
		}
		ctx = context.WithValue(ctx, courseKey, course)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
