package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/tbaxter17/coursetable/collection"
	logginghelpers "github.com/tbaxter17/coursetable/data/logging-helpers"
	"github.com/tbaxter17/coursetable/internal/projectpath"
	servercatalog "github.com/tbaxter17/coursetable/server/catalog"
	serverplan "github.com/tbaxter17/coursetable/server/plan"
)

func init() {
	// a .env at the project root is optional, env vars win either way
	_ = godotenv.Load(filepath.Join(projectpath.Root, ".env"))
}

// Serve loads the catalog and runs the api until the process exits.
func Serve() {
	handler := logginghelpers.NewMultiHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	if logPath := os.Getenv("COURSETABLE_LOGFILE"); logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Warn("Cannot open log file", "path", logPath, "err", err)
		} else {
			handler.AddHandler(slog.NewJSONHandler(logFile, nil))
		}
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	catalogDir := os.Getenv("COURSETABLE_CATALOG")
	if catalogDir == "" {
		catalogDir = filepath.Join(projectpath.Root, "catalog")
	}
	logger.Log(context.Background(), logginghelpers.LevelCatalogIO,
		"Loading catalog", "dir", catalogDir)
	catalog, err := collection.LoadDir(context.Background(), catalogDir)
	if err != nil {
		slog.Error("Fatal cannot load course catalog", "err", err)
		return
	}
	slog.Info("Catalog ready", "courses", catalog.Len())

	r := chi.NewRouter()
	cors := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum age for preflight requests
	})
	r.Use(cors.Handler)
	r.Use(middleware.Logger)
	r.Use(rateLimit())

	r.Route("/courses", func(r chi.Router) {
		servercatalog.PopulateCatalogRoutes(&r, catalog, *logger)
	})
	r.Route("/plans", func(r chi.Router) {
		serverplan.PopulatePlanRoutes(&r, catalog, *logger)
	})

	port := 3000
	if fromEnv := os.Getenv("COURSETABLE_PORT"); fromEnv != "" {
		parsed, err := strconv.Atoi(fromEnv)
		if err != nil {
			slog.Error("Invalid COURSETABLE_PORT", "value", fromEnv)
			return
		}
		port = parsed
	}
	slog.Info("Running server on", "port", port)
	http.ListenAndServe(fmt.Sprintf(":%d", port), r)
}
