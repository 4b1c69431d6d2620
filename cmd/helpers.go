package cmd

import (
	"context"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tbaxter17/coursetable/collection"
	"github.com/tbaxter17/coursetable/internal/projectpath"
)

// resolveCatalogDir prefers the --catalog flag, then the env var, then the
// catalog directory at the project root.
func resolveCatalogDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("catalog")
	if dir != "" {
		return dir
	}
	if fromEnv := os.Getenv("COURSETABLE_CATALOG"); fromEnv != "" {
		return fromEnv
	}
	return filepath.Join(projectpath.Root, "catalog")
}

func loadCatalog(cmd *cobra.Command, logger *log.Entry) (*collection.Catalog, error) {
	dir := resolveCatalogDir(cmd)
	catalog, err := collection.LoadDir(context.Background(), dir)
	if err != nil {
		logger.Error("Could not load catalog ", err)
		return nil, err
	}
	return catalog, nil
}
