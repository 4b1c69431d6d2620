package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tbaxter17/coursetable/data/model"
)

// LoadCourse reads a file containing a single course document.
func LoadCourse(path string) (*model.Course, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read course file %s: %w", path, err)
	}
	var raw RawCourse
	if err := json.Unmarshal(contents, &raw); err != nil {
		return nil, fmt.Errorf("could not parse course file %s: %w", path, err)
	}
	return BuildCourse(raw), nil
}

// LoadCourses reads a file containing a list of course documents and
// returns them as a catalog in document order.
func LoadCourses(path string) (*Catalog, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read courses file %s: %w", path, err)
	}
	var raws []RawCourse
	if err := json.Unmarshal(contents, &raws); err != nil {
		return nil, fmt.Errorf("could not parse courses file %s: %w", path, err)
	}

	catalog := NewCatalog()
	for _, raw := range raws {
		catalog.Add(BuildCourse(raw))
	}
	return catalog, nil
}

// LoadDir loads every .json course file in dir concurrently. Each file may
// hold either a single course document or a list of them. Files are merged
// into the catalog in name order so repeated loads of the same directory
// produce the same catalog.
func LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	logger := log.WithFields(log.Fields{
		"job": "loadCatalog",
		"dir": dir,
	})

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	perFile := make([][]*model.Course, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			courses, err := loadAny(path)
			if err != nil {
				return err
			}
			perFile[i] = courses
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	catalog := NewCatalog()
	for _, courses := range perFile {
		for _, course := range courses {
			catalog.Add(course)
		}
	}
	logger.Info("Loaded catalog with ", catalog.Len(), " courses from ", len(paths), " files")
	return catalog, nil
}

// loadAny parses a file as a course list first and falls back to a single
// course document.
func loadAny(path string) ([]*model.Course, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read course file %s: %w", path, err)
	}

	var raws []RawCourse
	if err := json.Unmarshal(contents, &raws); err == nil {
		courses := make([]*model.Course, 0, len(raws))
		for _, raw := range raws {
			courses = append(courses, BuildCourse(raw))
		}
		return courses, nil
	}

	var raw RawCourse
	if err := json.Unmarshal(contents, &raw); err != nil {
		return nil, fmt.Errorf("could not parse course file %s: %w", path, err)
	}
	return []*model.Course{BuildCourse(raw)}, nil
}
