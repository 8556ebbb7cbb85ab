// Fixture catalog for constrained Delaunay triangulation tests.
//
// Each fixture is a JSON file naming a point set and the edges that must
// survive triangulation unmodified. This package walks a fixtures directory,
// normalizes every file into an immutable TestCase, and exposes the small
// geometry helpers (geom) that harnesses and visualizers share. It never runs
// a triangulation itself; the algorithm under test is a separate concern fed
// by these catalogs.
package fixtures

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configure one catalog load. The zero value loads every clean
// fixture with no deduplication and no diagnostics.
type Options struct {
	// AllowErrors keeps fixtures whose declared error field is set. By
	// default those are filtered out, since they exist to make the algorithm
	// under test fail.
	AllowErrors bool

	// Dedupe drops exact duplicate points from each fixture. Edge indices
	// are not remapped; see build.
	Dedupe bool

	// Log receives dedupe diagnostics. Nil disables them.
	Log *log.Logger
}

// Load walks the fixture tree rooted at root and parses every file in it.
// The result is unordered; nothing is cached between calls. Any unreadable
// file or malformed fixture aborts the whole load — fixtures are trusted and
// static, so a partial catalog only hides problems.
func Load(root string, opts Options) ([]*TestCase, error) {
	paths, err := collectFiles(root)
	if err != nil {
		return nil, err
	}

	cases := make([]*TestCase, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		name, err := relativeName(root, path)
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		tc, err := build(data, path, name, opts.Dedupe, opts.Log)
		if err != nil {
			return nil, err
		}
		if tc.ExpectsError() && !opts.AllowErrors {
			continue
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

// collectFiles returns every regular file under root. Symlinks and other
// special entries are skipped rather than followed; a fixture tree has no
// business containing them.
func collectFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, &ReadError{Path: root, Err: err}
	}
	return paths, nil
}

// relativeName derives a fixture's Name: its path relative to the catalog
// root, separator-normalized to forward slashes so names compare equal across
// platforms.
func relativeName(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// Find returns the first case whose Name contains substr, or nil when no
// name matches. Substring matching keeps harness lookups short: "square" is
// enough to pull "simple/square.json" out of a catalog.
func Find(cases []*TestCase, substr string) *TestCase {
	for _, tc := range cases {
		if strings.Contains(tc.Name, substr) {
			return tc
		}
	}
	return nil
}
