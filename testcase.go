package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/cdtkit/fixtures/geom"
)

// TestCase is one triangulation fixture, built once from a JSON file and
// never mutated afterward.
type TestCase struct {
	// Points is the vertex index space referenced by Edges. Order matters.
	// When the catalog was loaded with deduplication, exact repeats have been
	// dropped (see the warning in build).
	Points []geom.Point

	// Edges are constrained edges, each referencing two Points by position.
	Edges [][2]int

	// Source is free-text provenance, empty when the fixture declares none.
	Source string

	// Error, when non-empty, is the failure the triangulation algorithm is
	// expected to raise for this fixture. It is test metadata, never a loader
	// concern.
	Error string

	// Name identifies the fixture: its path relative to the catalog root,
	// with forward slashes on every platform.
	Name string

	// Extent is the bounding box of the original point set, computed before
	// any deduplication. A deduped fixture keeps the raw-input extent.
	Extent geom.Extent
}

// ExpectsError reports whether the fixture is meant to make the algorithm
// under test fail.
func (tc *TestCase) ExpectsError() bool {
	return tc.Error != ""
}

// The wire shape of a fixture file. Points and edges decode through
// variable-length slices so that a malformed entry (wrong arity) is caught
// rather than silently truncated or zero-filled.
type rawTestCase struct {
	Points *[][]float64 `json:"points"`
	Edges  *[][]int     `json:"edges"`
	Source string       `json:"source"`
	Error  string       `json:"error"`
}

// build parses one fixture's bytes into a TestCase. The name is supplied by
// the caller (catalog-relative for Load, base name for LoadFile).
//
// When dedupe is set, exact duplicate points are dropped but edge indices are
// NOT remapped: error-case fixtures may depend on the shifted index space, so
// the loader warns through the logger instead of rewriting the indices.
func build(data []byte, path, name string, dedupe bool, logger *log.Logger) (*TestCase, error) {
	var raw rawTestCase
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if raw.Points == nil {
		return nil, &ParseError{Path: path, Err: errors.New(`missing required field "points"`)}
	}
	if raw.Edges == nil {
		return nil, &ParseError{Path: path, Err: errors.New(`missing required field "edges"`)}
	}

	points := make([]geom.Point, len(*raw.Points))
	for i, pair := range *raw.Points {
		if len(pair) != 2 {
			return nil, &ParseError{Path: path, Err: errors.Errorf("point %d has %d coordinates, want 2", i, len(pair))}
		}
		points[i] = geom.Point{X: pair[0], Y: pair[1]}
	}

	edges := make([][2]int, len(*raw.Edges))
	for i, pair := range *raw.Edges {
		if len(pair) != 2 {
			return nil, &ParseError{Path: path, Err: errors.Errorf("edge %d has %d indices, want 2", i, len(pair))}
		}
		edges[i] = [2]int{pair[0], pair[1]}
	}

	// Extent always reflects the raw input geometry, dedupe or not.
	extent := geom.ExtentOf(points)

	if dedupe {
		deduped, removed := geom.Dedupe(points)
		if removed > 0 && logger != nil {
			logger.Debug("removed duplicate points", "fixture", name, "removed", removed)
			if len(edges) > 0 {
				logger.Warn("dedupe shifted the vertex index space; edge indices are not remapped",
					"fixture", name, "removed", removed, "edges", len(edges))
			}
		}
		points = deduped
	}

	return &TestCase{
		Points: points,
		Edges:  edges,
		Source: raw.Source,
		Error:  raw.Error,
		Name:   name,
		Extent: extent,
	}, nil
}

// LoadFile loads a single fixture file outside of any catalog. The case's
// Name is the file's base name.
func LoadFile(path string, dedupe bool) (*TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return build(data, path, filepath.Base(path), dedupe, nil)
}
