package fixtures

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/cdtkit/fixtures/geom"
)

// LoadSVG imports a fixture from an SVG file containing exactly one
// <polygon>. The polygon's vertices become the point set and its closed
// outline becomes the constrained edges, so the triangulation must reproduce
// the drawn boundary. This is a hand-authoring convenience: shapes drawn in a
// vector editor can be dropped into a test suite without transcribing
// coordinates into JSON. SVG files are never picked up by a catalog walk;
// import is always explicit.
func LoadSVG(path string, dedupe bool) (*TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	rootEl, err := svgparser.Parse(f, true)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		return nil, &ParseError{Path: path, Err: errors.Errorf("want exactly one polygon, found %d", len(polygons))}
	}

	points, err := parseSVGPoints(polygons[0].Attributes["points"])
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if len(points) < 3 {
		return nil, &ParseError{Path: path, Err: errors.Errorf("polygon has %d vertices, want at least 3", len(points))}
	}

	// Constrain the closed outline: every vertex to its successor, last back
	// to first.
	edges := make([][2]int, len(points))
	for i := range points {
		edges[i] = [2]int{i, (i + 1) % len(points)}
	}

	extent := geom.ExtentOf(points)
	if dedupe {
		points, _ = geom.Dedupe(points)
	}

	return &TestCase{
		Points: points,
		Edges:  edges,
		Source: "svg:" + filepath.Base(path),
		Name:   filepath.Base(path),
		Extent: extent,
	}, nil
}

// parseSVGPoints parses an SVG polygon "points" attribute: whitespace
// separated "x,y" pairs.
func parseSVGPoints(attr string) ([]geom.Point, error) {
	fields := strings.Fields(attr)
	points := make([]geom.Point, 0, len(fields))
	for _, field := range fields {
		coords := strings.Split(field, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point %q", field)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}
