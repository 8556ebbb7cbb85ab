package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestExtentOf(t *testing.T) {
	points := []Point{
		{3, -1},
		{-2, 7},
		{0, 0},
		{5, 2},
	}
	ext := ExtentOf(points)
	assert.Equal(t, Extent{MinX: -2, MinY: -1, MaxX: 5, MaxY: 7}, ext)
	assert.False(t, ext.IsEmpty())
	assert.Equal(t, 7.0, ext.Width())
	assert.Equal(t, 8.0, ext.Height())

	// Every coordinate lies within the box, and each bound is touched by at
	// least one point.
	var touchMinX, touchMinY, touchMaxX, touchMaxY bool
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, ext.MinX)
		assert.GreaterOrEqual(t, p.Y, ext.MinY)
		assert.LessOrEqual(t, p.X, ext.MaxX)
		assert.LessOrEqual(t, p.Y, ext.MaxY)
		touchMinX = touchMinX || p.X == ext.MinX
		touchMinY = touchMinY || p.Y == ext.MinY
		touchMaxX = touchMaxX || p.X == ext.MaxX
		touchMaxY = touchMaxY || p.Y == ext.MaxY
	}
	assert.True(t, touchMinX && touchMinY && touchMaxX && touchMaxY)
}

func TestExtentOf_Empty(t *testing.T) {
	ext := ExtentOf(nil)
	assert.True(t, ext.IsEmpty())
	assert.True(t, math.IsInf(ext.MinX, 1))
	assert.True(t, math.IsInf(ext.MinY, 1))
	assert.True(t, math.IsInf(ext.MaxX, -1))
	assert.True(t, math.IsInf(ext.MaxY, -1))
}

func TestExtentOf_SinglePoint(t *testing.T) {
	ext := ExtentOf([]Point{{2, 3}})
	assert.Equal(t, Extent{MinX: 2, MinY: 3, MaxX: 2, MaxY: 3}, ext)
	assert.False(t, ext.IsEmpty())
	assert.Equal(t, 0.0, ext.Width())
	assert.Equal(t, 0.0, ext.Height())
}

func TestDedupe(t *testing.T) {
	input := []Point{
		{0, 0},
		{1, 1},
		{0, 0},
		{2, 2},
		{1, 1},
		{0, 0},
	}
	original := append([]Point{}, input...)

	deduped, removed := Dedupe(input)
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 2}}, deduped)
	assert.Equal(t, 3, removed)
	// Input must not be mutated
	assert.Equal(t, original, input)

	// Idempotent
	again, removed := Dedupe(deduped)
	assert.Equal(t, deduped, again)
	assert.Zero(t, removed)
}

func TestDedupe_ExactEqualityOnly(t *testing.T) {
	// Near-duplicates survive; equality is not tolerance based.
	input := []Point{{0, 0}, {0, 1e-12}}
	deduped, removed := Dedupe(input)
	assert.Len(t, deduped, 2)
	assert.Zero(t, removed)
}

func TestDedupe_Empty(t *testing.T) {
	deduped, removed := Dedupe(nil)
	assert.Empty(t, deduped)
	assert.Zero(t, removed)
}

func TestScaleToFit(t *testing.T) {
	// A 2×1 shape into a 100×100 box: width is the binding constraint.
	points := []Point{
		{10, 5},
		{12, 5},
		{12, 6},
		{10, 6},
	}
	scaled := ScaleToFit(points, 100, 100, 0, 0)
	assert.Equal(t, []Point{
		{0, 0},
		{100, 0},
		{100, 50},
		{0, 50},
	}, scaled)
}

func TestScaleToFit_Offset(t *testing.T) {
	points := []Point{{-1, -1}, {1, 1}}
	scaled := ScaleToFit(points, 10, 10, 3, 4)
	assert.Equal(t, []Point{{3, 4}, {13, 14}}, scaled)
}

func TestScaleToFit_PreservesAspectRatio(t *testing.T) {
	points := []Point{
		{0, 0},
		{7, 1},
		{3, 5},
		{-2, 2},
	}
	in := ExtentOf(points)
	out := ExtentOf(ScaleToFit(points, 640, 480, 0, 0))

	// Fits within the requested box
	assert.LessOrEqual(t, out.Width(), 640+epsilon)
	assert.LessOrEqual(t, out.Height(), 480+epsilon)
	// Anchored at the origin
	assert.InDelta(t, 0, out.MinX, epsilon)
	assert.InDelta(t, 0, out.MinY, epsilon)
	// Uniform scaling preserves the width/height ratio
	assert.InDelta(t, in.Width()/in.Height(), out.Width()/out.Height(), epsilon)
}

func TestScaleToFit_DegenerateAxis(t *testing.T) {
	// Horizontal collinear points: height is zero, so only width constrains
	// the scale.
	points := []Point{{0, 5}, {2, 5}, {1, 5}}
	scaled := ScaleToFit(points, 10, 10, 0, 0)
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {5, 0}}, scaled)
}

func TestScaleToFit_SinglePoint(t *testing.T) {
	// Degenerate on both axes: everything collapses onto the anchor.
	scaled := ScaleToFit([]Point{{42, 42}}, 10, 10, 2, 3)
	assert.Equal(t, []Point{{2, 3}}, scaled)
}

func TestScaleToFit_Empty(t *testing.T) {
	assert.Empty(t, ScaleToFit(nil, 10, 10, 0, 0))
}
