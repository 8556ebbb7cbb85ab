// Small 2D helpers shared by the fixture catalog and its visualizers:
// exact-coordinate deduplication, bounding extents, and aspect-preserving
// scale-to-fit. These operate on plain point slices and never mutate their
// input.
package geom

import "math"

type Point struct {
	X float64
	Y float64
}

// Extent is the axis-aligned bounding box of a point set.
type Extent struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyExtent returns the extent of an empty point set: minimums at +Inf,
// maximums at -Inf. This is a deliberate sentinel, not a valid box; callers
// must check IsEmpty before treating it as geometry.
func EmptyExtent() Extent {
	return Extent{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

func (e Extent) IsEmpty() bool {
	return e.MaxX < e.MinX || e.MaxY < e.MinY
}

func (e Extent) Width() float64 {
	return e.MaxX - e.MinX
}

func (e Extent) Height() float64 {
	return e.MaxY - e.MinY
}

// ExtentOf computes the bounding box of a point set in a single pass. An
// empty input yields EmptyExtent.
func ExtentOf(points []Point) Extent {
	ext := EmptyExtent()
	for _, p := range points {
		ext.MinX = math.Min(ext.MinX, p.X)
		ext.MinY = math.Min(ext.MinY, p.Y)
		ext.MaxX = math.Max(ext.MaxX, p.X)
		ext.MaxY = math.Max(ext.MaxY, p.Y)
	}
	return ext
}

// Dedupe removes every point that exactly repeats an earlier point. Equality
// is exact coordinate equality, not tolerance based; the first occurrence is
// the one retained, and relative order is preserved. Returns the filtered
// slice and the number of points removed. The input is left untouched.
func Dedupe(points []Point) ([]Point, int) {
	seen := make(map[Point]struct{}, len(points))
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result, len(points) - len(result)
}

// ScaleToFit maps the point set into a width×height box anchored at
// (offX, offY). The scale is uniform: the smaller of the per-axis factors is
// used, so the result fits within the box but may leave margin on one axis.
// The extent's minimum corner maps to the anchor.
//
// A zero-size axis puts no constraint on the scale; if the extent is
// degenerate on both axes (a single distinct point, or collinear on both),
// every point collapses onto the anchor. An empty input returns an empty
// slice.
func ScaleToFit(points []Point, width, height, offX, offY float64) []Point {
	ext := ExtentOf(points)
	if ext.IsEmpty() {
		return []Point{}
	}
	scale := fitScale(ext, width, height)
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = Point{
			X: (p.X-ext.MinX)*scale + offX,
			Y: (p.Y-ext.MinY)*scale + offY,
		}
	}
	return result
}

func fitScale(ext Extent, width, height float64) float64 {
	scale := math.Inf(1)
	if ext.Width() > 0 {
		scale = width / ext.Width()
	}
	if ext.Height() > 0 {
		scale = math.Min(scale, height/ext.Height())
	}
	if math.IsInf(scale, 1) {
		// Degenerate on both axes; there is nothing to stretch.
		return 0
	}
	return scale
}
