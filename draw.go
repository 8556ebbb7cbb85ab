package fixtures

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/cdtkit/fixtures/dbg"
	"github.com/cdtkit/fixtures/geom"
)

const drawPadding = 40

// Render draws the fixture to a PNG: points as dots, constrained edges as
// lines, with the raw-input extent framing the image. The geometry is scaled
// uniformly to fit a size×size canvas. Useful for eyeballing a fixture that
// makes the algorithm under test misbehave.
func (tc *TestCase) Render(path string, size int) error {
	inner := float64(size - 2*drawPadding)
	scaled := geom.ScaleToFit(tc.Points, inner, inner, drawPadding, drawPadding)

	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	// Flip so the origin is at the bottom left, as the fixtures assume.
	c.Translate(0, float64(size))
	c.Scale(1, -1)

	// Constrained edges. Out-of-range indices are drawn from the origin
	// rather than panicking; a desynced fixture is exactly what someone
	// rendering it wants to see.
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, e := range tc.Edges {
		a, b := edgePoint(scaled, e[0]), edgePoint(scaled, e[1])
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.Stroke()
	}

	c.SetRGB(0, 1, 0)
	for _, p := range scaled {
		c.DrawCircle(p.X, p.Y, 3)
		c.Fill()
	}

	// Label in native coordinates so the text isn't mirrored.
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	label := tc.Name
	if label == "" {
		label = dbg.Name(tc)
	}
	c.DrawStringAnchored(label, float64(size)/2, float64(drawPadding)/2, 0.5, 0.5)
	c.Pop()

	return c.SavePNG(path)
}

func edgePoint(points []geom.Point, i int) geom.Point {
	if i < 0 || i >= len(points) {
		return geom.Point{}
	}
	return points[i]
}

// RenderToTerminal renders the fixture to a temp file and cats it inline
// (iTerm and friends).
func (tc *TestCase) RenderToTerminal(size int) error {
	f, err := os.CreateTemp("", "fixture-*.png")
	if err != nil {
		return err
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := tc.Render(path, size); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
