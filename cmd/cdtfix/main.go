package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/cdtkit/fixtures"
)

// Command line tool for poking at a fixture catalog: list what's in it, dump
// one fixture's geometry, or render it as a PNG (inline in the terminal on
// iTerm). The fixtures root is always an explicit flag; there is no implicit
// default location.

var (
	app         = kingpin.New("cdtfix", "Inspect constrained-triangulation test fixtures.")
	rootDir     = app.Flag("root", "Fixtures root directory.").Required().ExistingDir()
	allowErrors = app.Flag("allow-errors", "Include fixtures that declare an expected error.").Bool()
	dedupe      = app.Flag("dedupe", "Drop exact duplicate points (edge indices are not remapped).").Bool()
	verbose     = app.Flag("verbose", "Log dedupe diagnostics.").Short('v').Bool()

	listCmd = app.Command("list", "List every fixture in the catalog.")

	showCmd  = app.Command("show", "Print one fixture's geometry.")
	showName = showCmd.Arg("name", "Substring of the fixture name.").Required().String()

	renderCmd  = app.Command("render", "Render one fixture to a PNG.")
	renderName = renderCmd.Arg("name", "Substring of the fixture name.").Required().String()
	renderOut  = renderCmd.Flag("out", "Output path. When unset, the image is printed inline.").String()
	renderSize = renderCmd.Flag("size", "Canvas size in pixels.").Default("800").Int()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	// show and render look things up by name, so they always search the full
	// catalog. The filter flag only matters when listing.
	allowAll := *allowErrors || cmd != listCmd.FullCommand()

	catalog, err := fixtures.Load(*rootDir, fixtures.Options{
		AllowErrors: allowAll,
		Dedupe:      *dedupe,
		Log:         logger,
	})
	if err != nil {
		logger.Fatal("failed to load catalog", "root", *rootDir, "err", err)
	}

	switch cmd {
	case listCmd.FullCommand():
		list(catalog)
	case showCmd.FullCommand():
		show(mustFind(logger, catalog, *showName))
	case renderCmd.FullCommand():
		render(logger, mustFind(logger, catalog, *renderName))
	}
}

func list(catalog []*fixtures.TestCase) {
	for _, tc := range catalog {
		name := aurora.Green(tc.Name)
		if tc.ExpectsError() {
			name = aurora.Red(tc.Name)
		}
		fmt.Printf("%s  %d points, %d edges\n", name, len(tc.Points), len(tc.Edges))
	}
}

func show(tc *fixtures.TestCase) {
	fmt.Println(aurora.Bold(tc.Name))
	if tc.Source != "" {
		fmt.Printf("source: %s\n", tc.Source)
	}
	if tc.ExpectsError() {
		fmt.Printf("expected error: %s\n", aurora.Red(tc.Error))
	}
	fmt.Printf("extent: [%g, %g] – [%g, %g]\n", tc.Extent.MinX, tc.Extent.MinY, tc.Extent.MaxX, tc.Extent.MaxY)
	for i, p := range tc.Points {
		fmt.Printf("  p%-3d %g %g\n", i, p.X, p.Y)
	}
	for _, e := range tc.Edges {
		fmt.Printf("  edge %d–%d\n", e[0], e[1])
	}
}

func render(logger *log.Logger, tc *fixtures.TestCase) {
	var err error
	if *renderOut == "" {
		err = tc.RenderToTerminal(*renderSize)
	} else {
		err = tc.Render(*renderOut, *renderSize)
	}
	if err != nil {
		logger.Fatal("render failed", "fixture", tc.Name, "err", err)
	}
}

func mustFind(logger *log.Logger, catalog []*fixtures.TestCase, substr string) *fixtures.TestCase {
	tc := fixtures.Find(catalog, substr)
	if tc == nil {
		logger.Fatal("no fixture matches", "substring", substr)
	}
	return tc
}
