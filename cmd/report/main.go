// Command report runs the harm analysis once and prints the four top-N
// rankings to stdout. With -charts-dir it also writes the two bar chart
// HTML pages.
//
// Usage:
//
//	go run ./cmd/report -csv data/storm_events.csv.bz2 -top 10 -charts-dir out/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/couchcryptid/storm-harm-report/internal/chart"
	"github.com/couchcryptid/storm-harm-report/internal/loader"
	"github.com/couchcryptid/storm-harm-report/internal/report"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "path to the storm events CSV (.csv, .csv.gz, or .csv.bz2)")
	topN := flag.Int("top", 10, "number of categories per ranking")
	chartsDir := flag.String("charts-dir", "", "directory to write chart HTML pages (optional)")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -csv")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	result, err := loader.New(logger).LoadFile(*csvPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d records (%d rows skipped)", len(result.Records), result.Skipped)

	rep, err := report.Build(result.Records, *topN)
	if err != nil {
		return err
	}

	for _, list := range rep.Lists() {
		printList(os.Stdout, list)
	}

	if *chartsDir != "" {
		if err := writeCharts(*chartsDir, rep); err != nil {
			return err
		}
	}

	return nil
}

func printList(w io.Writer, list report.RankedList) {
	fmt.Fprintf(w, "\n=== Top %d by %s (%s) ===\n", len(list.Entries), list.Field, list.Unit)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for i, e := range list.Entries {
		fmt.Fprintf(tw, "%d.\t%s\t%g\n", i+1, e.Category, e.Value)
	}
	tw.Flush() //nolint:errcheck // stdout
}

func writeCharts(dir string, rep *report.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	pages := []struct {
		file   string
		render func(io.Writer, *report.Report) error
	}{
		{"harm.html", chart.RenderHumanHarm},
		{"damage.html", chart.RenderEconomicHarm},
	}
	for _, p := range pages {
		path := filepath.Join(dir, p.file)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := p.render(f, rep); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}
