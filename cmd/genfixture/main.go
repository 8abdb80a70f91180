// Command genfixture writes a small deterministic storm events CSV used
// as the loader's test fixture. Rows cover mixed-case labels, every
// magnitude code, stray codes, and the malformed shapes the loader is
// expected to skip.
//
// Usage:
//
//	go run ./cmd/genfixture -out internal/loader/testdata/storm_events_sample.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var header = []string{"STATE", "BGN_DATE", "EVTYPE", "FATALITIES", "INJURIES", "PROPDMG", "PROPDMGEXP", "CROPDMG", "CROPDMGEXP"}

var rows = [][]string{
	{"TX", "4/26/2024 0:00:00", "Tornado", "5", "90", "25.0", "K", "1.5", "K"},
	{"OK", "4/26/2024 0:00:00", "TORNADO", "3", "60", "2.5", "M", "0", ""},
	{"KS", "4/27/2024 0:00:00", "tornado", "2", "40", "1.2", "B", "0.5", "M"},
	{"MO", "5/1/2024 0:00:00", "FLOOD", "1", "8", "300", "K", "2", "M"},
	{"IA", "5/2/2024 0:00:00", "flood", "0", "4", "1.1", "M", "3.5", "K"},
	{"NE", "5/3/2024 0:00:00", "Hail", "0", "12", "150", "K", "4", "K"},
	{"AZ", "6/20/2024 0:00:00", "HEAT", "40", "200", "0", "", "0", ""},
	{"NV", "6/21/2024 0:00:00", "heat", "25", "150", "0", "", "0", ""},
	{"TX", "5/5/2024 0:00:00", "TSTM WIND", "2", "30", "75", "K", "1", "K"},
	{"OK", "5/6/2024 0:00:00", "Thunderstorm Wind", "1", "20", "5.5", "M", "0.2", "K"},
	{"CA", "7/1/2024 0:00:00", "DROUGHT", "0", "0", "0", "?", "13.9", "B"},
	{"FL", "7/2/2024 0:00:00", "Lightning", "3", "15", "2", "+", "0", ""},
	// Malformed rows the loader must skip: negative count, non-numeric
	// count, short row.
	{"TX", "5/7/2024 0:00:00", "HAIL", "-1", "0", "5", "K", "0", ""},
	{"NC", "5/8/2024 0:00:00", "RIP CURRENT", "abc", "0", "0", "", "0", ""},
	{"CO", "5/9/2024 0:00:00", "AVALANCHE", "1"},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the fixture CSV")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}

	log.Printf("wrote %d rows to %s", len(rows), *out)
	return f.Close()
}
