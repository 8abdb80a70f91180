// Package loader reads the NOAA storm events CSV into domain records.
package loader

import (
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/storm-harm-report/internal/domain"
)

// Column names consumed from the storm events CSV.
const (
	colEventType  = "EVTYPE"
	colFatalities = "FATALITIES"
	colInjuries   = "INJURIES"
	colPropDamage = "PROPDMG"
	colPropExp    = "PROPDMGEXP"
	colCropDamage = "CROPDMG"
	colCropExp    = "CROPDMGEXP"
)

var requiredColumns = []string{
	colEventType, colFatalities, colInjuries,
	colPropDamage, colPropExp, colCropDamage, colCropExp,
}

// Result holds the loaded records and a count of rows rejected along the
// way. Skipped rows are a data-quality signal, never a load failure.
type Result struct {
	Records []domain.StormRecord
	Skipped int
}

// CSVLoader parses storm events CSV data.
type CSVLoader struct {
	logger *slog.Logger
}

// New creates a CSVLoader.
func New(logger *slog.Logger) *CSVLoader {
	return &CSVLoader{logger: logger}
}

// LoadFile opens and loads a storm events CSV. Files ending in .gz or
// .bz2 are decompressed transparently.
func (l *CSVLoader) LoadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Result{}, fmt.Errorf("open gzip dataset: %w", err)
		}
		defer gz.Close()
		r = gz
	case ".bz2":
		r = bzip2.NewReader(f)
	}

	return l.Load(r)
}

// Load parses CSV data from r. The header row names the columns; extra
// columns are ignored and column order is irrelevant. Rows that are short,
// non-numeric, or carry negative figures are skipped and counted.
func (l *CSVLoader) Load(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are handled per-row

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("read csv header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return Result{}, fmt.Errorf("dataset missing column %q", col)
		}
	}

	var result Result
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read csv row: %w", err)
		}
		line++

		rec, ok := l.parseRow(row, colIdx, line)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// parseRow converts one CSV row into a StormRecord. Returns false for rows
// that are too short, non-numeric, or carry negative figures.
func (l *CSVLoader) parseRow(row []string, colIdx map[string]int, line int) (domain.StormRecord, bool) {
	if len(row) < len(colIdx) {
		l.logger.Debug("skipping short row", "line", line, "fields", len(row))
		return domain.StormRecord{}, false
	}

	fatalities, err1 := parseNonNegative(get(row, colIdx, colFatalities))
	injuries, err2 := parseNonNegative(get(row, colIdx, colInjuries))
	propDamage, err3 := parseNonNegative(get(row, colIdx, colPropDamage))
	cropDamage, err4 := parseNonNegative(get(row, colIdx, colCropDamage))
	for _, err := range []error{err1, err2, err3, err4} {
		if err != nil {
			l.logger.Debug("skipping row", "line", line, "error", err)
			return domain.StormRecord{}, false
		}
	}

	return domain.StormRecord{
		EventType:      get(row, colIdx, colEventType),
		Fatalities:     fatalities,
		Injuries:       injuries,
		PropertyDamage: propDamage,
		PropertyExp:    get(row, colIdx, colPropExp),
		CropDamage:     cropDamage,
		CropExp:        get(row, colIdx, colCropExp),
	}, true
}

// parseNonNegative parses a numeric CSV field. An empty field means zero
// (unmeasured); anything non-numeric or negative is rejected.
func parseNonNegative(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %g", v)
	}
	return v, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
