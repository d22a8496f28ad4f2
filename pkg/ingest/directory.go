package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/coolbeans/agendex/pkg/schedule"
	"github.com/coolbeans/agendex/pkg/title"
)

// tabularFileName is the fixed, distinctively-named CSV export the central
// system drops next to the agenda directory.
const tabularFileName = "Agendas HCSI.csv"

// sparseMarker routes a workbook to the sparse-header adapter.
const sparseMarker = "HOSPITAL ODONTOLOGICO"

var warnLabel = color.New(color.FgYellow).Sprint("warning:")

// DefaultTabularPath is where the tabular CSV export conventionally sits:
// a sibling of the agenda directory.
func DefaultTabularPath(dir string) string {
	return filepath.Join(filepath.Dir(dir), tabularFileName)
}

// ProcessDirectory parses every agenda export under dir plus the optional
// tabular CSV at tabularPath, returning one record batch per source file in
// discovery order. An unreadable directory is fatal; a failing individual
// file is logged to logOutput and contributes zero records. tabularPath is
// skipped silently when the file does not exist.
func ProcessDirectory(dir, tabularPath string, decomposer *title.Decomposer, logOutput io.Writer) ([][]schedule.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read agenda directory: %w", err)
	}

	var batches [][]schedule.Record

	if tabularPath != "" {
		if _, statErr := os.Stat(tabularPath); statErr == nil {
			fmt.Fprintf(logOutput, "processing tabular export: %s\n", filepath.Base(tabularPath))
			records, tabErr := ParseTabularCSV(tabularPath)
			if tabErr != nil {
				fmt.Fprintf(logOutput, "%s %s: %v\n", warnLabel, filepath.Base(tabularPath), tabErr)
			} else {
				fmt.Fprintf(logOutput, "  %d records\n", len(records))
				batches = append(batches, records)
			}
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".xlsx" && ext != ".xls" {
			continue
		}
		// The tabular system's workbooks carry the same data as its CSV in a
		// different shape; the blocked adapters must not double-process them.
		if strings.Contains(strings.ToUpper(name), "HCSI") {
			fmt.Fprintf(logOutput, "skipping %s (tabular-format source)\n", name)
			continue
		}

		source := InferSource(name)
		path := filepath.Join(dir, name)
		fmt.Fprintf(logOutput, "processing %s\n", name)

		var records []schedule.Record
		var parseErr error
		if strings.Contains(strings.ToUpper(name), sparseMarker) {
			records, parseErr = ParseSparseWorkbook(path, source, decomposer)
		} else {
			records, parseErr = ParseVerticalWorkbook(path, source, decomposer)
		}
		if parseErr != nil {
			fmt.Fprintf(logOutput, "%s %s: %v\n", warnLabel, name, parseErr)
			continue
		}
		fmt.Fprintf(logOutput, "  %d records\n", len(records))
		if len(records) > 0 {
			batches = append(batches, records)
		}
	}
	return batches, nil
}
