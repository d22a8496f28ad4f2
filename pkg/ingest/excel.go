package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/coolbeans/agendex/pkg/rows"
	"github.com/coolbeans/agendex/pkg/schedule"
	"github.com/coolbeans/agendex/pkg/title"
)

// ParseVerticalWorkbook reads a vertical-blocked Excel export and walks its
// first sheet. This is the layout most institutions use: agenda title lines
// with two empty companion cells, a DÍA header, then day/start/end lines.
func ParseVerticalWorkbook(path, source string, decomposer *title.Decomposer) ([]schedule.Record, error) {
	sheet, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}
	return WalkSheet(sheet, source, decomposer), nil
}

// WalkSheet runs the blocked-layout walk over already-loaded raw rows.
func WalkSheet(sheet [][]string, source string, decomposer *title.Decomposer) []schedule.Record {
	walker := NewWalker(source, decomposer)
	for _, raw := range sheet {
		walker.Feed(rows.FromStrings(raw))
	}
	return walker.Records()
}

// readFirstSheet loads the first sheet of a workbook as raw string rows.
// excelize returns formatted cell values, so time cells arrive as their
// displayed text; clock parsing downstream handles both that and raw
// serial fractions.
func readFirstSheet(path string) ([][]string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	sheet, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return sheet, nil
}
