package consolidate

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/coolbeans/agendex/pkg/schedule"
)

// columns is the interchange column order. The XLSX export moves agenda_id
// to the last position for the people who read the sheet by eye.
var columns = []string{
	"agenda_id", "raw_title", "doctor", "specialty", "shift_type",
	"day_of_week", "start_time", "end_time", "source", "window_label",
}

const sheetName = "Agendas Consolidadas"

// maxColumnWidth caps XLSX auto-sizing so one long mangled title does not
// stretch a column across the screen.
const maxColumnWidth = 50

func recordValues(r schedule.Record) []string {
	return []string{
		r.AgendaID, r.RawTitle, r.Doctor, r.Specialty, r.Shift,
		r.Day, r.Start, r.End, r.Source, r.Window,
	}
}

// XLSXPath derives the review-workbook path from the CSV path.
func XLSXPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, ".csv") + ".xlsx"
}

// ExportCSV writes the consolidated table as UTF-8 CSV in interchange
// column order.
func ExportCSV(records []schedule.Record, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := writer.Write(recordValues(r)); err != nil {
			return fmt.Errorf("write record %s: %w", r.AgendaID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// ExportXLSX writes the review workbook: one sheet, agenda_id moved to the
// last column, column widths sized to content.
func ExportXLSX(records []schedule.Record, path string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	defaultSheet := workbook.GetSheetName(0)
	if err := workbook.SetSheetName(defaultSheet, sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := append(append([]string{}, columns[1:]...), columns[0])
	if err := writeSheetRow(workbook, 1, header); err != nil {
		return err
	}
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for i, r := range records {
		values := recordValues(r)
		row := append(append([]string{}, values[1:]...), values[0])
		if err := writeSheetRow(workbook, i+2, row); err != nil {
			return err
		}
		for j, v := range row {
			if n := len([]rune(v)); n > widths[j] {
				widths[j] = n
			}
		}
	}

	for i, width := range widths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if width+2 > maxColumnWidth {
			width = maxColumnWidth - 2
		}
		if err := workbook.SetColWidth(sheetName, column, column, float64(width+2)); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSheetRow(workbook *excelize.File, rowIndex int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIndex)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := workbook.SetSheetRow(sheetName, cell, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowIndex, err)
	}
	return nil
}

// ReadCSV loads a previously exported consolidated table. Columns are
// matched by header name so a reordered or extended file still loads.
func ReadCSV(path string) ([]schedule.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	index := map[string]int{}
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]schedule.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, schedule.Record{
			AgendaID:  field(row, "agenda_id"),
			RawTitle:  field(row, "raw_title"),
			Doctor:    field(row, "doctor"),
			Specialty: field(row, "specialty"),
			Shift:     field(row, "shift_type"),
			Day:       field(row, "day_of_week"),
			Start:     field(row, "start_time"),
			End:       field(row, "end_time"),
			Source:    field(row, "source"),
			Window:    field(row, "window_label"),
		})
	}
	return records, nil
}
