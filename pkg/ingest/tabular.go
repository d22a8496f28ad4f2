package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/coolbeans/agendex/pkg/rows"
	"github.com/coolbeans/agendex/pkg/schedule"
)

// TabularSource is the source label for the central scheduling system's
// CSV export, the only already-columnar input.
const TabularSource = "HCSI"

// tabularShifts normalizes the CSV's shift-type vocabulary onto the
// consolidated one. Values outside the map pass through upper-cased.
var tabularShifts = map[string]string{
	"PROGRAMADO": "PROGRAMADA",
	"ESPONTANEO": "CAI/Espontánea",
	"ESPONTÁNEO": "CAI/Espontánea",
}

// ParseTabularCSV reads the central system's export. One CSV row is one
// schedule entry with named columns, so no title decomposition happens; the
// composite title is synthesized from specialty, sub-specialty and
// physician for traceability.
func ParseTabularCSV(path string) ([]schedule.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tabular export: %w", err)
	}
	reader := csv.NewReader(bytes.NewReader(decodeLatin1IfNeeded(raw)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read tabular header: %w", err)
	}
	col := columnIndex(header)

	var records []schedule.Record
	sequence := 0
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tabular row: %w", err)
		}
		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(line) {
				return ""
			}
			return strings.TrimSpace(line[i])
		}

		specialty := field("Especialidad")
		day := field("Dia")
		timeRange := field("Horario")
		if specialty == "" || day == "" || timeRange == "" {
			continue
		}
		sequence++

		physician := field("Profesional")
		subSpecialty := field("Subespecialidad")
		shiftRaw := field("TipoTurno")

		start, end := splitTimeRange(timeRange)
		records = append(records, schedule.Record{
			AgendaID:  fmt.Sprintf("%s_%03d_%s", TabularSource, sequence, specialty),
			RawTitle:  tabularTitle(specialty, subSpecialty, physician),
			Doctor:    physician,
			Specialty: strings.ToUpper(specialty),
			Shift:     normalizeTabularShift(shiftRaw),
			Day:       schedule.NormalizeDayCode(day),
			Start:     start,
			End:       end,
			Source:    TabularSource,
		})
	}
	return records, nil
}

// decodeLatin1IfNeeded re-decodes the bytes as ISO 8859-1 when they are not
// valid UTF-8. The export alternates encodings depending on which machine
// produced it.
func decodeLatin1IfNeeded(raw []byte) []byte {
	if utf8.Valid(raw) {
		return raw
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return raw
	}
	return decoded
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	return col
}

// splitTimeRange splits the "08:00 a 12:00" combined column on its literal
// " a " separator and normalizes both halves to HH:MM.
func splitTimeRange(timeRange string) (start, end string) {
	parts := strings.SplitN(timeRange, " a ", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return rows.ClockText(parts[0]), rows.ClockText(parts[1])
}

// tabularTitle joins specialty, a non-GENERAL sub-specialty and the
// physician with " - ", mirroring how the blocked exports title agendas.
func tabularTitle(specialty, subSpecialty, physician string) string {
	parts := []string{specialty}
	if subSpecialty != "" && subSpecialty != "GENERAL" {
		parts = append(parts, subSpecialty)
	}
	if physician != "" {
		parts = append(parts, physician)
	}
	return strings.Join(parts, " - ")
}

func normalizeTabularShift(raw string) string {
	upper := strings.ToUpper(raw)
	if normalized, ok := tabularShifts[upper]; ok {
		return normalized
	}
	return upper
}
