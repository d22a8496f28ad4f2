package ingest

import (
	"fmt"
	"strings"

	"github.com/coolbeans/agendex/pkg/mojibake"
	"github.com/coolbeans/agendex/pkg/rows"
	"github.com/coolbeans/agendex/pkg/schedule"
	"github.com/coolbeans/agendex/pkg/title"
)

// sparseBanner is the workbook heading line the dental hospital's export
// repeats above its blocks; it is noise, not an agenda title.
const sparseBanner = "HOSPITAL ODONTOLOGICO SAN ISIDRO"

// ParseSparseWorkbook reads the dental hospital's export, which never
// includes a DÍA header line. Its walk is deliberately simpler and weaker
// than the blocked-layout Walker: any row with an empty column B is taken
// as a title (column C is not required to be empty), every other row with
// columns A, B and C present is treated as a schedule line, with no header
// gating. The divergence is preserved per format rather than unified with
// the general classifier, because that institution's real files depend on
// it.
func ParseSparseWorkbook(path, source string, decomposer *title.Decomposer) ([]schedule.Record, error) {
	sheet, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}
	return WalkSparseSheet(sheet, source, decomposer), nil
}

// WalkSparseSheet runs the sparse-header walk over already-loaded raw rows.
func WalkSparseSheet(sheet [][]string, source string, decomposer *title.Decomposer) []schedule.Record {
	var records []schedule.Record
	var rawTitle, repairedTitle, agendaID string
	sequence := 0

	for _, raw := range sheet {
		row := rows.FromStrings(raw)
		first := strings.TrimSpace(row.At(0).String())
		if first == "" {
			continue
		}
		upperFirst := strings.ToUpper(first)
		if upperFirst == sparseBanner || upperFirst == "DÍA" || upperFirst == "DIA" {
			continue
		}

		second := strings.TrimSpace(row.At(1).String())
		if second == "" || strings.EqualFold(second, "NaN") {
			rawTitle = first
			repairedTitle = mojibake.Repair(first)
			sequence++
			agendaID = fmt.Sprintf("%s_%03d_%s", source, sequence, repairedTitle)
			continue
		}

		if len(row) < 3 || !row.At(1).Present() || !row.At(2).Present() {
			continue
		}
		day := schedule.NormalizeDay(first)
		start := rows.CellClock(row.At(1))
		end := rows.CellClock(row.At(2))
		// This format requires both times, not just one.
		if rawTitle == "" || day == "" || start == "" || end == "" {
			continue
		}

		components := decomposer.Decompose(mojibake.Scrub(repairedTitle))
		records = append(records, schedule.Record{
			AgendaID:  agendaID,
			RawTitle:  rawTitle,
			Doctor:    components.Doctor,
			Specialty: components.Specialty,
			Shift:     components.Shift,
			Day:       day,
			Start:     start,
			End:       end,
			Source:    source,
		})
	}
	return records
}
