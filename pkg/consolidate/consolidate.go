// Package consolidate flattens per-source record batches into one table and
// writes the interchange CSV and review XLSX exports, plus the console
// summary report over the consolidated table.
package consolidate

import "github.com/coolbeans/agendex/pkg/schedule"

// Consolidate concatenates the per-source batches in order into one flat
// table, applies the single global day post-fix, and assigns window labels
// for the counter-routing institution. Input batches are not modified.
func Consolidate(batches ...[]schedule.Record) []schedule.Record {
	total := 0
	for _, batch := range batches {
		total += len(batch)
	}
	records := make([]schedule.Record, 0, total)
	for _, batch := range batches {
		records = append(records, batch...)
	}

	for i := range records {
		// One adapter's day table used to abbreviate Saturday; files produced
		// under it are still in circulation.
		if records[i].Day == "Sáb" {
			records[i].Day = "Sábado"
		}
		if records[i].Source == WindowSource {
			records[i].Window = WindowFor(records[i].Specialty)
		}
	}
	return records
}
