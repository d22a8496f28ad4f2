// Package ingest turns raw per-institution spreadsheet exports into
// schedule records. A Walker drives the structural row classifier over one
// blocked sheet; the per-format adapters (vertical Excel, sparse-header
// Excel, tabular CSV) normalize each institution's layout into that walk or
// bypass it where the source is already columnar.
package ingest

import (
	"fmt"
	"strings"

	"github.com/coolbeans/agendex/pkg/mojibake"
	"github.com/coolbeans/agendex/pkg/rows"
	"github.com/coolbeans/agendex/pkg/schedule"
	"github.com/coolbeans/agendex/pkg/title"
)

// Walker is the state machine for blocked sheets: an agenda-title line,
// then a "DÍA | Hora inicio | Hora fin" header, then schedule lines, with
// arbitrary noise rows in between. State never crosses a source file
// boundary; every file walk starts from a fresh Walker.
type Walker struct {
	source     string
	decomposer *title.Decomposer

	sequence      int
	rawTitle      string
	repairedTitle string
	agendaID      string
	sawHeader     bool

	records []schedule.Record
}

// NewWalker starts a walk over one source's sheet.
func NewWalker(source string, decomposer *title.Decomposer) *Walker {
	return &Walker{source: source, decomposer: decomposer}
}

// Feed advances the walk by one row. Rows matching no structural shape are
// skipped without logging; blank separators dominate real exports.
func (w *Walker) Feed(row rows.Row) {
	switch {
	case rows.IsHeader(row):
		w.sawHeader = true

	case rows.IsAgendaTitle(row):
		w.rawTitle = strings.TrimSpace(row.At(0).String())
		w.repairedTitle = mojibake.Repair(w.rawTitle)
		w.sequence++
		w.agendaID = fmt.Sprintf("%s_%03d_%s", w.source, w.sequence, w.repairedTitle)
		// The header gate re-arms per agenda: schedule-shaped lines before
		// the next header are not yet trusted as data.
		w.sawHeader = false

	case rows.IsSchedule(row):
		if w.rawTitle == "" || !w.sawHeader {
			return
		}
		if record, ok := w.scheduleRecord(row); ok {
			w.records = append(w.records, record)
		}
	}
}

// Records returns everything emitted so far, in row-discovery order.
func (w *Walker) Records() []schedule.Record {
	return w.records
}

// scheduleRecord builds one record from a schedule-shaped row under the
// current agenda. Rows lacking a day or lacking both times are dropped.
func (w *Walker) scheduleRecord(row rows.Row) (schedule.Record, bool) {
	day := schedule.NormalizeDay(row.At(0).String())
	start := rows.CellClock(row.At(1))
	end := rows.CellClock(row.At(2))

	record := schedule.Record{
		AgendaID: w.agendaID,
		RawTitle: w.rawTitle,
		Day:      day,
		Start:    start,
		End:      end,
		Source:   w.source,
	}
	if !record.Valid() {
		return schedule.Record{}, false
	}

	components := w.decomposer.Decompose(mojibake.Scrub(w.repairedTitle))
	record.Doctor = components.Doctor
	record.Specialty = components.Specialty
	record.Shift = components.Shift
	return record, true
}
