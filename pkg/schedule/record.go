// Package schedule defines the consolidated schedule record, the single
// output unit of the whole pipeline, and the canonical weekday vocabulary.
package schedule

import "strings"

// Record is one "who sees patients, where, when, and for what" line.
// Records are created once by an adapter pass and never mutated afterwards;
// the consolidator works on whole slices.
type Record struct {
	// AgendaID is a synthetic display/audit id, {source}_{seq:03d}_{title}.
	// Sequence numbers are per source in discovery order. Two physically
	// different agenda blocks with the same title collide on the title part,
	// so AgendaID is not a primary key.
	AgendaID string

	// RawTitle is the agenda title exactly as found in the source, never
	// repaired or cleaned.
	RawTitle string

	// Doctor is the extracted physician name, possibly still carrying a
	// DR./DRA./LIC. prefix. Empty means "could not determine".
	Doctor string

	// Specialty is one of the known specialty labels, or empty.
	Specialty string

	// Shift is one of the known shift-type labels, or empty.
	Shift string

	// Day is one of the seven canonical capitalized Spanish day names, or
	// empty when unparseable.
	Day string

	// Start and End are HH:MM 24-hour clock strings, or empty.
	Start string
	End   string

	// Source is the health-center name the record came from.
	Source string

	// Window is the routing-counter label, assigned only for the one
	// institution that routes patients by specialty.
	Window string
}

// Valid reports whether the record carries enough schedule information to
// be emitted: a day plus at least one of the two times.
func (r Record) Valid() bool {
	return r.Day != "" && (r.Start != "" || r.End != "")
}

// CanonicalDays is the full-week canonical day vocabulary, in week order.
var CanonicalDays = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

// walkerDays absorbs the spellings seen in blocked Excel exports, including
// the stray SÁB abbreviation.
var walkerDays = map[string]string{
	"LUNES":     "Lunes",
	"MARTES":    "Martes",
	"MIÉRCOLES": "Miércoles",
	"MIERCOLES": "Miércoles",
	"JUEVES":    "Jueves",
	"VIERNES":   "Viernes",
	"SÁBADO":    "Sábado",
	"SABADO":    "Sábado",
	"SÁB":       "Sábado",
	"DOMINGO":   "Domingo",
}

// tabularDays additionally absorbs the three-letter codes the tabular CSV
// export uses.
var tabularDays = map[string]string{
	"LUN": "Lunes", "LUNES": "Lunes",
	"MAR": "Martes", "MARTES": "Martes",
	"MIE": "Miércoles", "MIERCOLES": "Miércoles", "MIÉRCOLES": "Miércoles",
	"JUE": "Jueves", "JUEVES": "Jueves",
	"VIE": "Viernes", "VIERNES": "Viernes",
	"SAB": "Sábado", "SABADO": "Sábado", "SÁBADO": "Sábado", "SÁB": "Sábado",
	"DOM": "Domingo", "DOMINGO": "Domingo",
}

// NormalizeDay canonicalizes a day cell from a blocked Excel export.
// Unknown values fall back to the raw text so nothing is silently dropped;
// validity is decided later by Record.Valid plus the emptiness of the day.
func NormalizeDay(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if day, ok := walkerDays[strings.ToUpper(trimmed)]; ok {
		return day
	}
	return trimmed
}

// NormalizeDayCode canonicalizes a day value from the tabular CSV export,
// which abbreviates days to three letters. Same raw fallback as
// NormalizeDay.
func NormalizeDayCode(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if day, ok := tabularDays[strings.ToUpper(trimmed)]; ok {
		return day
	}
	return trimmed
}
