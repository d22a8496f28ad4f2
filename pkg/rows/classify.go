package rows

import "strings"

// dayTokens are the weekday spellings accepted in schedule rows, accented
// and unaccented. Matched by substring against the upper-cased first cell.
var dayTokens = []string{
	"LUNES", "MARTES", "MIÉRCOLES", "MIERCOLES",
	"JUEVES", "VIERNES", "SÁBADO", "SABADO", "DOMINGO",
}

// IsAgendaTitle reports whether a row is an agenda title: first cell present
// with non-blank text, second and third empty. A ragged row that ends before
// the third cell counts, since excelize trims trailing empties. This is the
// sole criterion. Earlier revisions of the pipeline recognized titles by
// keyword lists and misfired on every new institution; presence shape is the
// only signal that held up.
func IsAgendaTitle(r Row) bool {
	if !r.At(0).Present() || r.At(1).Present() || r.At(2).Present() {
		return false
	}
	return strings.TrimSpace(r.At(0).String()) != ""
}

// IsSchedule reports whether a row is a schedule entry: first cell names a
// weekday (and is not the "DÍA" column header), second and third cells
// present.
func IsSchedule(r Row) bool {
	first := r.At(0)
	if !first.Present() {
		return false
	}
	if isHeaderLabel(first.String()) {
		return false
	}
	upper := strings.ToUpper(first.String())
	found := false
	for _, token := range dayTokens {
		if strings.Contains(upper, token) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	return r.At(1).Present() && r.At(2).Present()
}

// IsHeader reports whether a row is the "DÍA | Hora inicio | Hora fin"
// column-header line that precedes an agenda's schedule block.
func IsHeader(r Row) bool {
	if !r.At(0).Present() || !isHeaderLabel(r.At(0).String()) {
		return false
	}
	return r.At(1).Present() && r.At(2).Present()
}

func isHeaderLabel(text string) bool {
	upper := strings.ToUpper(strings.TrimSpace(text))
	return upper == "DÍA" || upper == "DIA"
}
