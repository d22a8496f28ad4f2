// Package title decomposes free-text agenda titles into their doctor,
// specialty and shift-type components. A title is one loosely conventioned
// line like "CARDIOLOGIA - DR. JUAN PEREZ - PROGRAMADA"; the three fields
// are extracted by three independent ordered rule cascades, each with its
// own tie-breaks and exclusion lists, tuned against the institutions'
// historical naming habits. Every field is optional: an empty result means
// no known convention matched, which is expected output, not an error.
package title

import (
	"regexp"
	"strings"

	"github.com/coolbeans/agendex/pkg/mojibake"
)

// Components is the decomposition of one agenda title. Doctor may retain a
// leading DR./DRA./DOCTOR prefix when the source text carried one.
type Components struct {
	Doctor    string
	Specialty string
	Shift     string
}

// Decomposer extracts title components. All pattern tables are compiled
// once at construction and never mutated, so a single Decomposer is safe to
// share across adapters.
type Decomposer struct {
	specialtyTable []specialtyRule
	doctorTable    []*regexp.Regexp
	shiftTable     []shiftRule
}

// NewDecomposer compiles the rule tables.
func NewDecomposer() *Decomposer {
	return &Decomposer{
		specialtyTable: specialtyRules(),
		doctorTable:    doctorPatterns(),
		shiftTable:     shiftRules(),
	}
}

// Decompose extracts {doctor, specialty, shift} from an agenda title.
// The input is repaired before matching; callers keep their own verbatim
// copy for audit. Deterministic: equal inputs yield equal outputs.
func (d *Decomposer) Decompose(agendaTitle string) Components {
	if strings.TrimSpace(agendaTitle) == "" {
		return Components{}
	}
	clean := mojibake.Repair(strings.TrimSpace(agendaTitle))
	upper := strings.ToUpper(clean)

	return Components{
		Doctor:    d.doctor(clean),
		Specialty: d.specialty(upper),
		Shift:     d.shift(upper),
	}
}
