package title

import "regexp"

// shiftRule pairs a canonical shift-type label with its pattern. Rules run
// in order against the upper-cased title; first match wins. Compound labels
// sit above their substrings (EVENTUAL ESPONTANEA above EVENTUAL, and both
// above the CAI/Espontánea bucket) so the generic rule never steals a
// compound phrase.
type shiftRule struct {
	label   string
	pattern *regexp.Regexp
}

func shiftRules() []shiftRule {
	rule := func(label, pattern string) shiftRule {
		return shiftRule{label: label, pattern: regexp.MustCompile(pattern)}
	}
	return []shiftRule{
		rule("GUARDIA", `\bGUARDIA\b|\bGUARDIA\s+MEDICA\b|\bGUARDIAS\b`),
		rule("EVENTUAL ESPONTANEA", `\bEVENTUAL\s+ESPONTANEA\b|\bEVENTUAL\s+ESPONTÁNEA\b`),
		rule("EVENTUAL", `\bEVENTUAL\b`),
		rule("CAI/Espontánea", `\bESPONTANEA\b|\bESPONTÁNEA\b|\bESPONTÃ_x0081_NEA\b|\bCAI\b`),
		rule("URGENCIA", `\bURGENCIA\b|\bURGENTE\b`),
		rule("PROGRAMADA", `\bPROGRAMADA\b|\bTURNO\s+PROGRAMADO\b|\bPROGRAMADO\b`),
		rule("SOBRETURNO", `\bSOBRETURNO\b|\bSOBRETURNOS\b`),
		rule("CONTROL", `\bCONTROL\b`),
		rule("INTERCONSULTA", `\bINTERCONSULTA\b`),
		rule("CONSULTA EXTERNA", `\bCONSULTA\s+EXTERNA\b|\bEXTERNA\b`),
		rule("TRATAMIENTO", `\bTRATAMIENTO\b`),
		rule("GENERAL", `\bGENERAL\b`),
		rule("PAP", `\bPAP\b`),
		rule("REUNION DE EQUIPO", `\bREUNION\s+DE\s+EQUIPO\b|\bREUNIÓN\s+DE\s+EQUIPO\b`),
	}
}

// asapPattern marks the "attend as soon as possible" label. It structurally
// co-occurs with URGENCIA in the same titles, so it is checked before the
// whole rule table rather than inside it.
var asapPattern = regexp.MustCompile(`\bA\s+LA\s+BREVEDAD\b`)

// shift returns the shift-type label for an upper-cased title, or empty.
func (d *Decomposer) shift(upperTitle string) string {
	if asapPattern.MatchString(upperTitle) {
		return "A LA BREVEDAD"
	}
	for _, rule := range d.shiftTable {
		if rule.pattern.MatchString(upperTitle) {
			return rule.label
		}
	}
	return ""
}
