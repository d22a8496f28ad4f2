package mojibake

import (
	"regexp"
	"strings"
)

// scrubTable is the second, narrower cleanup pass applied to the parse copy
// of an agenda title before component extraction. Unlike repairTable it is
// applied in listed order, not longest-first: the table grew entry by entry
// against observed titles and reordering it changes which fixes fire.
var scrubTable = []replacement{
	{"Ã_x008d_", "Í"},
	{"Ã_x0081_", "Á"},
	{"Ã_x0081_N", "ÁN"},
	{"MÃ‰DICA", "MÉDICA"},
	{"CLÃ_x008d_NICA", "CLÍNICA"},
	{"PEDIÃ_x0081_TRICA", "PEDIÁTRICA"},
	{"BARILÃ_x0081_", "BARILÁ"},
	{"INÃ‰S", "INÉS"},
	{"Ã‰S", "ÉS"},
	{"Ã‰", "É"},
	{"Ã”NICA", "ÓNICA"},
	{"Ã”", "Ó"},
	{"VERÃ”NICA", "VERÓNICA"},
	{"├ô", "Ó"}, // box-drawing artifact from one DOS-era export
	{"VER├ôNICA", "VERÓNICA"},
	{"MUÃ’OZ", "MUÑOZ"},
	{"Ã’OZ", "ÑOZ"},
	{"Ã’", "Ñ"},
	{"NOEMÃ_x008d_", "NOEMÍ"},
	{"ODONTOLOGÃ_x008d_A", "ODONTOLOGÍA"},
	{"Ã¡", "á"},
	{"Ã©", "é"},
	{"Ã­", "í"},
	{"Ã³", "ó"},
	{"Ãº", "ú"},
	{"Ã±", "ñ"},
	{"ÃÑ", "Ñ"},
	{"Ãü", "ü"},
	{"Ã‚", "Â"},
	{"Ã¢", "â"},
	{"Ã¨", "è"},
	{"Ã¬", "ì"},
	{"Ã²", "ò"},
	{"Ã¹", "ù"},
	{"Ã§", "ç"},
}

// veronicaPattern collapses any garbled byte run between VER and NICA.
// Applied only for titles mentioning TABOADA, where the corpus shows a
// corruption variant no literal table entry covers.
var veronicaPattern = regexp.MustCompile(`VER[^A-Z]*NICA`)

// Scrub cleans a copy of an agenda title for parsing. The original title is
// never scrubbed in place: record raw titles stay verbatim.
func Scrub(text string) string {
	if text == "" {
		return ""
	}
	scrubbed := text
	for _, r := range scrubTable {
		if strings.Contains(scrubbed, r.bad) {
			scrubbed = strings.ReplaceAll(scrubbed, r.bad, r.good)
		}
	}
	if strings.Contains(scrubbed, "TABOADA") {
		scrubbed = veronicaPattern.ReplaceAllString(scrubbed, "VERÓNICA")
	}
	return strings.TrimSpace(scrubbed)
}
