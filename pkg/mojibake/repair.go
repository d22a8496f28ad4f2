// Package mojibake repairs accented text that was corrupted by UTF-8 bytes
// being decoded as Latin-1 and re-exported through intermediate systems.
// The scheduling exports carry two distinct corruption layers: the raw
// double-encoded sequences ("Ã¡" for "á") and literal hex escapes that one
// exporter writes for control bytes ("_x008d_" for "Í").
//
// The fix is an ordered literal substitution table, not a decoder: the
// observed corpus mixes half-repaired text with fresh corruption, so a real
// re-decode would mangle the already-correct parts.
package mojibake

import (
	"sort"
	"strings"
)

type replacement struct {
	bad  string
	good string
}

// repairTable maps corrupted sequences to their intended text. Entries are
// scanned longest-pattern-first so that full known cases (a garbled MUÑOZ)
// win over the shorter generic fixes, and the single-character "Ã" -> "Á"
// catch-all runs only when nothing more specific applies.
//
// Invisible characters are escaped: ‘/’ are curly single quotes,
// “/” curly double quotes, ­ a soft hyphen,   a
// non-breaking space.
var repairTable = []replacement{
	// Complete surname cases.
	{"MUÃ’OZ", "MUÑOZ"},
	{"MUÃ‘OZ", "MUÑOZ"},
	{"MUÁ‘OZ", "MUÑOZ"}, // already half-converted Á variant
	{"MUÃ_x0081_OZ", "MUÑOZ"},
	{"MUÃOZ", "MUÑOZ"},
	{"MUÃIÃ±OZ", "MUÑOZ"},
	{"JIMÃ©NEZ", "JIMÉNEZ"},
	{"MÃ¡RQUEZ", "MÁRQUEZ"},
	{"GÃ³MEZ", "GÓMEZ"},

	// Eñe variants.
	{"Á‘", "Ñ"},
	{"Ã’", "Ñ"},
	{"Ã‘", "Ñ"},
	{"ÃÑ", "Ñ"},
	{"Ã±", "ñ"},

	// Ó variants, specific before generic.
	{"Ã\"NICA", "ÓNICA"},
	{"Á”", "Ó"},
	{"Á“", "Ó"},
	{"Ã”", "Ó"},
	{"Ã“", "Ó"},
	{"Ã\"", "Ó"},
	{"Í\"", "Ó"},

	// Hex-escaped control bytes.
	{"Ã_x008d_", "Í"},
	{"Ã_x0081_", "Á"},
	{"_x008d_", "Í"},
	{"_x0081_", "Á"},

	// Plain double-encoded vowels and consonants.
	{"Ã¡", "á"},
	{"Ã©", "é"},
	{"Ã­", "í"},
	{"Ã³", "ó"},
	{"Ãº", "ú"},
	{"Ã‰", "É"},
	{"Ãš", "Ú"},
	{"Ã ", "à"},
	{"Ã¨", "è"},
	{"Ã¬", "ì"},
	{"Ã²", "ò"},
	{"Ã¹", "ù"},
	{"Ã¤", "ä"},
	{"Ã«", "ë"},
	{"Ã¯", "ï"},
	{"Ã¶", "ö"},
	{"Ã¼", "ü"},
	{"Ã¢", "â"},
	{"Ãª", "ê"},
	{"Ã®", "î"},
	{"Ã´", "ô"},
	{"Ã»", "û"},
	{"Ã§", "ç"},
	{"Ã‡", "Ç"},

	// Generic catch-all, must sort last.
	{"Ã", "Á"},
}

var orderedRepairs = sortByPatternLength(repairTable)

// sortByPatternLength orders a table longest-pattern-first, measured in
// runes. The sort is stable so equal-length entries keep table order.
func sortByPatternLength(table []replacement) []replacement {
	ordered := make([]replacement, len(table))
	copy(ordered, table)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len([]rune(ordered[i].bad)) > len([]rune(ordered[j].bad))
	})
	return ordered
}

// Repair fixes corrupted accented characters in text. Empty input is
// returned unchanged. Each pattern is a plain substring replacement;
// several patterns may fire in sequence on the same string.
func Repair(text string) string {
	if text == "" {
		return text
	}
	repaired := text
	for _, r := range orderedRepairs {
		if strings.Contains(repaired, r.bad) {
			repaired = strings.ReplaceAll(repaired, r.bad, r.good)
		}
	}
	return repaired
}
