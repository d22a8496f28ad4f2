package mojibake

import "testing"

// knownBadCorpus pins the observed corrupted strings and their required
// repairs. This table is the contract for the substitution list: entries may
// overlap or be redundant, but every corpus string here must keep repairing
// to the same output.
var knownBadCorpus = []struct {
	name string
	in   string
	want string
}{
	{"munoz_right_quote", "MUÃ’OZ", "MUÑOZ"},
	{"munoz_left_quote", "MUÃ‘OZ", "MUÑOZ"},
	{"munoz_half_converted", "MUÁ‘OZ", "MUÑOZ"},
	{"munoz_hex_escape", "MUÃ_x0081_OZ", "MUÑOZ"},
	{"munoz_bare", "MUÃOZ", "MUÑOZ"},
	{"munoz_double_corruption", "MUÃIÃ±OZ", "MUÑOZ"},
	{"jimenez", "JIMÃ©NEZ", "JIMÉNEZ"},
	{"marquez", "MÃ¡RQUEZ", "MÁRQUEZ"},
	{"gomez", "GÃ³MEZ", "GÓMEZ"},
	{"veronica_quote_variant", "VERÃ\"NICA", "VERÓNICA"},
	{"noemi_hex", "NOEMÃ_x008d_", "NOEMÍ"},
	{"bare_hex_i", "CLIN_x008d_CA", "CLINÍCA"},
	{"bare_hex_a", "_x0081_LVAREZ", "ÁLVAREZ"},
	{"lowercase_vowels", "PediatrÃ­a GarcÃ­a LÃ³pez", "Pediatría García López"},
	{"accented_e_upper", "INÃ‰S", "INÉS"},
	{"enye_lower", "PeÃ±a", "Peña"},
	{"catch_all", "Ã LVAREZ", "Á LVAREZ"},
	{"full_title", "CARDIOLOGÃ­A - DRA. MUÃ’OZ - PROGRAMADA", "CARDIOLOGíA - DRA. MUÑOZ - PROGRAMADA"},
}

func TestRepair(t *testing.T) {
	for _, tc := range knownBadCorpus {
		t.Run(tc.name, func(t *testing.T) {
			got := Repair(tc.in)
			if got != tc.want {
				t.Errorf("Repair(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Repair is not contractually idempotent, but it must behave idempotently
// for every corpus-observed corruption. This is the regression net that
// keeps table reorderings honest.
func TestRepairIdempotentOnCorpus(t *testing.T) {
	for _, tc := range knownBadCorpus {
		t.Run(tc.name, func(t *testing.T) {
			once := Repair(tc.in)
			twice := Repair(once)
			if once != twice {
				t.Errorf("Repair not stable on corpus string %q: first %q, second %q", tc.in, once, twice)
			}
		})
	}
}

func TestRepairLongestPatternFirst(t *testing.T) {
	// If the single-character catch-all ran before the full surname entry,
	// the Ã inside the surname would become Á and the specific fix could
	// never fire.
	got := Repair("MUÃ’OZ")
	if got != "MUÑOZ" {
		t.Fatalf("catch-all fired before surname fix: got %q", got)
	}
	for i := 1; i < len(orderedRepairs); i++ {
		prev := len([]rune(orderedRepairs[i-1].bad))
		cur := len([]rune(orderedRepairs[i].bad))
		if cur > prev {
			t.Fatalf("repair table not sorted longest-first at %d: %q after %q",
				i, orderedRepairs[i].bad, orderedRepairs[i-1].bad)
		}
	}
}

func TestRepairEmptyAndClean(t *testing.T) {
	if got := Repair(""); got != "" {
		t.Errorf("Repair(\"\") = %q, want empty", got)
	}
	clean := "PEDIATRIA - DR. JUAN PEREZ"
	if got := Repair(clean); got != clean {
		t.Errorf("Repair(%q) = %q, want unchanged", clean, got)
	}
}

func TestScrub(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trimmed", "  PEDIATRIA  ", "PEDIATRIA"},
		{"medica", "GUARDIA MÃ‰DICA", "GUARDIA MÉDICA"},
		{"clinica_hex", "CLÃ_x008d_NICA", "CLÍNICA"},
		{"pediatrica_hex", "PEDIÃ_x0081_TRICA", "PEDIÁTRICA"},
		{"odontologia_hex", "ODONTOLOGÃ_x008d_A", "ODONTOLOGÍA"},
		{"box_drawing_veronica", "VER├ôNICA", "VERÓNICA"},
		{"taboada_patch", "TABOADA VER##NICA", "TABOADA VERÓNICA"},
		{"no_taboada_no_patch", "VER##NICA", "VER##NICA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Scrub(tc.in); got != tc.want {
				t.Errorf("Scrub(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
