package schedule

import "testing"

func TestValid(t *testing.T) {
	cases := []struct {
		name   string
		record Record
		want   bool
	}{
		{"day_and_both_times", Record{Day: "Lunes", Start: "08:00", End: "12:00"}, true},
		{"day_and_start_only", Record{Day: "Lunes", Start: "08:00"}, true},
		{"day_and_end_only", Record{Day: "Lunes", End: "12:00"}, true},
		{"day_without_times", Record{Day: "Lunes"}, false},
		{"times_without_day", Record{Start: "08:00", End: "12:00"}, false},
		{"empty", Record{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.Valid(); got != tc.want {
				t.Errorf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizeDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"LUNES", "Lunes"},
		{"lunes", "Lunes"},
		{"  MIÉRCOLES ", "Miércoles"},
		{"MIERCOLES", "Miércoles"},
		{"SÁB", "Sábado"},
		{"Sábado", "Sábado"},
		{"Feriado", "Feriado"}, // unknown values fall through raw
	}
	for _, tc := range cases {
		if got := NormalizeDay(tc.in); got != tc.want {
			t.Errorf("NormalizeDay(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDayCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"LUN", "Lunes"},
		{"MIE", "Miércoles"},
		{"SAB", "Sábado"},
		{"DOM", "Domingo"},
		{"VIERNES", "Viernes"},
		{"X", "X"},
	}
	for _, tc := range cases {
		if got := NormalizeDayCode(tc.in); got != tc.want {
			t.Errorf("NormalizeDayCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Every canonicalized known spelling must land inside the canonical set.
func TestNormalizedDaysAreCanonical(t *testing.T) {
	canonical := make(map[string]bool, len(CanonicalDays))
	for _, day := range CanonicalDays {
		canonical[day] = true
	}
	for spelling := range walkerDays {
		if !canonical[NormalizeDay(spelling)] {
			t.Errorf("NormalizeDay(%q) = %q not canonical", spelling, NormalizeDay(spelling))
		}
	}
	for spelling := range tabularDays {
		if !canonical[NormalizeDayCode(spelling)] {
			t.Errorf("NormalizeDayCode(%q) = %q not canonical", spelling, NormalizeDayCode(spelling))
		}
	}
}
