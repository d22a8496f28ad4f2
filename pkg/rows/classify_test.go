package rows

import "testing"

func row(cells ...string) Row {
	return FromStrings(cells)
}

func TestIsAgendaTitle(t *testing.T) {
	cases := []struct {
		name string
		row  Row
		want bool
	}{
		{"title_shape", row("PEDIATRIA - DR. PEREZ", "", ""), true},
		{"room_text_still_title", row("CONSULTORIO 5", "", ""), true},
		{"arbitrary_text_still_title", row("zzz 123 !!", "", ""), true},
		{"second_cell_present", row("PEDIATRIA", "x", ""), false},
		{"third_cell_present", row("PEDIATRIA", "", "x"), false},
		{"first_cell_empty", row("", "", ""), false},
		{"first_cell_blank", row("   ", "", ""), false},
		{"ragged_short_row", row("PEDIATRIA"), true},
		{"ragged_but_three", row("PEDIATRIA", "", "", "", ""), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAgendaTitle(tc.row); got != tc.want {
				t.Errorf("IsAgendaTitle(%v) = %v, want %v", tc.row, got, tc.want)
			}
		})
	}
}

func TestIsSchedule(t *testing.T) {
	cases := []struct {
		name string
		row  Row
		want bool
	}{
		{"plain_day", row("LUNES", "08:00", "12:00"), true},
		{"mixed_case_day", row("Miércoles", "08:00", "12:00"), true},
		{"unaccented_day", row("MIERCOLES", "8:00", "12:00"), true},
		{"day_inside_text", row("LUNES (feriado)", "08:00", "12:00"), true},
		{"header_not_schedule", row("DÍA", "Hora inicio", "Hora fin"), false},
		{"header_unaccented", row("DIA", "Hora inicio", "Hora fin"), false},
		{"missing_start", row("LUNES", "", "12:00"), false},
		{"missing_end", row("LUNES", "08:00", ""), false},
		{"no_day_token", row("FERIADO", "08:00", "12:00"), false},
		{"empty_first", row("", "08:00", "12:00"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSchedule(tc.row); got != tc.want {
				t.Errorf("IsSchedule(%v) = %v, want %v", tc.row, got, tc.want)
			}
		})
	}
}

func TestIsHeader(t *testing.T) {
	cases := []struct {
		name string
		row  Row
		want bool
	}{
		{"accented", row("DÍA", "Hora inicio", "Hora fin"), true},
		{"unaccented", row("DIA", "Hora inicio", "Hora fin"), true},
		{"padded_lowercase", row("  día ", "x", "y"), true},
		{"missing_companions", row("DÍA", "", ""), false},
		{"not_header", row("LUNES", "08:00", "12:00"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsHeader(tc.row); got != tc.want {
				t.Errorf("IsHeader(%v) = %v, want %v", tc.row, got, tc.want)
			}
		})
	}
}

// Classification must be a pure function of the presence bitmask plus the
// first cell's literal text. Swapping arbitrary content into the present
// cells of a title-shaped row must not change the verdict.
func TestClassifierContentAgnostic(t *testing.T) {
	contents := []string{
		"PEDIATRIA - DR. PEREZ - PROGRAMADA",
		"CONSULTORIO 5",
		"12345",
		"!!! ???",
		"GUARDIA MEDICA PEDIATRICA",
	}
	for _, content := range contents {
		if !IsAgendaTitle(row(content, "", "")) {
			t.Errorf("IsAgendaTitle rejected title-shaped row with content %q", content)
		}
		if IsAgendaTitle(row(content, "filled", "filled")) {
			t.Errorf("IsAgendaTitle accepted schedule-shaped row with content %q", content)
		}
	}
}

func TestClockText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"08:00", "08:00"},
		{"8:00", "08:00"},
		{"8:30 hs", "08:30"},
		{"08:00:00", "08:00"},
		{"7.5", "07:30"},
		{"0.3125", "07:30"},
		{"0.5", "12:00"},
		{"", ""},
		{"mediodía", ""},
		{"99", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := ClockText(tc.in); got != tc.want {
				t.Errorf("ClockText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCellClock(t *testing.T) {
	if got := CellClock(ClockCell(7, 5)); got != "07:05" {
		t.Errorf("CellClock(ClockCell(7,5)) = %q, want 07:05", got)
	}
	if got := CellClock(TextCell("13:45")); got != "13:45" {
		t.Errorf("CellClock(TextCell) = %q, want 13:45", got)
	}
	if got := CellClock(Cell{}); got != "" {
		t.Errorf("CellClock(empty) = %q, want empty", got)
	}
}

func TestRowAtOutOfRange(t *testing.T) {
	r := row("a")
	if r.At(5).Present() {
		t.Error("At past end must read as empty")
	}
	if r.At(-1).Present() {
		t.Error("At(-1) must read as empty")
	}
}
