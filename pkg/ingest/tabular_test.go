package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Agendas HCSI.csv")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseTabularCSV(t *testing.T) {
	csvContent := "Especialidad,Subespecialidad,Profesional,Dia,Horario,TipoTurno\n" +
		"CARDIOLOGIA,GENERAL,PEREZ JUAN,LUN,08:00 a 12:00,PROGRAMADO\n" +
		"PEDIATRIA,NEONATOLOGIA,RIOS ANA,MIE,13:00 a 17:00,ESPONTANEO\n" +
		",,,JUE,08:00 a 12:00,\n" + // missing specialty: skipped
		"DERMATOLOGIA,,,VIERNES,14:00 a 18:00,SOBRETURNO\n"
	records, err := ParseTabularCSV(writeTempCSV(t, []byte(csvContent)))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	first := records[0]
	if first.AgendaID != "HCSI_001_CARDIOLOGIA" {
		t.Errorf("AgendaID = %q", first.AgendaID)
	}
	if first.RawTitle != "CARDIOLOGIA - PEREZ JUAN" {
		t.Errorf("GENERAL sub-specialty must be omitted from the title, got %q", first.RawTitle)
	}
	if first.Day != "Lunes" || first.Start != "08:00" || first.End != "12:00" {
		t.Errorf("first = %+v", first)
	}
	if first.Shift != "PROGRAMADA" {
		t.Errorf("Shift = %q, want PROGRAMADA", first.Shift)
	}
	if first.Doctor != "PEREZ JUAN" {
		t.Errorf("tabular physician must pass through untouched, got %q", first.Doctor)
	}

	second := records[1]
	if second.RawTitle != "PEDIATRIA - NEONATOLOGIA - RIOS ANA" {
		t.Errorf("RawTitle = %q", second.RawTitle)
	}
	if second.Shift != "CAI/Espontánea" {
		t.Errorf("Shift = %q, want CAI/Espontánea", second.Shift)
	}
	if second.Day != "Miércoles" {
		t.Errorf("Day = %q", second.Day)
	}

	third := records[2]
	if third.Doctor != "" || third.Shift != "SOBRETURNO" || third.Day != "Viernes" {
		t.Errorf("third = %+v", third)
	}
}

// A Latin-1 encoded export must decode, not corrupt. 0xD1 is Ñ in
// ISO 8859-1 and invalid as a UTF-8 start byte.
func TestParseTabularCSVLatin1(t *testing.T) {
	content := []byte("Especialidad,Subespecialidad,Profesional,Dia,Horario,TipoTurno\n" +
		"PEDIATRIA,,MU\xd1OZ LAURA,LUN,08:00 a 12:00,PROGRAMADO\n")
	records, err := ParseTabularCSV(writeTempCSV(t, content))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Doctor != "MUÑOZ LAURA" {
		t.Errorf("Doctor = %q, want MUÑOZ LAURA", records[0].Doctor)
	}
}

func TestParseTabularCSVMissingFile(t *testing.T) {
	if _, err := ParseTabularCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
