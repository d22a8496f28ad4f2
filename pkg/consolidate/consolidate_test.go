package consolidate

import (
	"testing"

	"github.com/coolbeans/agendex/pkg/schedule"
)

func TestConsolidateFlattensInOrder(t *testing.T) {
	batchA := []schedule.Record{
		{AgendaID: "CAPS Beccar_001_X", Day: "Lunes", Start: "08:00", Source: "CAPS Beccar"},
		{AgendaID: "CAPS Beccar_002_Y", Day: "Martes", Start: "09:00", Source: "CAPS Beccar"},
	}
	batchB := []schedule.Record{
		{AgendaID: "HCSI_001_Z", Day: "Viernes", Start: "10:00", Source: "HCSI"},
	}

	records := Consolidate(batchA, batchB)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	wantIDs := []string{"CAPS Beccar_001_X", "CAPS Beccar_002_Y", "HCSI_001_Z"}
	for i, want := range wantIDs {
		if records[i].AgendaID != want {
			t.Errorf("records[%d].AgendaID = %q, want %q", i, records[i].AgendaID, want)
		}
	}
}

func TestConsolidateSaturdayPostFix(t *testing.T) {
	records := Consolidate([]schedule.Record{
		{Day: "Sáb", Start: "08:00", Source: "CAPS Beccar"},
		{Day: "Sábado", Start: "09:00", Source: "CAPS Beccar"},
		{Day: "Lunes", Start: "10:00", Source: "CAPS Beccar"},
	})
	for _, r := range records {
		if r.Day == "Sáb" {
			t.Errorf("abbreviated Saturday survived consolidation: %+v", r)
		}
	}
	if records[0].Day != "Sábado" {
		t.Errorf("records[0].Day = %q, want Sábado", records[0].Day)
	}
}

func TestConsolidateWindowAssignment(t *testing.T) {
	records := Consolidate([]schedule.Record{
		{Specialty: "PEDIATRIA", Source: "Hospital Materno"},
		{Specialty: "TRAUMATOLOGIA", Source: "Hospital Materno"},
		{Specialty: "OBSTETRICIA", Source: "Hospital Materno"},
		{Specialty: "OTORRINOLARINGOLOGIA", Source: "Hospital Materno"},
		// Same specialty elsewhere gets no label.
		{Specialty: "PEDIATRIA", Source: "CAPS Beccar"},
	})
	wantWindows := []string{"PEDIATRIA", "GUARDIA VIEJA", "OBSTETRICIA", "", ""}
	for i, want := range wantWindows {
		if records[i].Window != want {
			t.Errorf("records[%d].Window = %q, want %q", i, records[i].Window, want)
		}
	}
}

func TestWindowFor(t *testing.T) {
	cases := []struct {
		specialty string
		want      string
	}{
		{"PEDIATRIA", "PEDIATRIA"},
		{"pediatria", "PEDIATRIA"},
		{" CARDIOLOGIA ", "OBSTETRICIA"},
		{"CARDIOLOGIA INFANTIL", "PEDIATRIA"},
		{"CIRUGIA PLASTICA", "GUARDIA VIEJA"},
		{"HEMOTERAPIA", "OBSTETRICIA"},
		{"CLINICA MEDICA", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := WindowFor(tc.specialty); got != tc.want {
			t.Errorf("WindowFor(%q) = %q, want %q", tc.specialty, got, tc.want)
		}
	}
}

// A specialty listed under two counters goes to the first group in check
// order. The institution's counter sheet really does list these twice.
func TestWindowForDuplicateListingsFirstGroupWins(t *testing.T) {
	for _, specialty := range []string{"INFANTO JUVENIL", "PSICOLOGIA", "NUTRICION"} {
		if got := WindowFor(specialty); got != "PEDIATRIA" {
			t.Errorf("WindowFor(%q) = %q, want PEDIATRIA", specialty, got)
		}
	}
}
