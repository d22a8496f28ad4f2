package consolidate

import "strings"

// WindowSource is the one institution that routes patients to physical
// counters by specialty. Every other source leaves the window label empty.
const WindowSource = "Hospital Materno"

// windowGroup maps one counter label to the fixed specialty list it serves.
// Groups are checked in order; a few specialties appear in more than one
// list in the institution's counter sheet and the first group keeps them.
type windowGroup struct {
	label       string
	specialties []string
}

var windowGroups = []windowGroup{
	{
		label: "PEDIATRIA",
		specialties: []string{
			"PEDIATRIA", "ADOLESCENCIA", "ALERGIA", "ALTO RIESGO", "DEGLUCION",
			"CARDIOLOGIA INFANTIL", "ENDOCRINOLOGIA", "ESPEIROMETRIA", "FONOAUDIOLOGIA",
			"GASTROENTEROLOGIA", "HEPATOLOGIA", "GENETICA INFANTIL", "INFANTO JUVENIL",
			"INFECTOLOGIA INFANTIL", "MEDIANO RIESGO", "NEFROLOGIA", "NEUMOLOGIA",
			"NEUROLOGIA", "ELECTROENCEFALOGRAMA", "NUTRICION", "OAES- PEAT",
			"OFTAMOLOGIA", "RESIDENTES PEDIATRIA (POST ALTA)", "RESIDENTES NIÑO SANO",
			"PSICOLOGIA", "PSIQUIATRIA", "TBC (TUBERCULOSIS)",
		},
	},
	{
		label: "GUARDIA VIEJA",
		specialties: []string{
			"GUARDIA VIEJA", "TRAUMATOLOGIA", "DERMATOLOGIA", "CIRUGIA", "UROLOGIA",
			"CRANEO FACIAL", "OTORRINO", "AUDIOMETRIA", "KINESIOLOGIA", "CIRUGIA PLASTICA",
		},
	},
	{
		label: "OBSTETRICIA",
		specialties: []string{
			"OBSTETRICIA", "INFECTOLOGIA ADULTOS", "TRACTO GENITAL (PAP)", "CARDIOLOGIA",
			"PUERPERIO", "OBSTETRICIA ALTO RIESGO", "OBSTETRICIA BAJO RIESGO",
			"RESIDENTES 1º VEZ", "GINECOLOGIA QUIRURGICA", "GENETICA", "INFANTO JUVENIL",
			"ELECTROCARDIOGRAMA", "PSICOLOGIA", "ODONTOLOGIA", "NUTRICION",
			"DIABETOLOGIA", "PLANIFICACION FAMILIAR", "HEMOTERAPIA",
		},
	},
}

// WindowFor returns the counter label serving a specialty, or empty when the
// specialty is not on any counter's list.
func WindowFor(specialty string) string {
	upper := strings.ToUpper(strings.TrimSpace(specialty))
	if upper == "" {
		return ""
	}
	for _, group := range windowGroups {
		for _, s := range group.specialties {
			if s == upper {
				return group.label
			}
		}
	}
	return ""
}
