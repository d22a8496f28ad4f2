package title

import (
	"regexp"
	"strings"
)

// shiftTail is the run of shift/activity keywords that may follow a name and
// must terminate the capture.
const shiftTail = `PROGRAMADA|ESPONTANEA|ESPONTÁNEA|GENERAL|TRATAMIENTO|PAP|CAI|RECITADOS|RECIEN\s+NACIDOS|EMBARAZADAS|CONTROL|URGENCIA|SOBRETURNO|DIU|IMPLANTE|EXTRACCION|COLOCACION|AGENDA\s+BIS|REUNION\s+EQUIPO`

// doctorPatterns are the candidate-name extractors, most specific first.
// Each captures exactly one group: the candidate name, sometimes including a
// DR/DRA/DOCTOR prefix which is preserved in the output. A failed candidate
// does not abort the cascade; the next pattern gets its chance.
func doctorPatterns() []*regexp.Regexp {
	raw := []string{
		// ESPECIALIDAD - DRA/DR NOMBRE APELLIDO - EVENTUAL (only EVENTUAL)
		`\b(?:ODONTOLOGIA|PEDIATRIA)\s+(?:ADULTOS?|PEDIATRIA|INFANTIL)?\s*-\s*(DRA?\.\s*[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+)+)\s*-\s*EVENTUAL\s*$`,
		// ESPECIALIDAD - DRA/DR NOMBRE APELLIDO - (EVENTUAL) ESPONTANEA/PROGRAMADA
		`\b(?:ODONTOLOGIA|PEDIATRIA)\s+(?:ADULTOS?|PEDIATRIA|INFANTIL)?\s*-\s*(DRA?\.\s*[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+)+)\s*-\s*(?:EVENTUAL\s+)?(?:ESPONTANEA|PROGRAMADA)`,
		// PROFESION - DRA/DR NOMBRE - optional trailing activity
		`\b(?:PSICOLOG[OA]|NUTRICIONISTA|KINESIOLOGO|FONOAUDIOLOGO)\s*-\s*(DRA?\.\s*[A-Z].+?\s+.+?|DRA?\s+[A-Z].+?\s+.+?)(?:\s*-\s*\w+.*|\s*$)`,
		// ESTIMULACION TEMPRANA - DRA/DR NOMBRE (tolerates corrupted bytes)
		`\bESTIMULACION\s+TEMPRANA\s*-\s*(DRA?\.\s*[A-Z].+?\s+.+?)(?:\s*$|\s*-)`,
		// Profession followed directly by a name, then a shift keyword or the end
		`\b(?:NUTRICIONISTA|KINESIOLOGO|FONOAUDIOLOGO|TRABAJADOR[A]?\s+SOCIAL|TRABAJO\s+SOCIAL|PSICOLOG[OA])[\.\s]*[-\.\s]\s*([A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+)+)\s*(?:-\s*(?:GENERAL|TRATAMIENTO|PROGRAMADA|ESPONTANEA|ESPONTÁNEA|PAP|CAI|CONTROL|URGENCIA|SOBRETURNO|REUNION\s+DE\s+EQUIPO)|\s*$)`,
		// DRA./DR. plus name, stopping before shift keywords; prefix preserved
		`\b(DRA?\.\s*[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+)*)\s*(?:-\s*(?:EVENTUAL\s+)?(?:` + shiftTail + `)|\s*$)`,
		// DRA/DR without the dot; prefix preserved
		`\b(DRA?\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+)*)\s*(?:-\s*(?:EVENTUAL\s+)?(?:` + shiftTail + `)|\s*$)`,
		// DOCTOR/DOCTORA plus name; prefix preserved
		`\b(DOCTOR[A]?\s+[A-ZÁÉÍÓÚÑ].+?)(?:\s*-\s*(?:EVENTUAL\s+)?(?:` + shiftTail + `)|\s*$)`,
		// "APELLIDO ,NOMBRE" after a shift keyword
		`-\s*(?:A\s+LA\s+BREVEDAD|URGENCIA|PROGRAMADA|ESPONTANEA|ESPONTÁNEA)\s*-\s*([A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+\s*,\s*[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+)`,
		// LIC. EN <carrera> followed by the name; the character class admits
		// leftover hex-escape runs so half-repaired names still capture whole
		`\bLIC\.\s*EN\s+PSICOLOGIA\s+([A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ_x0-9]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ_x0-9]+)*)`,
		`\bLIC\.\s*EN\s+TRABAJO\s+SOCIAL\s+(.+)$`,
		`\bLIC\.EN\s+NUTRICION\s*-\s*TRATAMIENTO\s*-\s*(.+)$`,
		`\bLIC\.\s*EN\s+KINESIOLOGIA\s+([A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ_x0-9]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ_x0-9]+)*)`,
		`\bLIC\.\s*EN\s+NUTRICION\s+([A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ_x0-9]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ_x0-9]+)*)`,
		// Bare LIC. plus name
		`\bLIC\.\s*([A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-záéíóúñ]+)*)`,
		// Trailing "- Nombre Apellido" in title case, last resort
		`[-\s]+([A-ZÁÉÍÓÚÑ][a-záéíóúñ]+(?:\s+[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+)+)$`,
	}
	patterns := make([]*regexp.Regexp, len(raw))
	for i, expr := range raw {
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}

// doctorExclusions rejects candidates that are generic terms rather than
// people. Matched by substring against the upper-cased candidate, so
// "RESIDENTE CARDIO" falls just like bare "RESIDENTE".
var doctorExclusions = []string{
	"PSICOLOGIA", "NUTRICION", "TRABAJO SOCIAL", "KINESIOLOGIA",
	"TRATAMIENTO", "GENERAL", "PAP", "ESPONTANEA", "PROGRAMADA",
	"EN PSICOLOGIA", "EN NUTRICION", "EN TRABAJO", "EN KINESIOLOGIA",
	"LICENCIADA", "LICENCIADO", "MEDICO", "MEDICA", "AGENDA SÁBADOS",
	"AGENDA SABADOS", "RESIDENTE", "AGENDA", "AGENDA BIS",
	"BIS", "DIU", "IMPLANTE", "EXTRACCION", "COLOCACION", "REUNION EQUIPO",
	"ADULTOS", "ADULTO", "INFANTIL", "INFANTILES", "NINOS", "NIÑOS",
	"ADOLESCENTES", "DISCAPACIDAD", "REHABILITACION", "REHABILITACIÓN",
	"PEDIATRICA", "PEDIÁTRICA", "CLINICA", "CLÍNICA", "EXTERNA",
	"CONSULTORIO", "SALA", "BOX", "QUIROFANO", "QUIRÓFANO",
	"ECG", "EKG", "RX", "LAB", "LABORATORIO", "RADIOLOGIA", "ECOGRAFIA", "TAC", "RMN",
}

// procedureLabels are lab/imaging/procedure codes and ward labels that the
// cascades occasionally capture whole. An exact (case-insensitive) match
// discards the candidate in the final correction pass.
var procedureLabels = []string{
	"ECG", "EKG", "RX", "LAB", "LABORATORIO", "RADIOLOGIA", "ECOGRAFIA", "TAC", "RMN", "PREOCUPACIONAL",
	"QUIROFANO", "CURACIONES", "PLASTICA", "TORAX", "ADULTOS", "NIÑOS HSI", "GENERAL DOS", "GENERAL UNO",
	"CABEZA Y CUELLO DOS", "CABEZA Y CUELLO UNO", "COLOPROCTOLOGIA UNO", "COLOPROCTOLOGIA DOS",
	"173 TECNICO", "200 TECNICO", "233 TECNICO", "122 TECNICO", "CARDIO RESIDENTES", "DIABETOLOGIA PRODIABA",
}

var (
	locationExactPattern    = regexp.MustCompile(`^(?:CONSULTORIO|SALA|BOX|QUIROFANO|QUIRÓFANO|PISO|PLANTA)\s*(?:\d+|[A-Z]|\w+)$`)
	locationAnywherePattern = regexp.MustCompile(`\b(?:CONSULTORIO|SALA|BOX|QUIROFANO|QUIRÓFANO|PISO|PLANTA)\b`)
	numericOnlyPattern      = regexp.MustCompile(`^\d+$`)
	qualifierSuffixPattern  = regexp.MustCompile(`(?i)\s*-\s*(DIU|IMPLANTE|EXTRACCION|COLOCACION|AGENDA\s+BIS|REUNION\s+EQUIPO)\s*$`)
	titlePrefixPattern      = regexp.MustCompile(`(?i)^(DRA?\.\s*|DRA?\s+|DOCTOR[A]?\s+)`)
	roomNumberPattern       = regexp.MustCompile(`(?i)CONSULTORIO\s+\d+`)
)

// doctor runs the candidate cascade over the cleaned title and returns the
// first candidate that survives validation, or empty.
func (d *Decomposer) doctor(cleanTitle string) string {
	extracted := ""
	for _, pattern := range d.doctorTable {
		m := pattern.FindStringSubmatch(cleanTitle)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if accepted, ok := validateDoctorCandidate(candidate); ok {
			extracted = accepted
			break
		}
	}
	return finalDoctorCorrections(extracted)
}

// validateDoctorCandidate applies the exclusion and location checks and, on
// acceptance, normalizes the candidate (suffix stripping, comma reordering,
// title-prefix preservation).
func validateDoctorCandidate(candidate string) (string, bool) {
	trimmed := strings.TrimSpace(candidate)
	if len([]rune(trimmed)) <= 2 {
		return "", false
	}
	upper := strings.ToUpper(trimmed)
	if locationExactPattern.MatchString(upper) {
		return "", false
	}
	if numericOnlyPattern.MatchString(trimmed) {
		return "", false
	}
	if locationAnywherePattern.MatchString(upper) {
		return "", false
	}
	for _, word := range doctorExclusions {
		if strings.Contains(upper, word) {
			return "", false
		}
	}

	name := qualifierSuffixPattern.ReplaceAllString(candidate, "")
	name = strings.TrimSpace(name)
	if titlePrefixPattern.MatchString(name) {
		return name, true
	}
	if strings.Contains(name, ",") {
		parts := strings.SplitN(name, ",", 2)
		if len(parts) == 2 && !strings.Contains(parts[1], ",") {
			surname := strings.TrimSpace(parts[0])
			given := strings.TrimSpace(parts[1])
			return given + " " + surname, true
		}
	}
	return name, true
}

// finalDoctorCorrections discards extractions that name rooms or procedures
// rather than people, regardless of which pattern produced them.
func finalDoctorCorrections(doctor string) string {
	if doctor == "" {
		return ""
	}
	if roomNumberPattern.MatchString(doctor) {
		return ""
	}
	upper := strings.ToUpper(strings.TrimSpace(doctor))
	for _, label := range procedureLabels {
		if upper == label {
			return ""
		}
	}
	return doctor
}
