package title

import "regexp"

// specialtyRule pairs a canonical specialty label with the pattern that
// claims it. Rules run in table order against the upper-cased title and the
// first match wins, so table position encodes priority. veto, when set,
// suppresses the rule: it marks titles where a later, more specific rule
// must claim the match instead (RE2 has no negative lookahead, so the guard
// is a separate pattern checked after the structural match).
type specialtyRule struct {
	label   string
	pattern *regexp.Regexp
	veto    *regexp.Regexp
}

// specialtyRules covers the medical specialties, administrative departments
// and recurring misspellings seen across the institutions' titles. Order is
// load-bearing and matches the historically tuned list: some overlaps are
// deliberate (bare CIRUGIA claims vascular surgery titles too, as the
// legacy behavior did).
func specialtyRules() []specialtyRule {
	rule := func(label, pattern string) specialtyRule {
		return specialtyRule{label: label, pattern: regexp.MustCompile(pattern)}
	}
	return []specialtyRule{
		rule("PEDIATRIA", `\bPEDIATRIA\b`),
		rule("CARDIOLOGIA", `\bCARDIOLOGIA\b`),
		rule("NEUROLOGIA", `\bNEUROLOGIA\b`),
		rule("GINECOLOGIA", `\bGINECOLOGIA\b`),
		rule("UROLOGIA", `\bUROLOGIA\b`),
		rule("DERMATOLOGIA", `\bDERMATOLOGIA\b`),
		rule("OFTALMOLOGIA", `\bOFTALMOLOGIA\b`),
		rule("TRAUMATOLOGIA", `\bTRAUMATOLOGIA\b`),
		rule("ENDOCRINOLOGIA", `\bENDOCRINOLOGIA\b`),
		rule("GASTROENTEROLOGIA", `\bGASTROENTEROLOGIA\b`),
		rule("NEUMOLOGIA", `\bNEUMOLOGIA\b`),
		rule("HEMATOLOGIA", `\bHEMATOLOGIA\b`),
		rule("ONCOLOGIA", `\bONCOLOGIA\b`),
		rule("REUMATOLOGIA", `\bREUMATOLOGIA\b`),
		rule("INFECTOLOGIA", `\bINFECTOLOGIA\b`),
		rule("NEFROLOGIA", `\bNEFROLOGIA\b`),
		rule("CLINICA MEDICA", `\bCLINICA\s+MEDICA\b|\bMEDICO\s+CLINICO\b|\bMEDICA\s+CLINICA\b|\bMEDICO\s+CLINCO\b`),
		rule("MEDICINA INTERNA", `\bMEDICINA\s+INTERNA\b`),
		rule("CIRUGIA", `\bCIRUGIA\b`),
		rule("ANESTESIOLOGIA", `\bANESTESIOLOGIA\b`),
		rule("PSIQUIATRIA", `\bPSIQUIATRIA\b`),
		rule("HEMOTERAPIA", `\bHEMOTERAPIA\b`),
		rule("KINESIOLOGIA", `\bKINESIOLOGIA\b`),
		rule("LABORATORIO", `\bLABORATORIO\b`),
		rule("NUTRICION", `\bNUTRICION\b|\bNUTRICIONISTA\b`),
		rule("NEUROCIRUGÍA", `\bNEUROCIRUGIA\b`),
		rule("MEDICINA LABORAL", `\bMEDICINA\s+LABORAL\b`),
		rule("SERVICIO SOCIAL", `\bSERVICIO\s+SOCIAL\b|\bLIC\.\s*EN\s+TRABAJO\s+SOCIAL\b|\bTRABAJO\s+SOCIAL\b|\bTRABAJADORA\s+SOCIAL\b`),
		rule("DIABETOLOGIA", `\bDIABETOLOGIA\b`),
		{
			label:   "GUARDIA MEDICA",
			pattern: regexp.MustCompile(`\bGUARDIA\s+MEDICA\b`),
			// A qualified guardia belongs to the clinical or pediatric rule below.
			veto: regexp.MustCompile(`\bGUARDIA\s+MEDICA\s+(?:CLINICA|PEDIATRICA|PEDI)`),
		},
		rule("GUARDIA CLINICA", `\bGUARDIA\s+M[EÉ]DICA\s+CL[IÍ]NICA\b`),
		rule("GUARDIA PEDIATRICA", `\bGUARDIA\s+M[EÉ]DICA\s+PEDI[AÁ]TRICA\b`),
		rule("DIRECCION MEDICA", `\bDIRECTOR\s+MEDICO\b|\bDIRECCION\s+MEDICA\b`),
		rule("ANATOMIA PATOLOGICA", `\bANATOMIA\s+PATOLOGICA\b|A\.\s*PATOLOGICA`),
		rule("CIRUGIA VASCULAR", `\bCIRUGIA\s+VASCULAR\b`),
		rule("OTORRINOLARINGOLOGIA", `\bOTORRINOLARINGOLOGIA\b`),
		rule("NEUMONOLOGIA", `\bNEUMONOLOGIA\b`),
		rule("ODONTOLOGIA", `\bODONTOLOGIA\b|\bODONTOLOGÍA\b|\bODONTOLGIA\b`),
		rule("ADOLESCENCIA", `\bADOLESCENCIA\b`),
		rule("RADIOLOGIA", `\bRADIOLOGIA\b`),
		rule("ENDODONCIA", `\bENDODONCIA\b`),
		rule("PROTESIS", `\bPROTESIS\b`),
		rule("ESTIMULACION TEMPRANA", `\bESTIMULACION\s+TEMPRANA\b`),
		rule("PSICOLOGIA", `\bPSICOLOG[AO]\b|\bLIC\.\s*EN\s+PSICOLOGIA\b|\bPSICOLOGIA\s+INFANTIL\b|\bPSICOLOGIA\s*(?:-\s*(?:LIC|DR|DRA))?\b`),
		rule("OBSTETRICIA", `\bOBSTETRICIA\b`),
		rule("ECOGRAFIA", `\bECOGRAFIAS?\b|\bDIAGNOSTICO\s+POR\s+IMAGENES\b`),
		rule("PSICOFISICO", `\bPSICOFISICO\b`),
		rule("GENETICA", `\bGENETICA\b|\bGENÉTICA\b`),
		rule("TRACTO GENITAL INFERIOR", `\bTRACTO\s+GENITAL\s+INFERIOR\b`),
		rule("MEDICINA GENERAL", `\bGENERALISTA\b|\bMEDICINA\s+GENERAL\b`),
		rule("MEDICINA FAMILIAR", `\bMEDICINA\s+FAMILIAR\b`),
		rule("SALUD SEXUAL", `\bSALUD\s+SEXUAL\b`),
		rule("MEDICINA PREVENTIVA", `\bCHARLA\s+TABAQUISMO\b|\bRONDA\s+SANITARIA\b|\bMEDICINA\s+PREVENTIVA\b`),
		rule("MUSICOTERAPIA", `\bMUSICOTERAPIA\b`),
		rule("FONOAUDIOLOGIA", `\bFONOAUDIOLOGIA\b`),
		rule("TERAPIA OCUPACIONAL", `\bTERAPIA\s+OCUPACIONAL\b`),
		rule("PSICOPEDAGOGIA", `\bPSICOPEDAGOGIA\b`),
		rule("ENFERMERIA", `\bENFERMERIA\b|\bENFERMERÍA\b|\bLIC\.\s*EN\s+ENFERMERIA\b|\bLIC\.\s*EN\s+ENFERMERÍA\b|\bENFERMER[AO]\b`),
	}
}

// specialty returns the first matching specialty label for an upper-cased
// title, or empty when no rule claims it.
func (d *Decomposer) specialty(upperTitle string) string {
	for _, rule := range d.specialtyTable {
		if rule.veto != nil && rule.veto.MatchString(upperTitle) {
			continue
		}
		if rule.pattern.MatchString(upperTitle) {
			return rule.label
		}
	}
	return ""
}
