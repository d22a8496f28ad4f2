package ingest

import (
	"path/filepath"
	"strings"
)

// sourceMarker maps a file-name marker substring to the institution label.
type sourceMarker struct {
	marker string
	source string
}

// sourceMarkers is checked in order, whole phrases before their generic
// prefixes ("HOSPITAL BOULOGNE" ahead of the bare "CAPS" fallback), so the
// most specific marker wins.
var sourceMarkers = []sourceMarker{
	{"HCSI", TabularSource},
	{"HOSPITAL BOULOGNE", "Hospital Boulogne"},
	{"HOSPITAL MATERNO", "Hospital Materno"},
	{"HOSPITAL ODONTOLOGICO", "Hospital Odontológico"},
	{"CAPS BARRIO OBRERO", "CAPS Barrio Obrero"},
	{"CAPS BECCAR", "CAPS Beccar"},
	{"CAPS LA RIBERA", "CAPS La Ribera"},
	{"CAPS BAJO BOULOGNE", "CAPS Bajo Boulogne"},
	{"CAPS DIAGONAL SALTA", "CAPS Diagonal Salta"},
	{"CAPS SAN ISIDRO LABRADOR", "CAPS San Isidro Labrador"},
	{"CAPS SAN PANTALEON", "CAPS San Pantaleón"},
	{"CAPS MARTINEZ", "CAPS Martínez"},
	{"CAPS VILLA ADELINA", "CAPS Villa Adelina"},
	{"CENTRO EL NIDO", "Centro El Nido"},
	{"CAPS", "CAPS"},
	{"CENTRO", "Centro de Salud"},
}

// InferSource derives the institution label from a file name via
// case-insensitive substring matching, falling back to the bare file name
// (without extension) when no marker matches.
func InferSource(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	upper := strings.ToUpper(base)
	for _, m := range sourceMarkers {
		if strings.Contains(upper, m.marker) {
			return m.source
		}
	}
	return base
}
