package consolidate

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/coolbeans/agendex/pkg/schedule"
)

// DistinctAgendas counts physically distinct agendas, grouping by raw title
// plus source. Titles repeat across institutions, so the title alone
// undercounts.
func DistinctAgendas(records []schedule.Record) int {
	seen := map[string]bool{}
	for _, r := range records {
		seen[r.RawTitle+"\x00"+r.Source] = true
	}
	return len(seen)
}

// WeeklyHours sums scheduled hours per doctor, counting only records whose
// start/end both parse and whose difference is positive. Doctors with no
// extracted name are excluded.
func WeeklyHours(records []schedule.Record) map[string]float64 {
	hours := map[string]float64{}
	for _, r := range records {
		if strings.TrimSpace(r.Doctor) == "" {
			continue
		}
		start, okStart := clockMinutes(r.Start)
		end, okEnd := clockMinutes(r.End)
		if !okStart || !okEnd || end <= start {
			continue
		}
		hours[r.Doctor] += float64(end-start) / 60
	}
	return hours
}

// Overlap is a pair of same-doctor same-day records whose [start, end)
// intervals intersect.
type Overlap struct {
	Doctor string
	Day    string
	First  schedule.Record
	Second schedule.Record
}

// SameCenter reports whether both conflicting records belong to the same
// institution. Cross-center overlaps are the ones management cares about.
func (o Overlap) SameCenter() bool {
	return o.First.Source == o.Second.Source
}

// DetectOverlaps finds every pairwise schedule conflict per doctor per day.
// Records without a doctor or without both times are ignored. Within a
// doctor's day the records are compared in start-time order, so First always
// starts at or before Second.
func DetectOverlaps(records []schedule.Record) []Overlap {
	byDoctorDay := map[string][]schedule.Record{}
	var keys []string
	for _, r := range records {
		if strings.TrimSpace(r.Doctor) == "" || r.Day == "" {
			continue
		}
		if _, ok := clockMinutes(r.Start); !ok {
			continue
		}
		if _, ok := clockMinutes(r.End); !ok {
			continue
		}
		key := r.Doctor + "\x00" + r.Day
		if _, seen := byDoctorDay[key]; !seen {
			keys = append(keys, key)
		}
		byDoctorDay[key] = append(byDoctorDay[key], r)
	}
	sort.Strings(keys)

	var overlaps []Overlap
	for _, key := range keys {
		day := byDoctorDay[key]
		sort.SliceStable(day, func(i, j int) bool {
			si, _ := clockMinutes(day[i].Start)
			sj, _ := clockMinutes(day[j].Start)
			return si < sj
		})
		for i := 0; i < len(day); i++ {
			s1, _ := clockMinutes(day[i].Start)
			e1, _ := clockMinutes(day[i].End)
			for j := i + 1; j < len(day); j++ {
				s2, _ := clockMinutes(day[j].Start)
				e2, _ := clockMinutes(day[j].End)
				if s1 < e2 && e1 > s2 {
					overlaps = append(overlaps, Overlap{
						Doctor: day[i].Doctor,
						Day:    day[i].Day,
						First:  day[i],
						Second: day[j],
					})
				}
			}
		}
	}
	return overlaps
}

func clockMinutes(clock string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}

// PrintReport writes the consolidation summary to w: totals, per-source
// counts, the most common specialties, day distribution, empty-field counts
// and schedule conflicts.
func PrintReport(w io.Writer, records []schedule.Record) {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	section := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintln(w, heading("=== REPORTE DE CONSOLIDACIÓN ==="))
	fmt.Fprintf(w, "Total de registros: %d\n", len(records))
	fmt.Fprintf(w, "Agendas distintas: %d\n", DistinctAgendas(records))
	fmt.Fprintf(w, "Efectores: %d\n", distinctNonEmpty(records, func(r schedule.Record) string { return r.Source }))
	fmt.Fprintf(w, "Doctores únicos: %d\n", distinctNonEmpty(records, func(r schedule.Record) string { return r.Doctor }))
	fmt.Fprintf(w, "Especialidades únicas: %d\n", distinctNonEmpty(records, func(r schedule.Record) string { return r.Specialty }))

	fmt.Fprintln(w, section("\n--- Efectores ---"))
	printCounts(w, records, func(r schedule.Record) string { return r.Source }, 0)

	fmt.Fprintln(w, section("\n--- Especialidades más comunes ---"))
	printCounts(w, records, func(r schedule.Record) string { return r.Specialty }, 10)

	fmt.Fprintln(w, section("\n--- Días de la semana ---"))
	printCounts(w, records, func(r schedule.Record) string { return r.Day }, 0)

	fmt.Fprintln(w, section("\n--- Registros con campos vacíos ---"))
	fmt.Fprintf(w, "Sin doctor: %d\n", countEmpty(records, func(r schedule.Record) string { return r.Doctor }))
	fmt.Fprintf(w, "Sin especialidad: %d\n", countEmpty(records, func(r schedule.Record) string { return r.Specialty }))
	fmt.Fprintf(w, "Sin tipo de turno: %d\n", countEmpty(records, func(r schedule.Record) string { return r.Shift }))
	fmt.Fprintf(w, "Sin día: %d\n", countEmpty(records, func(r schedule.Record) string { return r.Day }))

	overlaps := DetectOverlaps(records)
	fmt.Fprintln(w, section("\n--- Superposiciones de horario ---"))
	if len(overlaps) == 0 {
		fmt.Fprintln(w, "Sin conflictos detectados")
		return
	}
	warn := color.New(color.FgYellow).SprintFunc()
	crossCenter := 0
	for _, o := range overlaps {
		kind := "mismo centro"
		if !o.SameCenter() {
			kind = "centros diferentes"
			crossCenter++
		}
		fmt.Fprintf(w, "%s %s, %s: %s-%s (%s) y %s-%s (%s), %s\n",
			warn("conflicto:"), o.Doctor, o.Day,
			o.First.Start, o.First.End, o.First.Source,
			o.Second.Start, o.Second.End, o.Second.Source, kind)
	}
	fmt.Fprintf(w, "Total conflictos: %d (%d entre centros)\n", len(overlaps), crossCenter)
}

func distinctNonEmpty(records []schedule.Record, field func(schedule.Record) string) int {
	seen := map[string]bool{}
	for _, r := range records {
		if v := strings.TrimSpace(field(r)); v != "" {
			seen[v] = true
		}
	}
	return len(seen)
}

func countEmpty(records []schedule.Record, field func(schedule.Record) string) int {
	n := 0
	for _, r := range records {
		if strings.TrimSpace(field(r)) == "" {
			n++
		}
	}
	return n
}

// printCounts writes "value: count" lines, most common first, ties in
// alphabetical order so the report is stable run to run. Empty values are
// skipped; limit 0 means no limit.
func printCounts(w io.Writer, records []schedule.Record, field func(schedule.Record) string, limit int) {
	counts := map[string]int{}
	for _, r := range records {
		if v := strings.TrimSpace(field(r)); v != "" {
			counts[v]++
		}
	}
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] < values[j]
	})
	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}
	for _, v := range values {
		fmt.Fprintf(w, "%s: %d\n", v, counts[v])
	}
}
