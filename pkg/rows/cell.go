// Package rows models spreadsheet rows as loosely-typed cell sequences and
// classifies their structural role. Classification is deliberately
// content-agnostic: a row's role is decided by which cells are present or
// empty, never by what the text means, so the same classifier works across
// institutions with unpredictable title text.
package rows

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind discriminates the cell sum type.
type Kind int

const (
	// Empty is an absent or blank cell.
	Empty Kind = iota
	// Text holds an arbitrary scalar rendered as text.
	Text
	// Clock holds a time of day.
	Clock
)

// Cell is one spreadsheet cell. The zero value is an empty cell.
type Cell struct {
	Kind   Kind
	Text   string
	Hour   int
	Minute int
}

// TextCell builds a text cell. The text is kept verbatim: whitespace-only
// content stays a present cell, which matters to the title-row predicate.
func TextCell(text string) Cell {
	return Cell{Kind: Text, Text: text}
}

// ClockCell builds a time-of-day cell.
func ClockCell(hour, minute int) Cell {
	return Cell{Kind: Clock, Hour: hour, Minute: minute}
}

// FromString converts a raw cell value as read from a spreadsheet. The empty
// string means the cell is absent.
func FromString(raw string) Cell {
	if raw == "" {
		return Cell{}
	}
	return TextCell(raw)
}

// Present reports whether the cell holds a value.
func (c Cell) Present() bool {
	return c.Kind != Empty
}

// String renders the cell's text form. Clock cells render as HH:MM.
func (c Cell) String() string {
	switch c.Kind {
	case Clock:
		return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
	case Text:
		return c.Text
	default:
		return ""
	}
}

// Row is an ordered cell sequence. Rows from real exports are ragged;
// indexing past the end reads as empty.
type Row []Cell

// FromStrings builds a row from raw string cells, as returned by excelize
// GetRows or a CSV reader.
func FromStrings(raw []string) Row {
	row := make(Row, len(raw))
	for i, cell := range raw {
		row[i] = FromString(cell)
	}
	return row
}

// At returns the i-th cell, or an empty cell when out of range.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// ClockText extracts an HH:MM clock string from a raw cell value, zero
// padding the hour. It is the single time-conversion point shared by every
// adapter. Three forms are accepted:
//
//   - an H:MM or HH:MM substring anywhere in the text ("8:30", "08:30 hs")
//   - an Excel serial time fraction ("0.3125" is 07:30)
//   - a decimal hour count ("7.5" is 07:30), seen in hand-edited sheets
//
// Anything else yields the empty string.
func ClockText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if m := clockPattern.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s", hour, m[2])
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && f >= 0 {
		if f < 1 {
			minutes := int(f*24*60 + 0.5)
			return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
		}
		hours := int(f)
		if hours < 24 {
			return fmt.Sprintf("%02d:%02d", hours, int((f-float64(hours))*60))
		}
	}
	return ""
}

// CellClock extracts an HH:MM clock string from a cell, or empty when the
// cell holds nothing time-like.
func CellClock(c Cell) string {
	if c.Kind == Clock {
		return c.String()
	}
	if c.Kind == Text {
		return ClockText(c.Text)
	}
	return ""
}
