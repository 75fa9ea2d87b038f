// Package ui formats taskdown's terminal output: tables, ID highlighting,
// ages, and status styling.
package ui

import (
	"strings"
	"unicode/utf8"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table. Column widths
// count visible characters, so ANSI-styled cells still line up. Columns are
// separated by two spaces and the last column is never padded.
func FormatTable(headers []string, rows [][]string) string {
	table := make([][]string, 0, len(rows)+1)
	table = append(table, sanitizeRow(headers))
	for _, row := range rows {
		table = append(table, sanitizeRow(row))
	}

	widths := make([]int, len(headers))
	for _, row := range table {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}

	var out strings.Builder
	for _, row := range table {
		for i, cell := range row {
			out.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			out.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+2))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// TruncateTableCell limits cell width while preserving visible characters.
func TruncateTableCell(value string) string {
	value = normalizeTableCell(value)
	if displayWidth(value) <= tableCellMaxWidth {
		return value
	}

	keep := tableCellMaxWidth - len(tableCellEllipsis)
	if keep <= 0 {
		return tableCellEllipsis
	}
	return truncateVisible(value, keep) + tableCellEllipsis
}

func sanitizeRow(row []string) []string {
	sanitized := make([]string, len(row))
	for i, cell := range row {
		sanitized[i] = normalizeTableCell(cell)
	}
	return sanitized
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSICodes(value))
}

func normalizeTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

// truncateVisible keeps the first max visible runes, passing ANSI escape
// sequences through so styling is not cut mid-sequence.
func truncateVisible(value string, max int) string {
	if max <= 0 {
		return ""
	}

	var out strings.Builder
	visible := 0
	for i := 0; i < len(value); {
		if seq := ansiSequenceAt(value, i); seq > 0 {
			out.WriteString(value[i : i+seq])
			i += seq
			continue
		}
		if visible >= max {
			break
		}
		r, size := utf8.DecodeRuneInString(value[i:])
		if r == utf8.RuneError && size == 1 {
			out.WriteByte(value[i])
		} else {
			out.WriteRune(r)
		}
		visible++
		i += size
	}
	return out.String()
}

// ansiSequenceAt returns the length of the CSI escape sequence starting at i,
// or 0 when there is none.
func ansiSequenceAt(value string, i int) int {
	if i+1 >= len(value) || value[i] != '\x1b' || value[i+1] != '[' {
		return 0
	}
	end := i + 2
	for end < len(value) && value[end] != 'm' {
		end++
	}
	if end < len(value) {
		end++
	}
	return end - i
}

func stripANSICodes(input string) string {
	var out strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		switch {
		case inEscape:
			if input[i] == 'm' {
				inEscape = false
			}
		case input[i] == '\x1b':
			inEscape = true
		default:
			out.WriteByte(input[i])
		}
	}
	return out.String()
}
