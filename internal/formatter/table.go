// Package formatter renders delegate reports as markdown.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minCellWidth keeps the separator at least "---".
const minCellWidth = 3

// renderTable lays out a markdown table with every column padded to its
// widest cell, measured in display width so CJK text lines up.
func renderTable(header []string, rows [][]string) []string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minCellWidth
	}

	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(escapeCell(cell)); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	measure(header)

	for _, row := range rows {
		measure(row)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, renderRow(header, colWidths))

	var sep strings.Builder

	sep.WriteString("|")

	for _, w := range colWidths {
		sep.WriteString(" ")
		sep.WriteString(strings.Repeat("-", w))
		sep.WriteString(" |")
	}

	lines = append(lines, sep.String())

	for _, row := range rows {
		lines = append(lines, renderRow(row, colWidths))
	}

	return lines
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = escapeCell(row[j])
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "\n", " ")
	return strings.ReplaceAll(cell, "|", `\|`)
}
