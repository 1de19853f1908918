// Package formatter provides markdown formatting utilities for exported
// files, currently table reflow.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"wp2md/pkg/frontmatter"
)

// FormatMarkdown reflows markdown tables in a document so that columns line
// up by display width. A front-matter block, if present, passes through
// unchanged.
func FormatMarkdown(content string) (string, error) {
	header, body, had, err := frontmatter.Split(content)
	if err != nil {
		return "", err
	}

	formatted := FormatBody(body)

	if had {
		return frontmatter.Join(header, formatted), nil
	}

	return formatted, nil
}

// FormatBody reflows markdown tables in body text with no front matter.
func FormatBody(body string) string {
	lines := strings.Split(body, "\n")

	var out []string

	var tableBuffer []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Table rows start and end with a pipe
		if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
			tableBuffer = append(tableBuffer, line)

			continue
		}

		if len(tableBuffer) > 0 {
			out = append(out, reflowTable(tableBuffer)...)
			tableBuffer = nil
		}

		out = append(out, line)
	}

	if len(tableBuffer) > 0 {
		out = append(out, reflowTable(tableBuffer)...)
	}

	return strings.Join(out, "\n")
}

// reflowTable re-renders a run of table rows with padded cells. Runs too
// short to contain a header and separator are returned untouched.
func reflowTable(rows []string) []string {
	if len(rows) < 2 {
		return rows
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, splitCells(row))
	}

	colCount := 0
	for _, cells := range table {
		if len(cells) > colCount {
			colCount = len(cells)
		}
	}

	if colCount == 0 {
		return rows
	}

	separatorIdx := -1
	if isSeparatorRow(table[1]) {
		separatorIdx = 1
	}

	// Column widths from content rows only, measured by display width so
	// wide characters line up
	widths := make([]int, colCount)

	for i, cells := range table {
		if i == separatorIdx {
			continue
		}

		for j, cell := range cells {
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	result := make([]string, 0, len(table))

	for i, cells := range table {
		var sb strings.Builder

		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			if i == separatorIdx {
				sb.WriteString(strings.Repeat("-", widths[j]))
			} else {
				cell := ""
				if j < len(cells) {
					cell = cells[j]
				}

				sb.WriteString(cell)

				if pad := widths[j] - runewidth.StringWidth(cell); pad > 0 {
					sb.WriteString(strings.Repeat(" ", pad))
				}
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())
	}

	return result
}

// splitCells breaks a table row into trimmed cell values, dropping the empty
// fragments produced by the leading and trailing pipes.
func splitCells(row string) []string {
	parts := strings.Split(row, "|")

	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}

	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}

	return cells
}

// isSeparatorRow reports whether every cell consists only of dashes, colons
// and spaces.
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}

	for _, cell := range cells {
		trim := strings.NewReplacer("-", "", ":", "", " ", "").Replace(cell)
		if trim != "" {
			return false
		}
	}

	return true
}
