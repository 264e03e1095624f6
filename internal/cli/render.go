package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/workplace/internal/models"
	"github.com/mattn/go-runewidth"
)

const (
	maxCellWidth = 32
	emptyCell    = "-"

	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

var tableHeaders = []string{"ID", "NAME", "CONTACT", "EMAIL"}

// renderTable writes employees as an aligned table. Widths are measured in
// terminal cells, so wide (CJK) and combined characters line up. Long cells
// are truncated. In dark mode the header is printed in bold.
func renderTable(w io.Writer, list []models.Employee, dark bool) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No employees found.")
		return
	}

	rows := make([][]string, 0, len(list))
	for _, e := range list {
		email := e.Email
		if email == "" {
			email = emptyCell
		}
		rows = append(rows, []string{e.ID, e.Name, e.Contact, email})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], min(runewidth.StringWidth(cell), maxCellWidth))
		}
	}

	header := formatRow(tableHeaders, widths)
	if dark {
		header = ansiBold + header + ansiReset
	}
	fmt.Fprintln(w, header)

	seps := make([]string, len(widths))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(seps, "-+-"))

	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row, widths))
	}
}

func formatRow(cells []string, widths []int) string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		cell = runewidth.Truncate(cell, widths[i], "…")
		out[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(out, " | "), " ")
}

// describeCriteria formats the non-empty search fields, e.g. `id~"1" name~"jo"`.
func describeCriteria(c models.Criteria) string {
	var parts []string
	for _, f := range []struct{ name, value string }{
		{"id", c.ID}, {"name", c.Name}, {"contact", c.Contact}, {"email", c.Email},
	} {
		if f.value != "" {
			parts = append(parts, fmt.Sprintf("%s~%q", f.name, f.value))
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}
