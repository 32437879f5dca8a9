package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/gapalign/align"
)

// ErrNoGrid indicates a table or dump was requested without a retained grid.
var ErrNoGrid = errors.New("report: result carries no grid (use align.WithKeepGrid)")

// minCellWidth is the narrowest column of the score table.
const minCellWidth = 3

// WriteTable prints the cost table of g: sequence B runs along the header,
// sequence A down the row labels, the first row and column belong to the
// origin. When styled, the header and labels get a cyan background.
func WriteTable(w io.Writer, g *align.Grid, a, b string, styled bool) error {
	if g == nil {
		return ErrNoGrid
	}
	costs := g.Costs()

	width := minCellWidth
	for _, row := range costs {
		for _, v := range row {
			width = max(width, len(FormatScore(v)))
		}
	}

	label := func(s string) string { return s }
	if styled {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		style := r.NewStyle().Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0"))
		label = func(s string) string { return style.Render(s) }
	}

	cols := make([]string, 0, len(b))
	for _, r := range b {
		cols = append(cols, pad(string(r), width))
	}
	header := strings.Repeat(" ", 3+width+1) + strings.Join(cols, " ")
	if _, err := fmt.Fprintln(w, label(header)); err != nil {
		return err
	}

	ra := []rune(a)
	for i, row := range costs {
		rowLabel := "   "
		if i > 0 && i-1 < len(ra) {
			rowLabel = " " + string(ra[i-1]) + " "
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = pad(FormatScore(v), width)
		}
		if _, err := fmt.Fprintln(w, label(rowLabel)+strings.Join(cells, " ")); err != nil {
			return err
		}
	}

	return nil
}

// pad right-aligns s in width columns.
func pad(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}
