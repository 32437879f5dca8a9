// Package report renders alignment results: coloured alignment rows, the
// score table of a retained grid, JSON result documents and grid dumps.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/gapalign/align"
)

// Palette colours alignment columns by kind: matches green, mismatches red,
// gaps uncoloured.
type Palette struct {
	match    *color.Color
	mismatch *color.Color
}

// NewPalette returns a Palette; enabled=false renders plain text regardless
// of the terminal.
func NewPalette(enabled bool) Palette {
	p := Palette{
		match:    color.New(color.FgGreen),
		mismatch: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.match, p.mismatch} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// colorRow renders one row of the alignment, each rune coloured by its
// column's kind.
func (p Palette) colorRow(row []rune, kinds []align.ColumnKind) string {
	var sb strings.Builder
	for i, r := range row {
		if i >= len(kinds) || kinds[i] == align.Gap {
			sb.WriteRune(r)
			continue
		}
		c := p.mismatch
		if kinds[i] == align.Match {
			c = p.match
		}
		sb.WriteString(c.Sprint(string(r)))
	}

	return sb.String()
}

// WriteAlignment prints both rows of res coloured per column, then the score.
func WriteAlignment(w io.Writer, res align.Result, gap rune, p Palette) error {
	kinds := align.Classify(res.Alignment, gap)
	_, err := fmt.Fprintf(w, "%s\n%s\nScore: %s\n",
		p.colorRow([]rune(res.Alignment.First), kinds),
		p.colorRow([]rune(res.Alignment.Second), kinds),
		FormatScore(res.Score))

	return err
}

// FormatScore prints a score in its shortest exact decimal form ("-1.5", "4").
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
