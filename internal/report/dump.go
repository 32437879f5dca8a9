package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gapalign/align"
)

// DumpFormat selects the grid dump encoding.
type DumpFormat string

const (
	// DumpJSON writes a JSON array with one grid row per line.
	DumpJSON DumpFormat = "json"
	// DumpYAML writes a YAML document with a rows sequence.
	DumpYAML DumpFormat = "yaml"
)

// ParseDumpFormat validates a user-supplied dump format.
func ParseDumpFormat(s string) (DumpFormat, error) {
	switch DumpFormat(s) {
	case DumpJSON, DumpYAML:
		return DumpFormat(s), nil
	default:
		return "", fmt.Errorf("report: unknown dump format %q (json|yaml)", s)
	}
}

// dumpCell is the serialized form of one grid cell. From is nil for the origin.
type dumpCell struct {
	Cost float64 `json:"cost" yaml:"cost"`
	Row  int     `json:"row" yaml:"row"`
	Col  int     `json:"col" yaml:"col"`
	From *[2]int `json:"from" yaml:"from,flow"`
}

type dumpDoc struct {
	Rows [][]dumpCell `yaml:"rows"`
}

func dumpRows(g *align.Grid) [][]dumpCell {
	rows := make([][]dumpCell, g.Rows())
	for r := range rows {
		rows[r] = make([]dumpCell, g.Cols())
		for c := range rows[r] {
			cell := g.At(r, c)
			dc := dumpCell{Cost: cell.Cost, Row: cell.Row, Col: cell.Col}
			if cell.Prev != align.NoPredecessor {
				p := g.Coordinate(cell.Prev)
				dc.From = &[2]int{p.Row, p.Col}
			}
			rows[r][c] = dc
		}
	}

	return rows
}

// DumpGrid writes every cell of g (cost, coordinates, predecessor
// coordinates) in the requested format.
func DumpGrid(w io.Writer, g *align.Grid, format DumpFormat) error {
	if g == nil {
		return ErrNoGrid
	}
	rows := dumpRows(g)

	switch format {
	case DumpYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dumpDoc{Rows: rows}); err != nil {
			return fmt.Errorf("report: yaml dump: %w", err)
		}
		return enc.Close()
	case DumpJSON:
		var buf bytes.Buffer
		buf.WriteString("[\n")
		for i, row := range rows {
			line, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("report: json dump: %w", err)
			}
			buf.Write(line)
			if i < len(rows)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("]\n")
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("report: unknown dump format %q", format)
	}
}
