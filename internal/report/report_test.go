package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gapalign/align"
	"github.com/katalvlaran/gapalign/internal/report"
)

// TestWriteAlignment_Plain checks the uncoloured rows and score line.
func TestWriteAlignment_Plain(t *testing.T) {
	res := align.MustAlign("GAT", "GT")
	var buf bytes.Buffer
	require.NoError(t, report.WriteAlignment(&buf, res, align.DefaultGap, report.NewPalette(false)))
	assert.Equal(t, "GAT\nG-T\nScore: 3\n", buf.String())
}

// TestWriteAlignment_Colored checks matches and mismatches are wrapped in
// ANSI sequences while gap columns are not.
func TestWriteAlignment_Colored(t *testing.T) {
	res := align.MustAlign("GAT", "GCT")
	var buf bytes.Buffer
	require.NoError(t, report.WriteAlignment(&buf, res, align.DefaultGap, report.NewPalette(true)))
	out := buf.String()
	assert.Contains(t, out, "\x1b[32mG\x1b[0m", "match in green")
	assert.Contains(t, out, "\x1b[31mA\x1b[0m", "mismatch in red")
	assert.True(t, strings.HasSuffix(out, "Score: 3\n"), out)

	buf.Reset()
	gapped := align.MustAlign("GAT", "GT")
	require.NoError(t, report.WriteAlignment(&buf, gapped, align.DefaultGap, report.NewPalette(true)))
	assert.Contains(t, buf.String(), "\x1b[32mG\x1b[0m-\x1b[32mT\x1b[0m", "gap left uncoloured")
}

// TestFormatScore checks the shortest exact decimal form.
func TestFormatScore(t *testing.T) {
	assert.Equal(t, "-1.5", report.FormatScore(-1.5))
	assert.Equal(t, "4", report.FormatScore(4))
	assert.Equal(t, "0", report.FormatScore(0))
}

// TestWriteTable_Plain checks header, row labels and padding of the cost table.
func TestWriteTable_Plain(t *testing.T) {
	res := align.MustAlign("GAT", "GT", align.WithKeepGrid())
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, res.Grid, "GAT", "GT", false))
	want := strings.Join([]string{
		"           G    T",
		"      0   -1 -1.5",
		" G   -1    2    1",
		" A -1.5    1    1",
		" T   -2  0.5    3",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

// TestWriteTable_Styled verifies styled labels still carry the costs.
func TestWriteTable_Styled(t *testing.T) {
	res := align.MustAlign("AA", "AA", align.WithKeepGrid())
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, res.Grid, "AA", "AA", true))
	out := buf.String()
	assert.Contains(t, out, "\x1b[", "styled labels carry escape sequences")
	assert.Contains(t, out, "  4")
}

// TestWriteTable_NoGrid verifies a result without a retained grid is refused.
func TestWriteTable_NoGrid(t *testing.T) {
	err := report.WriteTable(&bytes.Buffer{}, nil, "", "", false)
	assert.ErrorIs(t, err, report.ErrNoGrid)
}

// TestDumpGrid_JSON checks the one-row-per-line JSON layout.
func TestDumpGrid_JSON(t *testing.T) {
	res := align.MustAlign("A", "G", align.WithKeepGrid())
	var buf bytes.Buffer
	require.NoError(t, report.DumpGrid(&buf, res.Grid, report.DumpJSON))

	want := "[\n" +
		`[{"cost":0,"row":0,"col":0,"from":null},{"cost":-1,"row":0,"col":1,"from":[0,0]}],` + "\n" +
		`[{"cost":-1,"row":1,"col":0,"from":[0,0]},{"cost":-1,"row":1,"col":1,"from":[0,0]}]` + "\n" +
		"]\n"
	assert.Equal(t, want, buf.String())

	var rows [][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows), "dump is valid JSON")
	assert.Len(t, rows, 2)
}

// TestDumpGrid_YAML checks the YAML rows and predecessor coordinates.
func TestDumpGrid_YAML(t *testing.T) {
	res := align.MustAlign("AA", "A", align.WithKeepGrid())
	var buf bytes.Buffer
	require.NoError(t, report.DumpGrid(&buf, res.Grid, report.DumpYAML))

	var doc struct {
		Rows [][]struct {
			Cost float64 `yaml:"cost"`
			Row  int     `yaml:"row"`
			Col  int     `yaml:"col"`
			From []int   `yaml:"from"`
		} `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Rows, 3)
	require.Len(t, doc.Rows[2], 2)
	sink := doc.Rows[2][1]
	assert.Equal(t, 1.0, sink.Cost)
	assert.Equal(t, []int{1, 1}, sink.From, "top wins the tie at the sink")
	assert.Nil(t, doc.Rows[0][0].From)
}

// TestDumpGrid_Errors covers a missing grid and an unknown format.
func TestDumpGrid_Errors(t *testing.T) {
	assert.ErrorIs(t, report.DumpGrid(&bytes.Buffer{}, nil, report.DumpJSON), report.ErrNoGrid)

	res := align.MustAlign("A", "A", align.WithKeepGrid())
	assert.Error(t, report.DumpGrid(&bytes.Buffer{}, res.Grid, report.DumpFormat("xml")))
}

// TestParseDumpFormat checks accepted and rejected format names.
func TestParseDumpFormat(t *testing.T) {
	f, err := report.ParseDumpFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, report.DumpYAML, f)

	_, err = report.ParseDumpFormat("csv")
	assert.Error(t, err)
}

// TestWriteJSON checks the JSON document round-trips with summary and path.
func TestWriteJSON(t *testing.T) {
	res := align.MustAlign("GATTACA", "GATCA")
	doc := report.NewDocument(
		report.Sequence{ID: "a", Seq: "GATTACA"},
		report.Sequence{ID: "b", Seq: "GATCA"},
		res, align.DefaultGap, true)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, doc))

	var got report.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 8.5, got.Score)
	assert.Equal(t, [2]string{"GATTACA", "GAT--CA"}, got.Alignment)
	assert.Equal(t, align.Summary{Length: 7, Matches: 5, Gaps: 2, Identity: 5.0 / 7.0}, got.Summary)
	assert.Len(t, got.Path, 8)
	assert.Equal(t, [2]int{7, 5}, got.Path[len(got.Path)-1])
}
