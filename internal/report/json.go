package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/gapalign/align"
)

// Document is the JSON form of one alignment run.
type Document struct {
	First     Sequence      `json:"first"`
	Second    Sequence      `json:"second"`
	Score     float64       `json:"score"`
	Alignment [2]string     `json:"alignment"`
	Summary   align.Summary `json:"summary"`
	Path      [][2]int      `json:"path,omitempty"`
}

// Sequence names an input sequence.
type Sequence struct {
	ID  string `json:"id"`
	Seq string `json:"seq"`
}

// NewDocument assembles a Document; withPath includes the traceback path.
func NewDocument(first, second Sequence, res align.Result, gap rune, withPath bool) Document {
	doc := Document{
		First:     first,
		Second:    second,
		Score:     res.Score,
		Alignment: [2]string{res.Alignment.First, res.Alignment.Second},
		Summary:   align.Summarize(res.Alignment, gap),
	}
	if withPath {
		doc.Path = make([][2]int, len(res.Path))
		for i, c := range res.Path {
			doc.Path[i] = [2]int{c.Row, c.Col}
		}
	}

	return doc
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
