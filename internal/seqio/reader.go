// Package seqio reads the two sequences to align from plain-text or FASTA
// input.
//
// A leading UTF-8 byte order mark is skipped. Input starting with '>' is
// FASTA, anything else is plain text.
//
// Plain text: the first two lines are the sequences; a trailing "\r" is
// dropped and a final newline after the first line makes an empty second
// sequence. FASTA: the first two records, sequence lines joined, header ID
// being the first word after '>'. Sequences are returned verbatim; case
// folding and alphabet checks are the caller's concern.
package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrMissingSequence indicates the input holds fewer than two sequences.
	ErrMissingSequence = errors.New("seqio: input must contain two sequences")
	// ErrMalformedFASTA indicates sequence data before the first header.
	ErrMalformedFASTA = errors.New("seqio: sequence data before first FASTA header")
)

// Format is the detected input layout.
type Format int

const (
	// Plain is two bare lines.
	Plain Format = iota
	// FASTA is '>'-headed records.
	FASTA
)

// String implements fmt.Stringer.
func (f Format) String() string {
	if f == FASTA {
		return "fasta"
	}

	return "plain"
}

// Record is one named sequence.
type Record struct {
	ID  string
	Seq string
}

// Pair is the two sequences to align and the format they were read from.
type Pair struct {
	First  Record
	Second Record
	Format Format
}

// ReadFile opens path ("-" is stdin, ".gz" is decompressed) and reads a Pair.
func ReadFile(path string) (Pair, error) {
	rc, err := openReader(path)
	if err != nil {
		return Pair{}, err
	}
	defer rc.Close()

	p, err := Read(rc)
	if err != nil {
		return Pair{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// utf8BOM is stripped from the start of the input.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read detects the format from the first byte and reads a Pair.
func Read(r io.Reader) (Pair, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return Pair{}, err
		}
	}
	if isFASTA(br) {
		return readFASTA(br)
	}

	return readPlain(br)
}

// isFASTA reports whether the input starts with '>'. A leading blank line
// makes the input plain text, whose first sequence is then empty.
func isFASTA(br *bufio.Reader) bool {
	head, err := br.Peek(1)
	return err == nil && head[0] == '>'
}

func readPlain(br *bufio.Reader) (Pair, error) {
	var lines []string
	for len(lines) < 2 {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Pair{}, err
		}
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		} else if len(lines) == 1 {
			// "A\n" ends with an empty second line
			lines = append(lines, "")
		}
		if err != nil {
			break
		}
	}
	if len(lines) < 2 {
		return Pair{}, ErrMissingSequence
	}

	return Pair{
		First:  Record{ID: "first", Seq: lines[0]},
		Second: Record{ID: "second", Seq: lines[1]},
		Format: Plain,
	}, nil
}

func readFASTA(br *bufio.Reader) (Pair, error) {
	var (
		recs []Record
		seq  strings.Builder
		id   string
		open bool
	)
	flush := func() {
		if open {
			recs = append(recs, Record{ID: id, Seq: seq.String()})
			seq.Reset()
		}
	}

	for len(recs) < 2 {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Pair{}, err
		}
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, ">"):
			flush()
			open = true
			id = ""
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				id = fields[0]
			}
		case line != "":
			if !open {
				return Pair{}, ErrMalformedFASTA
			}
			seq.WriteString(line)
		}
		if errors.Is(err, io.EOF) {
			flush()
			break
		}
	}
	if len(recs) < 2 {
		return Pair{}, ErrMissingSequence
	}

	return Pair{First: recs[0], Second: recs[1], Format: FASTA}, nil
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}

	return fh, nil
}
