package seqio_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapalign/internal/seqio"
)

// TestRead_Plain checks two-line input, including empty lines, CRLF and a
// byte order mark.
func TestRead_Plain(t *testing.T) {
	cases := []struct {
		name        string
		in          string
		first, secd string
	}{
		{"TwoLines", "GATTACA\nGCATGCU\n", "GATTACA", "GCATGCU"},
		{"NoTrailingNewline", "GATTACA\nGCATGCU", "GATTACA", "GCATGCU"},
		{"CRLF", "AC\r\nGT\r\n", "AC", "GT"},
		{"ExtraLinesIgnored", "A\nC\nG\n", "A", "C"},
		{"EmptySecond", "AAA\n", "AAA", ""},
		{"BothEmpty", "\n\n", "", ""},
		{"EmptyFirst", "\nAAA\n", "", "AAA"},
		{"ByteOrderMark", "\ufeffAC\nAC\n", "AC", "AC"},
		{"HeaderLikeSecondLine", "\n>x\n", "", ">x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := seqio.Read(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, seqio.Plain, p.Format)
			assert.Equal(t, tc.first, p.First.Seq)
			assert.Equal(t, tc.secd, p.Second.Seq)
		})
	}
}

// TestRead_FASTA verifies multi-line records, blank lines between records
// and that records past the second are ignored.
func TestRead_FASTA(t *testing.T) {
	in := `>seqA first sample
GATT
ACA

>seqB
GCAT
GCU
>seqC ignored
TTTT
`
	p, err := seqio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, seqio.FASTA, p.Format)
	assert.Equal(t, seqio.Record{ID: "seqA", Seq: "GATTACA"}, p.First)
	assert.Equal(t, seqio.Record{ID: "seqB", Seq: "GCATGCU"}, p.Second)
}

// TestRead_FASTAByteOrderMark verifies a BOM does not hide the FASTA header.
func TestRead_FASTAByteOrderMark(t *testing.T) {
	p, err := seqio.Read(strings.NewReader("\ufeff>a\nAC\n>b\nAG\n"))
	require.NoError(t, err)
	assert.Equal(t, seqio.FASTA, p.Format)
	assert.Equal(t, seqio.Record{ID: "a", Seq: "AC"}, p.First)
}

// TestRead_FASTAEmptyRecord verifies a header without sequence lines.
func TestRead_FASTAEmptyRecord(t *testing.T) {
	p, err := seqio.Read(strings.NewReader(">a\nAC\n>b\n"))
	require.NoError(t, err)
	assert.Equal(t, "AC", p.First.Seq)
	assert.Equal(t, seqio.Record{ID: "b"}, p.Second)
}

// TestRead_Errors covers inputs with fewer than two sequences.
func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", seqio.ErrMissingSequence},
		{"SingleLine", "GATTACA", seqio.ErrMissingSequence},
		{"SingleRecord", ">a\nACGT\n", seqio.ErrMissingSequence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := seqio.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestReadFile_Gzip verifies transparent decompression of .gz files.
func TestReadFile_Gzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.fa.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(fh)
	_, err = zw.Write([]byte(">x\nAA\n>y\nAG\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fh.Close())

	p, err := seqio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AA", p.First.Seq)
	assert.Equal(t, "AG", p.Second.Seq)
}

// TestReadFile_Errors verifies open failures keep the underlying error.
func TestReadFile_Errors(t *testing.T) {
	_, err := seqio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "one.txt")
	require.NoError(t, os.WriteFile(path, []byte("ACGT"), 0o600))
	_, err = seqio.ReadFile(path)
	assert.ErrorIs(t, err, seqio.ErrMissingSequence)
	assert.Contains(t, err.Error(), "one.txt")
}

// TestFormat_String checks the format names used in logs.
func TestFormat_String(t *testing.T) {
	assert.Equal(t, "plain", seqio.Plain.String())
	assert.Equal(t, "fasta", seqio.FASTA.String())
}
