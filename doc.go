// Package gapalign computes global pairwise alignments of two sequences
// with a gap-extension aware scoring scheme.
//
// 🚀 What is in the module?
//
//	align/          - grid allocation, cell scoring, filling, traceback and rendering
//	internal/seqio  - plain two-line and FASTA input, stdin and .gz support
//	internal/report - coloured alignment, cost table, grid dumps, JSON documents
//	internal/cli    - the gapalign command: flags, config file, environment, logging
//	cmd/gapalign    - the binary
//
// ✨ Scoring
//
//	match       +2
//	mismatch    -1
//	gap open    -1
//	gap extend  -0.5   (the neighbour itself was reached by the same kind of gap)
//
// Ties between predecessors are broken left, then top, then diagonal.
//
// See align for the library API and cmd/gapalign for the command line.
package gapalign
