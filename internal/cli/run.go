package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gapalign/align"
	"github.com/katalvlaran/gapalign/internal/report"
	"github.com/katalvlaran/gapalign/internal/seqio"
)

// run reads the input pair, aligns it and writes the requested reports.
func (a *app) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pair, err := readPair(cmd.InOrStdin(), args)
	if err != nil {
		return WrapError(ExitInputError, "failed to read sequences", err)
	}
	first, second := pair.First.Seq, pair.Second.Seq
	if a.cfg.Upper {
		first, second = strings.ToUpper(first), strings.ToUpper(second)
	}
	a.logger.Info("input read",
		"format", pair.Format,
		"first", pair.First.ID,
		"second", pair.Second.ID)

	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := align.Align(first, second, a.cfg.AlignOptions(a.logger)...)
	if err != nil {
		return alignError(err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.cfg.Dump != "" {
		if err := a.writeDump(res.Grid); err != nil {
			return WrapError(ExitError, "failed to write grid dump", err)
		}
		a.logger.Info("grid dumped", "path", a.cfg.Dump, "format", a.cfg.DumpFormat)
	}

	out := cmd.OutOrStdout()
	gap := a.cfg.GapRune()
	switch a.cfg.Format {
	case FormatJSON:
		doc := report.NewDocument(
			report.Sequence{ID: pair.First.ID, Seq: first},
			report.Sequence{ID: pair.Second.ID, Seq: second},
			res, gap, a.cfg.Path)
		err = report.WriteJSON(out, doc)
	default:
		styled := colorEnabled(a.cfg.Color, out)
		err = report.WriteAlignment(out, res, gap, report.NewPalette(styled))
		if err == nil && a.cfg.Table {
			if _, err = fmt.Fprintln(out); err == nil {
				err = report.WriteTable(out, res.Grid, first, second, styled)
			}
		}
	}
	if err != nil {
		return WrapError(ExitError, "failed to write output", err)
	}

	return nil
}

// readPair reads from stdin when no file or "-" is given.
func readPair(stdin io.Reader, args []string) (seqio.Pair, error) {
	if len(args) == 0 || args[0] == "-" {
		return seqio.Read(stdin)
	}

	return seqio.ReadFile(args[0])
}

func (a *app) writeDump(g *align.Grid) (err error) {
	format, err := report.ParseDumpFormat(a.cfg.DumpFormat)
	if err != nil {
		return err
	}
	f, err := os.Create(a.cfg.Dump)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.DumpGrid(f, g, format)
}
