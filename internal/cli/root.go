// Package cli wires the gapalign command line: flag and config resolution,
// logging, reading the input pair, running the aligner and writing reports.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gapalign/align"
)

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"gap":         "gap",
	"color":       "color",
	"table":       "table",
	"dump":        "dump",
	"dump-format": "dump_format",
	"max-cells":   "max_cells",
	"workers":     "workers",
	"output":      "format",
	"path":        "path",
	"upper":       "upper",
	"log-level":   "log.level",
}

// app holds the state shared by the root command and its subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	verbose    bool
	cfg        Config
	logger     *slog.Logger
}

// NewRootCommand builds the gapalign command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper(), logger: discardLogger()}

	cmd := &cobra.Command{
		Use:   "gapalign [file]",
		Short: "Global pairwise alignment with affine-style gap scoring",
		Long: `gapalign aligns two sequences end to end and prints the alignment and
its score.

Input is a plain text file whose first two lines are the sequences, or a
FASTA file whose first two records are used. Use "-" or no argument to
read standard input; ".gz" files are decompressed.

Scoring: match +2, mismatch -1, opening a gap -1, extending a gap -0.5.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.load,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              a.run,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging and print error causes")
	pf.String("log-level", "warn", "Log level (debug|info|warn|error)")

	f := cmd.Flags()
	f.String("gap", string(align.DefaultGap), "Gap marker rune")
	f.String("color", ColorAuto, "Colorize matches and mismatches (auto|always|never)")
	f.Bool("table", false, "Print the cost table after the alignment")
	f.String("dump", "", "Write every grid cell to this file")
	f.String("dump-format", "json", "Grid dump format (json|yaml)")
	f.Int("max-cells", align.DefaultMaxCells, "Maximum number of grid cells to allocate")
	f.Int("workers", 0, "Fill the grid by anti-diagonals with this many workers (0 fills row by row)")
	f.StringP("output", "o", FormatText, "Output format (text|json)")
	f.Bool("path", false, "Include the traceback path in JSON output")
	f.Bool("upper", false, "Upper-case both sequences before aligning")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

// load binds flags, resolves the configuration and installs the logger.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := a.v.BindPFlag(key, flag); err != nil {
			return WrapError(ExitConfigError, "failed to bind flag "+name, err)
		}
	}

	cfg, err := loadConfig(a.v, a.configFile)
	if err != nil {
		return WrapError(ExitConfigError, "invalid configuration", err)
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return WrapError(ExitConfigError, "invalid configuration", err)
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	slog.SetDefault(a.logger)

	return nil
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	verbose, _ := cmd.PersistentFlags().GetBool("verbose")

	return HandleError(stderr, err, verbose)
}

// Main is the entry point used by cmd/gapalign.
func Main() int {
	return Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
