// Command tripgen converts a table of symbolic cells into a C struct-array
// initializer on stdout.
//
// Cells resolve as: "N/A" -> 0, "+" -> 1, "-" -> -1, empty -> the column's
// value in the previous row (0 in the first row), anything else -> integer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripgen/adapters/tabular"
	"tripgen/app"
	"tripgen/internal"
	"tripgen/internal/config"
	"tripgen/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for configuration mistakes and 1 for every other failure.
func exitCode(err error) int {
	if errors.IsCode(err, errors.CodeConfigInvalid) {
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	var input string
	var sheet string
	var declaration string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "tripgen",
		Short: "Encode a CSV or XLSX table as a C array-of-structs initializer",
		Long: `Encode a table as a C array-of-structs initializer.

Every row is data. Each cell is trimmed and resolved:
  N/A    -> 0
  +      -> 1
  -      -> -1
  empty  -> the same column's value in the previous row (0 in the first row)
  other  -> base-10 integer

Settings come from flags, then TRIPGEN_INPUT, TRIPGEN_SHEET, TRIPGEN_DECLARATION
and LOG_LEVEL (a .env file in the working directory is honored).

Example: tripgen --declare "struct TripletEncoding tripletEncodings[]" > triplet_encodings.inc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Input.Path = input
			}
			if flags.Changed("sheet") {
				cfg.Input.Sheet = sheet
			}
			if flags.Changed("declare") {
				cfg.Output.Declaration = declaration
			}
			if flags.Changed("log-level") {
				level, err := internal.ParseLogLevel(logLevel)
				if err != nil {
					return errors.WithCode(errors.CodeConfigInvalid, err)
				}
				cfg.Log.Level = level
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runEncode(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultInput, `Input table (.csv, .xlsx, or "-" for stdin)`)
	cmd.Flags().StringVar(&sheet, "sheet", config.DefaultSheet, "Worksheet to read from .xlsx input")
	cmd.Flags().StringVar(&declaration, "declare", "", `C declarator to initialize, e.g. "struct TripletEncoding tripletEncodings[]"`)
	cmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "ERROR, WARN, INFO, DEBUG or TRACE")

	return cmd
}

func runEncode(cmd *cobra.Command, cfg *config.Config) error {
	logger := internal.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	defer logger.Sync()

	reader := tabular.NewDataReader(cfg.Input.Path,
		tabular.WithSheet(cfg.Input.Sheet),
		tabular.WithStdin(cmd.InOrStdin()),
		tabular.WithLogger(logger),
	)

	svc := app.NewEncoderService(reader, cfg.Output.Declaration, logger)
	return svc.Run(cmd.Context(), cmd.OutOrStdout())
}
