// Package cli implements the tabsql command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/tabsql"
	"github.com/nao1215/tabsql/internal/config"
	"github.com/nao1215/tabsql/internal/logger"
)

// stdoutPath writes the script to standard output
const stdoutPath = "-"

var (
	inputPath     string
	tableName     string
	outputPath    string
	primaryFirst  bool
	varcharLength int
	configPath    string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "tabsql [file]",
	Short: "Convert CSV/TSV files into SQL scripts",
	Long: `Converts a CSV or TSV file into a SQL script that drops and recreates
a table with the file's columns and inserts every row.

Column types (INT, FLOAT, VARCHAR) are inferred from the first data row.
Compressed inputs (.gz, .bz2, .xz, .zst) are read transparently.`,
	Example: `  tabsql -f sales.tsv -t sales -o sales.sql
  tabsql -p users.csv.gz
  tabsql -f users.csv -o - | mysql -u root -p shop`,
	Args:          maxOneArg,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&inputPath, "file", "f", "", "TSV or CSV file to convert (required)")
	flags.StringVarP(&tableName, "table", "t", "", "table name within SQL (default: derived from the file name)")
	flags.StringVarP(&outputPath, "output", "o", "", "SQL file to write, - for stdout (default: <file>.sql)")
	flags.BoolVarP(&primaryFirst, "primary-first", "p", false, "use the first column as primary key")
	flags.IntVar(&varcharLength, "varchar-length", tabsql.DefaultVarcharLength, "declared width of string columns")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML defaults file (default: $XDG_CONFIG_HOME/tabsql/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print conversion details to stderr")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)
	}
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, err := resolveInput(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := tabsql.NewScriptOptions().
		WithPrimaryFirst(cfg.PrimaryFirst).
		WithVarcharLength(cfg.VarcharLength)
	if cmd.Flags().Changed("primary-first") {
		opts = opts.WithPrimaryFirst(primaryFirst)
	}
	if cmd.Flags().Changed("varchar-length") {
		if varcharLength < 1 {
			return newUsageError("--varchar-length must be positive, got %d", varcharLength)
		}
		opts = opts.WithVarcharLength(varcharLength)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	converter, err := tabsql.NewConverter(input).
		WithTableName(tableName).
		WithOutputPath(outputPath).
		WithScriptOptions(opts).
		WithLoadOptions(tabsql.LoadOptions{MaxInputMB: cfg.MaxInputMB}).
		Build(ctx)
	if err != nil {
		return err
	}

	if outputPath == stdoutPath {
		_, err := converter.ConvertTo(ctx, cmd.OutOrStdout())
		return err
	}

	result, err := converter.Convert(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "SQL file written: %s\n", result.OutputPath)
	return nil
}

func maxOneArg(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return &usageError{msg: err.Error()}
	}
	return nil
}

// resolveInput takes the input path from -f or the single positional argument.
func resolveInput(args []string) (string, error) {
	switch {
	case inputPath != "" && len(args) > 0:
		return "", newUsageError("give the input file either with --file or as an argument, not both")
	case inputPath != "":
		return inputPath, nil
	case len(args) > 0:
		return args[0], nil
	default:
		return "", newUsageError("required flag \"file\" not set")
	}
}

// loadConfig reads --config, or the default config file when the flag is empty.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			logger.Warn("no user config directory, using built-in defaults: %v", err)
			return config.Default(), nil
		}
		path = defaultPath
	}
	logger.Debug("reading config %s", path)
	return config.Load(path)
}
