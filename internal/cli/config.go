package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/tabsql/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage conversion defaults",
	Long: `Conversion defaults are read from a TOML file before every run.
Command line flags override the values from the file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the built-in defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return path, nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written: %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return config.Encode(cmd.OutOrStdout(), cfg)
}
