package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set via ldflags at build time
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tabsql version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
