// Package main is the entry point of the tabsql command.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/nao1215/tabsql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		errorStyle := lipgloss.NewRenderer(os.Stderr).NewStyle().
			Foreground(lipgloss.Color("#F38BA8")).
			Bold(true)
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:")+" "+err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
