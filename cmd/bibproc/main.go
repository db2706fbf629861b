// Package main provides the bibproc CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibproc",
	Short: "Bibliography spreadsheet enricher",
	Long: `bibproc enriches a bibliography spreadsheet with Google Books metadata.

It reads the "Bibliografia" sheet of an .xlsx workbook, looks up each
reference by title and author, classifies it (Livro, Capítulo de livro,
Artigo, Trabalho acadêmico, Lei) and fills the type-specific columns.
Lookups are cached on disk so re-runs never repeat a request. All commands
output JSON by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
