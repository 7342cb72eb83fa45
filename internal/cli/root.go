// Package cli is the cotizador command line: the HTTP server plus offline
// export and rate lookups.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cotizador",
	Short: "Quote builder for Directa Spa monitoring plans",
	Long: `cotizador builds monitoring and installation quotes, converts UF and USD
amounts to CLP with the day's indicators and renders the quote as a PDF.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
