package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"directa/cotizador/internal/app/config"
	"directa/cotizador/internal/domain/quote"
	"directa/cotizador/internal/domain/rates"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print today's UF and USD values in CLP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()
		rc := rates.New(cfg.RatesURL, &http.Client{Timeout: cfg.HTTPTimeout})
		v, err := rc.Lookup(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "UF:  %s\n", quote.FormatAmount(quote.CLP, v.UF))
		fmt.Fprintf(out, "USD: %s\n", quote.FormatAmount(quote.CLP, v.USD))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}
