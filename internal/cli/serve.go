package cli

import (
	"github.com/spf13/cobra"

	"directa/cotizador/internal/app"
	"directa/cotizador/internal/app/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quote HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPAddr = addr
		}
		return app.Run(cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address, overrides HTTP_ADDR")
	rootCmd.AddCommand(serveCmd)
}
