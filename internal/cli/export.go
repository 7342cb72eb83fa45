package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"directa/cotizador/internal/app/config"
	"directa/cotizador/internal/domain/form"
	"directa/cotizador/internal/domain/palette"
	"directa/cotizador/internal/domain/picture"
	"directa/cotizador/internal/domain/quote/document"
	pdfgen "directa/cotizador/internal/domain/quote/pdf/gofpdf"
	"directa/cotizador/internal/domain/rates"
)

// quoteFile is the JSON accepted by the export command. Absent fields keep
// the form defaults.
type quoteFile struct {
	QuoteNumber       string       `json:"quoteNumber"`
	Client            string       `json:"client"`
	Contact           *contactFile `json:"contact"`
	QuoteDate         string       `json:"quoteDate"`
	PlanType          string       `json:"planType"`
	Currency          string       `json:"currency"`
	MonitoringQty     json.Number  `json:"monitoringQty"`
	MonitoringValue   json.Number  `json:"monitoringValue"`
	InstallationQty   json.Number  `json:"installationQty"`
	InstallationValue json.Number  `json:"installationValue"`
	DeviceType        string       `json:"deviceType"`
	UFValue           json.Number  `json:"ufValue"`
	USDValue          json.Number  `json:"usdValue"`
}

type contactFile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type exportOptions struct {
	In         string
	Out        string
	Logo       string
	FetchRates bool
	Company    document.Company
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a quote described in a JSON file to PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()
		opts := exportOptions{Company: cfg.Company}
		opts.In, _ = cmd.Flags().GetString("in")
		opts.Out, _ = cmd.Flags().GetString("out")
		opts.Logo, _ = cmd.Flags().GetString("logo")
		opts.FetchRates, _ = cmd.Flags().GetBool("fetch-rates")

		rc := rates.New(cfg.RatesURL, &http.Client{Timeout: cfg.HTTPTimeout})
		path, err := runExport(cmd.Context(), opts, rc, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("in", "", "Quote JSON file")
	exportCmd.Flags().String("out", ".", "Output directory")
	exportCmd.Flags().String("logo", "", "Logo image used for the header and palette")
	exportCmd.Flags().Bool("fetch-rates", false, "Fill UF and USD values from the indicators API")
	_ = exportCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(exportCmd)
}

// runExport drives a fresh workspace through the same operations the API
// exposes and writes the resulting PDF. It returns the written path.
func runExport(ctx context.Context, opts exportOptions, src form.RateSource, now time.Time) (string, error) {
	raw, err := os.ReadFile(opts.In)
	if err != nil {
		return "", fmt.Errorf("read quote: %w", err)
	}
	var in quoteFile
	if err := json.Unmarshal(raw, &in); err != nil {
		return "", fmt.Errorf("decode quote %s: %w", opts.In, err)
	}

	ws := form.New(src, now)
	if err := fill(ws, in); err != nil {
		return "", err
	}

	if opts.FetchRates {
		if _, err := ws.RefreshRates(ctx); err != nil {
			return "", err
		}
	}

	if opts.Logo != "" {
		data, err := os.ReadFile(opts.Logo)
		if err != nil {
			return "", fmt.Errorf("read logo: %w", err)
		}
		contentType := http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "image/") {
			return "", fmt.Errorf("logo %s is %s, not an image", opts.Logo, contentType)
		}
		if _, _, err := picture.Config(data); errors.Is(err, picture.ErrTooLarge) {
			return "", fmt.Errorf("logo %s: %w", opts.Logo, err)
		}
		ws.ApplyLogo(document.Logo{Data: data, ContentType: contentType}, palette.FromImage(data))
	}

	doc := ws.Document(opts.Company)
	pdfBytes, err := pdfgen.New().Generate(doc)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(opts.Out, doc.FileName)
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("export: wrote %s (%s)", path, humanize.Bytes(uint64(len(pdfBytes))))
	return path, nil
}

func fill(ws *form.Workspace, in quoteFile) error {
	fields := []struct {
		f   form.Field
		raw string
	}{
		{form.FieldQuoteNumber, in.QuoteNumber},
		{form.FieldQuoteDate, in.QuoteDate},
		{form.FieldPlanType, in.PlanType},
		{form.FieldCurrency, in.Currency},
		{form.FieldMonitoringQty, in.MonitoringQty.String()},
		{form.FieldMonitoringValue, in.MonitoringValue.String()},
		{form.FieldInstallationQty, in.InstallationQty.String()},
		{form.FieldInstallationValue, in.InstallationValue.String()},
		{form.FieldUFValue, in.UFValue.String()},
		{form.FieldUSDValue, in.USDValue.String()},
	}
	for _, fv := range fields {
		if fv.raw == "" {
			continue
		}
		if err := ws.SetField(fv.f, fv.raw); err != nil {
			return err
		}
	}

	if in.Client != "" {
		ws.CommitClient(in.Client)
		if c := in.Contact; c != nil && c.Name != "" {
			ws.CommitContact(c.Name, c.Phone, c.Email)
		}
	}
	if in.DeviceType != "" && !ws.SelectDevice(in.DeviceType) {
		ws.CommitDevice(in.DeviceType)
	}
	return nil
}
