package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const DefaultURL = "https://mindicador.cl/api"

// Values are CLP per unit of UF and of USD.
type Values struct {
	UF  float64 `json:"uf"`
	USD float64 `json:"dolar"`
}

// Client queries an indicator API shaped like mindicador.cl.
type Client struct {
	URL  string
	HTTP *http.Client
}

func New(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{URL: url, HTTP: httpClient}
}

// Fetch never fails: on any error it logs and returns zero for both rates.
func (c *Client) Fetch(ctx context.Context) Values {
	v, err := c.Lookup(ctx)
	if err != nil {
		log.Printf("rates: lookup failed, using zero values: %v", err)
		return Values{}
	}
	return v
}

type indicator struct {
	Valor *float64 `json:"valor"`
}

type indicatorsResponse struct {
	UF    *indicator `json:"uf"`
	Dolar *indicator `json:"dolar"`
}

// Lookup is the error-returning form of Fetch.
func (c *Client) Lookup(ctx context.Context) (Values, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Values{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Values{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Values{}, fmt.Errorf("rates status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out indicatorsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Values{}, fmt.Errorf("decode rates: %w", err)
	}
	if out.UF == nil || out.UF.Valor == nil || out.Dolar == nil || out.Dolar.Valor == nil {
		return Values{}, errors.New("rates response missing uf or dolar value")
	}
	v := Values{UF: *out.UF.Valor, USD: *out.Dolar.Valor}
	log.Printf("rates: uf=%.2f usd=%.2f took=%s", v.UF, v.USD, time.Since(start))
	return v, nil
}
