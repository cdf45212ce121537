package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

// TransientError marks failures worth retrying: transport errors and
// upstream 5xx responses. Everything else falls straight to the defaults.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// Client fetches the price snapshot from the remote source. The body is
// keyed by lowercase crypto symbol, each value holding the four
// string-encoded directional rates.
type Client struct {
	client *http.Client
	url    string
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

type rawRates struct {
	USDBuy  string `json:"usd_buy"`
	USDSell string `json:"usd_sell"`
	CLPBuy  string `json:"clp_buy"`
	CLPSell string `json:"clp_sell"`
}

func (c *Client) FetchPrices(ctx context.Context) (domain.PriceQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.PriceQuote{}, &TransientError{Err: fmt.Errorf("failed to get prices: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return domain.PriceQuote{}, &TransientError{Err: fmt.Errorf("price API server error (%d)", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return domain.PriceQuote{}, fmt.Errorf("price API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.PriceQuote{}, &TransientError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var payload map[string]rawRates
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to parse price API response: %w", err)
	}

	return parseQuote(payload)
}

func parseQuote(payload map[string]rawRates) (domain.PriceQuote, error) {
	quote := domain.PriceQuote{Rates: make(map[domain.Currency]domain.CryptoRates)}
	for _, crypto := range domain.CryptoCurrencies() {
		raw, ok := payload[strings.ToLower(crypto.String())]
		if !ok {
			return domain.PriceQuote{}, fmt.Errorf("price API response is missing %s", crypto)
		}
		rates, err := parseRates(raw)
		if err != nil {
			return domain.PriceQuote{}, fmt.Errorf("invalid rates for %s: %w", crypto, err)
		}
		quote.Rates[crypto] = rates
	}
	return quote, nil
}

func parseRates(raw rawRates) (domain.CryptoRates, error) {
	usdBuy, err := decimal.NewFromString(raw.USDBuy)
	if err != nil {
		return domain.CryptoRates{}, fmt.Errorf("usd_buy: %w", err)
	}
	usdSell, err := decimal.NewFromString(raw.USDSell)
	if err != nil {
		return domain.CryptoRates{}, fmt.Errorf("usd_sell: %w", err)
	}
	clpBuy, err := decimal.NewFromString(raw.CLPBuy)
	if err != nil {
		return domain.CryptoRates{}, fmt.Errorf("clp_buy: %w", err)
	}
	clpSell, err := decimal.NewFromString(raw.CLPSell)
	if err != nil {
		return domain.CryptoRates{}, fmt.Errorf("clp_sell: %w", err)
	}
	return domain.CryptoRates{
		USDBuy:  usdBuy,
		USDSell: usdSell,
		CLPBuy:  clpBuy,
		CLPSell: clpSell,
	}, nil
}
