package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

var requiredStockFields = []string{"name", "description", "exchange", "sector", "industry"}

// StockPayload is the decoded body of GET /stock/<ticker>. Numeric and
// object values are kept in their JSON text form.
type StockPayload struct {
	Ticker        string
	Name          string
	Description   string
	Exchange      string
	Sector        string
	Industry      string
	MarketCap     string
	NoShares      string
	TrailPERatio  string
	FwdPERatio    string
	DividendYield string
	High52W       string
	Low52W        string
	EPS           string
	LastCacheTime string
	CacheResponse string
	Timeseries    string

	missing []string
}

func (p *StockPayload) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode stock payload: %w", err)
	}

	decoded := StockPayload{}
	targets := map[string]*string{
		"ticker":          &decoded.Ticker,
		"name":            &decoded.Name,
		"description":     &decoded.Description,
		"exchange":        &decoded.Exchange,
		"sector":          &decoded.Sector,
		"industry":        &decoded.Industry,
		"market_cap":      &decoded.MarketCap,
		"no_shares":       &decoded.NoShares,
		"trail_pe_ratio":  &decoded.TrailPERatio,
		"fwd_pe_ratio":    &decoded.FwdPERatio,
		"d_yield":         &decoded.DividendYield,
		"high_52w":        &decoded.High52W,
		"low_52w":         &decoded.Low52W,
		"eps":             &decoded.EPS,
		"last_cache_time": &decoded.LastCacheTime,
		"cache_response":  &decoded.CacheResponse,
		"timeseries":      &decoded.Timeseries,
	}

	present := make(map[string]bool, len(targets))
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		value, ok, err := rawText(raw)
		if err != nil {
			return fmt.Errorf("decode stock payload field %q: %w", key, err)
		}
		if !ok {
			continue
		}
		*target = value
		present[key] = true
	}

	for _, key := range requiredStockFields {
		if !present[key] {
			decoded.missing = append(decoded.missing, key)
		}
	}

	*p = decoded
	return nil
}

// Validate reports required fields that were absent or null in the decoded
// body. Payloads built in code are always valid.
func (p StockPayload) Validate() error {
	if len(p.missing) == 0 {
		return nil
	}

	return fmt.Errorf("%w: missing %s", ErrInvalidStockPayload, strings.Join(p.missing, ", "))
}

func rawText(raw json.RawMessage) (string, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false, nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return "", false, err
	}
	return compact.String(), true, nil
}
