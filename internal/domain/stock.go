package domain

import "strings"

const DefaultTicker = "XOM"

type Stock struct {
	Ticker        string
	Name          string
	Exchange      string
	Description   string
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
	// CacheResponse carries the backend freshness label. It is kept as an
	// opaque string and never written by ApplyPayload.
	CacheResponse string
	Timeseries    string
}

// NewStock returns the placeholder record shown before the first fetch.
func NewStock(ticker string) Stock {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		ticker = DefaultTicker
	}

	return Stock{
		Ticker:      ticker,
		Exchange:    "NYSE",
		Description: "blank",
	}
}

// ApplyPayload copies name, description, exchange, sector and industry from
// the payload. All other fields keep their current value.
func (s Stock) ApplyPayload(p StockPayload) Stock {
	s.Name = p.Name
	s.Description = p.Description
	s.Exchange = p.Exchange
	s.Sector = p.Sector
	s.Industry = p.Industry
	return s
}
