package state

import (
	"sync"

	"github.com/bnema/stockdash/internal/domain"
)

type StockStore struct {
	mu       sync.RWMutex
	stock    domain.Stock
	inflight requestTokens
}

func NewStockStore(ticker string) *StockStore {
	return &StockStore{
		stock:    domain.NewStock(ticker),
		inflight: requestTokens{},
	}
}

func (s *StockStore) Stock() domain.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stock
}

func (s *StockStore) Ticker() string {
	return s.Stock().Ticker
}

// Begin records a new request for ticker and returns its token. Only the
// most recently issued token for a ticker may apply a response.
func (s *StockStore) Begin(ticker string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inflight.issue(ticker)
}

// Current reports whether token is still the latest issued for ticker.
func (s *StockStore) Current(ticker string, token uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.inflight.current(ticker, token)
}

// ApplyIfCurrent applies payload when token is still the latest issued for
// ticker. It reports whether the record changed.
func (s *StockStore) ApplyIfCurrent(ticker string, token uint64, payload domain.StockPayload) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inflight.current(ticker, token) {
		return false
	}

	s.stock = s.stock.ApplyPayload(payload)
	return true
}
