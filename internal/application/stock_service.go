package application

import (
	"context"
	"fmt"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/ports"
	"github.com/bnema/stockdash/internal/state"
	"github.com/rs/zerolog"
)

type StockService struct {
	gateway ports.StockGateway
	stocks  *state.StockStore
}

// RefreshResult is the outcome of one fetch. Discarded is set when a newer
// request for the same ticker was issued before this one resolved; the
// record was left alone and any error of this request was dropped.
type RefreshResult struct {
	Stock     domain.Stock
	Discarded bool
}

func NewStockService(gateway ports.StockGateway, stocks *state.StockStore) *StockService {
	return &StockService{gateway: gateway, stocks: stocks}
}

// Refresh fetches the stored ticker and applies the response.
func (s *StockService) Refresh(ctx context.Context) error {
	_, err := s.Fetch(ctx)
	return err
}

// Fetch is Refresh reporting what happened to the record.
func (s *StockService) Fetch(ctx context.Context) (RefreshResult, error) {
	ticker := s.stocks.Ticker()
	token := s.stocks.Begin(ticker)
	logger := zerolog.Ctx(ctx).With().Str("ticker", ticker).Uint64("request", token).Logger()

	payload, err := s.gateway.FetchStock(ctx, ticker)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		if !s.stocks.Current(ticker, token) {
			logger.Debug().Err(err).Msg("dropped error of overtaken stock request")
			return RefreshResult{Stock: s.stocks.Stock(), Discarded: true}, nil
		}
		return RefreshResult{Stock: s.stocks.Stock()}, fmt.Errorf("fetch stock %s: %w", ticker, err)
	}

	if !s.stocks.ApplyIfCurrent(ticker, token, payload) {
		logger.Debug().Msg("discarded stale stock response")
		return RefreshResult{Stock: s.stocks.Stock(), Discarded: true}, nil
	}

	logger.Debug().Str("name", payload.Name).Msg("stock data updated")
	return RefreshResult{Stock: s.stocks.Stock()}, nil
}

func (s *StockService) Stock() domain.Stock {
	return s.stocks.Stock()
}
