package ports

import (
	"context"

	"github.com/bnema/stockdash/internal/domain"
)

type StockGateway interface {
	FetchStock(ctx context.Context, ticker string) (domain.StockPayload, error)
}
