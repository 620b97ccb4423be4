package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/ports"
)

const maxErrorExcerpt = 200

var _ ports.StockGateway = (*Client)(nil)

func (c *Client) FetchStock(ctx context.Context, ticker string) (domain.StockPayload, error) {
	resp, err := c.do(ctx, http.MethodGet, "/stock/"+url.PathEscape(ticker), nil)
	if err != nil {
		return domain.StockPayload{}, err
	}
	if !resp.ok() {
		return domain.StockPayload{}, fmt.Errorf("%w: status %d: %s", domain.ErrStockFetchFailed, resp.status, excerpt(resp.body))
	}

	var payload domain.StockPayload
	if err := json.Unmarshal(resp.body, &payload); err != nil {
		return domain.StockPayload{}, fmt.Errorf("decode stock response: %w", err)
	}

	return payload, nil
}

func excerpt(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxErrorExcerpt {
		return text
	}

	cut := maxErrorExcerpt
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
