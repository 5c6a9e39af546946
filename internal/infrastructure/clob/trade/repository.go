// Package trade is the typed boundary for the CLOB builder-trades endpoint.
package trade

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/vikions/opipolix-builder-dashboard/internal/infrastructure/clob"
)

const tradesPath = "/builder/trades"

// Repository fetches builder trade history through the signed CLOB client.
type Repository struct {
	client   clob.ClobClient // Using interface instead of concrete type
	pageSize int
	maxPages int
}

// NewRepository creates a new builder-trades repository.
func NewRepository(client clob.ClobClient, config clob.Config) *Repository {
	return &Repository{
		client:   client,
		pageSize: config.PageSize,
		maxPages: config.MaxPages,
	}
}

// List fetches a single page of builder trades and normalizes it.
func (r *Repository) List(ctx context.Context, filter Filter) (*Page, error) {
	query := url.Values{}
	if filter.Cursor != "" {
		query.Set("id", filter.Cursor)
	}
	if filter.After != "" {
		query.Set("after", filter.After)
	}
	if filter.Before != "" {
		query.Set("before", filter.Before)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = r.pageSize
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var body json.RawMessage
	if err := r.client.Get(ctx, tradesPath, query, &body); err != nil {
		return nil, err
	}

	return normalizePage(body)
}

// ListAll walks the trade-history cursor until the API signals the end, an
// empty page comes back, or the page budget is spent. Page order does not
// matter to the caller, aggregation is commutative.
func (r *Repository) ListAll(ctx context.Context, filter Filter) ([]*Trade, int, error) {
	var all []*Trade
	pages := 0

	for pages < r.maxPages {
		page, err := r.List(ctx, filter)
		if err != nil {
			return nil, pages, err
		}
		pages++

		if len(page.Trades) == 0 {
			break
		}
		all = append(all, page.Trades...)

		if page.NextCursor == "" || page.NextCursor == endCursor {
			break
		}
		filter.Cursor = page.NextCursor
	}

	return all, pages, nil
}
