package trade

import (
	"context"
)

// TradeRepository is the interface for the builder trade-history repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type TradeRepository interface {
	// List fetches one page of builder trades.
	List(ctx context.Context, filter Filter) (*Page, error)
	// ListAll walks the cursor until exhaustion and returns all trades plus
	// the number of pages fetched.
	ListAll(ctx context.Context, filter Filter) ([]*Trade, int, error)
}
