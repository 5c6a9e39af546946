package stats

import (
	"context"
)

// Usecase is the interface for the stats usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	// Snapshot fetches the builder trade history and reduces it into the
	// aggregate snapshot for the given trailing window.
	Snapshot(ctx context.Context, hours int) (*Snapshot, error)
}
