package bootstrap

import (
	statsDomain "github.com/vikions/opipolix-builder-dashboard/internal/domain/stats"
	statsUc "github.com/vikions/opipolix-builder-dashboard/internal/usecase/stats"
)

// Usecase is the usecase for the builder dashboard service.
type Usecase struct {
	StatsUsecase statsDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.StatsUsecase = statsUc.NewUsecase(b.Repository.TradeRepository, b.Logger)
}
