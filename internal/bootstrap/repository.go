package bootstrap

import (
	tradeInfra "github.com/vikions/opipolix-builder-dashboard/internal/infrastructure/clob/trade"
)

// Repository is the repository for the builder dashboard service.
type Repository struct {
	TradeRepository tradeInfra.TradeRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.TradeRepository = tradeInfra.NewRepository(b.Clob, b.ClobConfig)
}
