package bootstrap

import (
	"github.com/vikions/opipolix-builder-dashboard/internal/api"
)

// API is the HTTP surface for the builder dashboard service.
type API struct {
	Server       *api.Server
	StatsHandler *api.StatsHandler
}

// registerAPI registers the HTTP handlers and server.
func (b *Bootstrap) registerAPI() {
	b.API.StatsHandler = api.NewStatsHandler(b.Usecase.StatsUsecase, b.Logger)
	b.API.Server = api.NewServer(b.App, b.API.StatsHandler, b.Logger)
}
