package bootstrap

import (
	"github.com/vikions/opipolix-builder-dashboard/internal/infrastructure/clob"
	"github.com/vikions/opipolix-builder-dashboard/pkg/config"
	"github.com/vikions/opipolix-builder-dashboard/pkg/logger"
)

// Bootstrap is the bootstrap for the builder dashboard service.
type Bootstrap struct {
	Repository Repository
	Usecase    Usecase
	API        API
	Logger     logger.Interface

	Clob       clob.ClobClient
	ClobConfig clob.Config
	App        config.AppConfig
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Clob       clob.ClobClient
	ClobConfig clob.Config
	App        config.AppConfig
	Logger     logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Clob = config.Clob
	b.ClobConfig = config.ClobConfig
	b.App = config.App
	b.Logger = config.Logger

	b.registerRepository()
	b.registerUsecase()
	b.registerAPI()

	return *b
}
