package di

import (
	"designaudit/application/ports"
	querybus "designaudit/application/queries/bus"
	"designaudit/infrastructure/config"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Fetcher  ports.DocumentFetcher
	QueryBus *querybus.QueryBus
}
