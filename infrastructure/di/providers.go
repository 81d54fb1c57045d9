package di

import (
	"context"
	"fmt"
	"time"

	"designaudit/application/ports"
	"designaudit/application/queries"
	querybus "designaudit/application/queries/bus"
	queries_handlers "designaudit/application/queries/handlers"
	"designaudit/infrastructure/config"
	"designaudit/infrastructure/figma"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideDocumentFetcher creates the file API client behind the fetcher port
func ProvideDocumentFetcher(cfg *config.Config, logger *zap.Logger) ports.DocumentFetcher {
	return figma.NewClient(
		cfg.FigmaBaseURL,
		cfg.FigmaToken,
		time.Duration(cfg.FetchTimeoutSeconds)*time.Second,
		logger,
	)
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(fetcher ports.DocumentFetcher, logger *zap.Logger) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()
	logging := querybus.NewLoggingMiddleware(logger)

	// Register GetFileOverviewQuery handler
	overviewHandler := queries_handlers.NewGetFileOverviewHandler(fetcher, logger)
	queryBus.Register(queries.GetFileOverviewQuery{}, logging.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			overviewQuery, ok := query.(queries.GetFileOverviewQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return overviewHandler.Handle(ctx, overviewQuery)
		},
	}))

	// Register ListComponentsQuery handler
	listComponentsHandler := queries_handlers.NewListComponentsHandler(fetcher, logger)
	queryBus.Register(queries.ListComponentsQuery{}, logging.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListComponentsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listComponentsHandler.Handle(ctx, listQuery)
		},
	}))

	// Register ListStylesQuery handler
	listStylesHandler := queries_handlers.NewListStylesHandler(fetcher, logger)
	queryBus.Register(queries.ListStylesQuery{}, logging.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			stylesQuery, ok := query.(queries.ListStylesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listStylesHandler.Handle(ctx, stylesQuery)
		},
	}))

	// Register SearchComponentsQuery handler
	searchHandler := queries_handlers.NewSearchComponentsHandler(fetcher, logger)
	queryBus.Register(queries.SearchComponentsQuery{}, logging.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			searchQuery, ok := query.(queries.SearchComponentsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return searchHandler.Handle(ctx, searchQuery)
		},
	}))

	// Register AnalyzeNamingQuery handler
	namingHandler := queries_handlers.NewAnalyzeNamingHandler(fetcher, logger)
	queryBus.Register(queries.AnalyzeNamingQuery{}, logging.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			namingQuery, ok := query.(queries.AnalyzeNamingQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return namingHandler.Handle(ctx, namingQuery)
		},
	}))

	// Register GetNodeQuery handler
	getNodeHandler := queries_handlers.NewGetNodeHandler(fetcher, logger)
	queryBus.Register(queries.GetNodeQuery{}, logging.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetNodeQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getNodeHandler.Handle(ctx, getQuery)
		},
	}))

	return queryBus
}
