// Package main implements a one-shot audit runner: it fetches one file,
// executes a single query and prints the report as JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"designaudit/application/queries"
	querybus "designaudit/application/queries/bus"
	"designaudit/infrastructure/config"
	"designaudit/infrastructure/di"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	fileKey := flag.String("file", "", "design file key to audit (required)")
	operation := flag.String("op", "overview", "operation: overview|components|styles|search|naming|node")
	term := flag.String("term", "", "search term for -op search")
	nodeID := flag.String("node", "", "node id for -op node")
	flag.Parse()

	if *fileKey == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependency container: %v", err)
	}
	defer container.Logger.Sync()

	runID := uuid.NewString()
	container.Logger.Info("Audit run starting",
		zap.String("runID", runID),
		zap.String("fileKey", *fileKey),
		zap.String("operation", *operation),
	)

	query, err := buildQuery(*operation, *fileKey, *term, *nodeID)
	if err != nil {
		log.Fatalf("%v", err)
	}

	result, err := container.QueryBus.Ask(ctx, query)
	if err != nil {
		container.Logger.Error("Audit run failed",
			zap.String("runID", runID),
			zap.Error(err),
		)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
	fmt.Println(string(output))
}

func buildQuery(operation, fileKey, term, nodeID string) (querybus.Query, error) {
	switch operation {
	case "overview":
		return queries.GetFileOverviewQuery{FileKey: fileKey}, nil
	case "components":
		return queries.ListComponentsQuery{FileKey: fileKey}, nil
	case "styles":
		return queries.ListStylesQuery{FileKey: fileKey}, nil
	case "search":
		return queries.SearchComponentsQuery{FileKey: fileKey, SearchTerm: term}, nil
	case "naming":
		return queries.AnalyzeNamingQuery{FileKey: fileKey}, nil
	case "node":
		return queries.GetNodeQuery{FileKey: fileKey, NodeID: nodeID}, nil
	default:
		return nil, fmt.Errorf("unknown operation %q", operation)
	}
}
