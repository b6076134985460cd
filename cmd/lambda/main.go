// Package main is the entry point for the glossary lookup Lambda function.
package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/termbase/glossary-lookup/internal/config"
	"github.com/termbase/glossary-lookup/internal/handler"
	"github.com/termbase/glossary-lookup/internal/store"
)

var lookupHandler *handler.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(cfg.LogLevel)

	glossary, err := store.NewDynamo(context.Background(), cfg.TableName)
	if err != nil {
		panic(fmt.Sprintf("failed to create glossary store: %v", err))
	}

	lookupHandler = handler.New(glossary, log)
}

func main() {
	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	return lookupHandler.Handle(ctx, event), nil
}
