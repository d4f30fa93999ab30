package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/november7co/memberqa/internal/config"
	"github.com/november7co/memberqa/internal/providers/rank"
	"github.com/november7co/memberqa/internal/providers/upstream"
	"github.com/november7co/memberqa/internal/service/qa"
	"github.com/november7co/memberqa/internal/transport/httpapi"
	"github.com/november7co/memberqa/pkg/log"
	"github.com/november7co/memberqa/pkg/srv"
)

const envFile = ".env"

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	upstreamCfg := config.NewUpstreamConfig(ctx)

	// 2. Collaborators: message source, ranker, name matcher
	source := upstream.NewClient(upstreamCfg)
	ranker := rank.NewTFIDF()
	matcher := qa.NewCapitalizedNameMatcher()

	// 3. QA pipeline
	pipeline := qa.NewPipeline(source, ranker, matcher, appCfg.TopK)

	// 4. Transport
	api := httpapi.NewServer(ctx, appCfg.ListenAddr, pipeline)

	return []srv.Service{api}
}

func initEnv(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
