package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/november7co/memberqa/pkg/log"
)

type AppConfig struct {
	// Address the HTTP API binds to.
	ListenAddr string `env:"MEMBERQA_LISTEN_ADDR" envDefault:":8080"`

	// Number of top-ranked contexts the extractor consults per question.
	TopK int `env:"MEMBERQA_TOP_K" envDefault:"5"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	return c
}
