package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/november7co/memberqa/pkg/log"
)

type UpstreamConfig struct {
	// URL of the member messages endpoint.
	URL string `env:"MEMBER_MESSAGES_API,required,notEmpty"`

	// Timeout bounds the whole fetch; there is no retry on the serving path.
	Timeout time.Duration `env:"MEMBER_MESSAGES_TIMEOUT" envDefault:"20s"`
}

func NewUpstreamConfig(ctx context.Context) *UpstreamConfig {
	c := &UpstreamConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse upstream config")
	}
	return c
}
