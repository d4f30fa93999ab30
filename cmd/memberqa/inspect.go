package main

import (
	"fmt"

	"github.com/november7co/memberqa/internal/config"
	"github.com/november7co/memberqa/internal/providers/upstream"
	"github.com/november7co/memberqa/internal/service/inspect"
	"github.com/november7co/memberqa/pkg/log"
	"github.com/november7co/memberqa/pkg/retry"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a data-quality report for the upstream message set",
	Long:  `Fetches the upstream messages and reports blank texts, unparseable timestamps, duplicate bodies, and members with conflicting countable facts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx); err != nil {
			return err
		}
		upstreamCfg := config.NewUpstreamConfig(ctx)
		client := upstream.NewClient(upstreamCfg)

		logger.Info().Str("url", upstreamCfg.URL).Msg("fetching messages")

		// Unlike the serving path, a batch report can afford retries.
		var items []map[string]any
		retrier := retry.NewDefaultRetrier()
		err := retrier.Do(ctx, func() error {
			var fetchErr error
			items, fetchErr = client.FetchRaw(ctx)
			return fetchErr
		})
		if err != nil {
			return fmt.Errorf("fetch upstream messages: %w", err)
		}

		report := inspect.Build(items)
		fmt.Print(report.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
