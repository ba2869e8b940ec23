package slatectl

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/okian/tipoff/pkg/logger"
)

// Run executes one CLI pass: upload whatever snapshot files were
// given, then fetch and render the ranked slate and the double header.
func Run(ctx context.Context, config *Config) error {
	log := logger.Get()
	log.Info(ctx, "starting slatectl run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("top", config.Top),
		logger.String("timeout", config.Timeout.String()),
	)

	client := newHTTPClient(config.BaseURL, config.Timeout)

	// Step 1: Check service health
	if err := client.CheckHealth(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Upload the given snapshot documents concurrently. The
	// sections are independent, so the requests can overlap freely.
	if err := uploadSnapshots(ctx, config, client); err != nil {
		return fmt.Errorf("snapshot upload failed: %w", err)
	}

	// Step 3: Fetch the ranked slate
	slate, err := client.FetchSlate(ctx)
	if err != nil {
		return fmt.Errorf("slate retrieval failed: %w", err)
	}

	// Step 4: Fetch the double header
	doubleHeader, err := client.FetchDoubleHeader(ctx)
	if err != nil {
		return fmt.Errorf("double header retrieval failed: %w", err)
	}

	// Step 5: Render
	if err := renderReport(slate, doubleHeader, config.Top); err != nil {
		return fmt.Errorf("rendering report failed: %w", err)
	}

	log.Info(ctx, "slatectl run completed",
		logger.Int("ranked", len(slate.Ranked)),
		logger.Int("skipped", len(slate.Skipped)),
		logger.Int("warnings", len(slate.Warnings)),
	)
	return nil
}

// uploadSnapshots posts every configured file to its section.
func uploadSnapshots(ctx context.Context, config *Config, client *HTTPClient) error {
	uploads := []struct {
		kind string
		path string
	}{
		{"players", config.PlayersFile},
		{"teams", config.TeamsFile},
		{"injuries", config.InjuriesFile},
		{"schedule", config.ScheduleFile},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, u := range uploads {
		if u.path == "" {
			continue
		}
		g.Go(func() error {
			result, err := client.UploadCSV(gctx, u.kind, u.path)
			if err != nil {
				return err
			}
			logger.Get().Info(gctx, "upload accepted",
				logger.String("kind", result.Kind),
				logger.Int("rows", result.Rows),
				logger.Int("warnings", len(result.Warnings)),
			)
			for _, w := range result.Warnings {
				logger.Get().Warn(gctx, "upload warning",
					logger.String("kind", result.Kind),
					logger.String("subject", w.Subject),
					logger.String("detail", w.Message),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("uploading snapshots: %w", err)
	}
	return nil
}
