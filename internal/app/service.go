// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	ingest "github.com/okian/tipoff/internal/adapters/ingest"
	store "github.com/okian/tipoff/internal/adapters/store"
	injury "github.com/okian/tipoff/internal/domain/injury"
	model "github.com/okian/tipoff/internal/domain/model"
	normalize "github.com/okian/tipoff/internal/domain/normalize"
	score "github.com/okian/tipoff/internal/domain/score"
	slate "github.com/okian/tipoff/internal/domain/slate"
	"github.com/okian/tipoff/pkg/logger"
	"github.com/okian/tipoff/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultTopN    = 3
	defaultDataDir = "./data"
)

// Service orchestrates the snapshot store and the slate pipeline. It
// implements the dependencies of the HTTP API: uploads replace snapshot
// sections, queries run the ranking pipeline over a consistent copy.
type Service struct {
	mu sync.RWMutex

	// Core components
	snapshots store.Store
	builder   *slate.Builder

	// Configuration
	dataDir   string
	topN      int
	weights   score.Weights
	combine   score.StarCombine
	mustWatch float64
	discounts map[model.InjuryStatus]float64
	windows   []slate.Window

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore sets the snapshot store. Tests use this to inject a store
// rooted in a temp dir.
func WithStore(st store.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.snapshots = st
		}
	}
}

// WithDataDir sets the snapshot persistence directory used when no
// store is injected.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithTopN sets the star-factor roster depth.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.topN = n
		}
	}
}

// WithWeights sets the scoring weights.
func WithWeights(w score.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithStarCombine sets how the two teams' star factors merge.
func WithStarCombine(mode score.StarCombine) Option {
	return func(s *Service) {
		if mode != "" {
			s.combine = mode
		}
	}
}

// WithMustWatchThreshold sets the must-watch score cutoff.
func WithMustWatchThreshold(threshold float64) Option {
	return func(s *Service) {
		s.mustWatch = threshold
	}
}

// WithDiscounts sets the injury status discount table.
func WithDiscounts(discounts map[model.InjuryStatus]float64) Option {
	return func(s *Service) {
		if len(discounts) > 0 {
			s.discounts = discounts
		}
	}
}

// WithWindows sets the viewing windows in priority order.
func WithWindows(windows []slate.Window) Option {
	return func(s *Service) {
		if len(windows) > 0 {
			s.windows = windows
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataDir:   defaultDataDir,
		topN:      defaultTopN,
		weights:   score.DefaultWeights(),
		combine:   score.StarCombineSum,
		mustWatch: 80.0,
		discounts: injury.DefaultDiscounts(),
		windows:   slate.DefaultWindows(),
		logger:    nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components and loads any persisted
// snapshot so a restart resumes from the last upload.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting slate service...")

	if s.snapshots == nil {
		s.snapshots = store.NewFileStore(store.WithDir(s.dataDir))
	}
	if fs, ok := s.snapshots.(*store.FileStore); ok {
		if err := fs.Load(ctx); err != nil {
			return fmt.Errorf("loading persisted snapshot: %w", err)
		}
		s.logger.Info(ctx, "snapshot store ready", logger.String("path", fs.Path()))
	}

	s.builder = slate.NewBuilder(
		slate.WithNormalizer(normalize.New(normalize.WithTopN(s.topN))),
		slate.WithScorer(score.New(
			score.WithWeights(s.weights),
			score.WithStarCombine(s.combine),
			score.WithMustWatchThreshold(s.mustWatch),
		)),
		slate.WithDiscounts(s.discounts),
	)

	s.started = true
	s.logger.Info(ctx, "slate service started",
		logger.Int("topN", s.topN),
		logger.String("starCombine", string(s.combine)),
		logger.Int("windows", len(s.windows)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "slate service stopped")
}

// Ingest parses one upload document and replaces the matching snapshot
// section. The latest upload wins wholesale; nothing merges.
func (s *Service) Ingest(ctx context.Context, kind ingest.Kind, r io.Reader) (ingest.Summary, error) {
	switch kind {
	case ingest.KindPlayers:
		return s.IngestPlayers(ctx, r)
	case ingest.KindTeams:
		return s.IngestTeams(ctx, r)
	case ingest.KindInjuries:
		return s.IngestInjuries(ctx, r)
	case ingest.KindSchedule:
		return s.IngestSchedule(ctx, r)
	default:
		return ingest.Summary{}, fmt.Errorf("%w: %q", ErrUnknownUploadKind, kind)
	}
}

// IngestPlayers replaces the player stat section from a CSV document.
func (s *Service) IngestPlayers(ctx context.Context, r io.Reader) (ingest.Summary, error) {
	records, warnings, err := ingest.ParsePlayers(r)
	if err != nil {
		metrics.RecordUploadError(string(ingest.KindPlayers))
		return ingest.Summary{}, fmt.Errorf("parsing player upload: %w", err)
	}
	if err := s.snapshots.ReplacePlayers(ctx, records); err != nil {
		return ingest.Summary{}, fmt.Errorf("storing player upload: %w", err)
	}
	return s.accepted(ctx, ingest.KindPlayers, len(records), warnings), nil
}

// IngestTeams replaces the team advanced-stat section from a CSV document.
func (s *Service) IngestTeams(ctx context.Context, r io.Reader) (ingest.Summary, error) {
	records, warnings, err := ingest.ParseTeams(r)
	if err != nil {
		metrics.RecordUploadError(string(ingest.KindTeams))
		return ingest.Summary{}, fmt.Errorf("parsing team upload: %w", err)
	}
	if err := s.snapshots.ReplaceTeams(ctx, records); err != nil {
		return ingest.Summary{}, fmt.Errorf("storing team upload: %w", err)
	}
	return s.accepted(ctx, ingest.KindTeams, len(records), warnings), nil
}

// IngestInjuries replaces the injury report section from a CSV document.
func (s *Service) IngestInjuries(ctx context.Context, r io.Reader) (ingest.Summary, error) {
	entries, warnings, err := ingest.ParseInjuries(r)
	if err != nil {
		metrics.RecordUploadError(string(ingest.KindInjuries))
		return ingest.Summary{}, fmt.Errorf("parsing injury upload: %w", err)
	}
	if err := s.snapshots.ReplaceInjuries(ctx, entries); err != nil {
		return ingest.Summary{}, fmt.Errorf("storing injury upload: %w", err)
	}
	return s.accepted(ctx, ingest.KindInjuries, len(entries), warnings), nil
}

// IngestSchedule replaces the day's schedule section from a CSV document.
func (s *Service) IngestSchedule(ctx context.Context, r io.Reader) (ingest.Summary, error) {
	games, warnings, err := ingest.ParseSchedule(r)
	if err != nil {
		metrics.RecordUploadError(string(ingest.KindSchedule))
		return ingest.Summary{}, fmt.Errorf("parsing schedule upload: %w", err)
	}
	if err := s.snapshots.ReplaceSchedule(ctx, games); err != nil {
		return ingest.Summary{}, fmt.Errorf("storing schedule upload: %w", err)
	}
	return s.accepted(ctx, ingest.KindSchedule, len(games), warnings), nil
}

// accepted records upload metrics and logs parse warnings.
func (s *Service) accepted(ctx context.Context, kind ingest.Kind, rows int, warnings []model.Warning) ingest.Summary {
	metrics.RecordUploadAccepted(string(kind))
	metrics.RecordUploadRows(string(kind), rows)
	metrics.RecordUploadWarnings(string(kind), len(warnings))

	for _, w := range warnings {
		s.logger.Warn(ctx, "upload warning",
			logger.String("kind", string(kind)),
			logger.String("warning", string(w.Kind)),
			logger.String("subject", w.Subject),
			logger.String("detail", w.Message),
		)
	}
	s.logger.Info(ctx, "upload accepted",
		logger.String("kind", string(kind)),
		logger.Int("rows", rows),
		logger.Int("warnings", len(warnings)),
	)

	return ingest.Summary{Kind: kind, Rows: rows, Warnings: warnings}
}

// BuildSlate ranks the current snapshot and returns the full report,
// skipped games and warnings included.
func (s *Service) BuildSlate(ctx context.Context) (slate.Report, error) {
	s.mu.RLock()
	builder := s.builder
	started := s.started
	s.mu.RUnlock()

	if !started {
		return slate.Report{}, ErrNotStarted
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return slate.Report{}, fmt.Errorf("reading snapshot: %w", err)
	}

	start := time.Now()
	report := builder.Build(ctx, snap)

	metrics.RecordSlateBuild()
	metrics.RecordSlateBuildDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateSlateGamesRanked(len(report.Ranked))
	metrics.UpdateSlateGamesSkipped(len(report.Skipped))
	metrics.UpdateSlateTeamErrors(len(report.Errors))
	metrics.UpdateSlateBuildWarnings(len(report.Warnings))

	mustWatch := 0
	for _, g := range report.Ranked {
		if g.MustWatch {
			mustWatch++
		}
	}
	metrics.UpdateSlateMustWatch(mustWatch)
	if len(report.Ranked) > 0 {
		metrics.UpdateSlateTopScore(report.Ranked[0].Score)
	} else {
		metrics.UpdateSlateTopScore(0)
	}

	for _, e := range report.Errors {
		s.logger.Warn(ctx, "team data error", logger.String("team", e.Team), logger.String("detail", e.Message))
	}

	return report, nil
}

// DoubleHeader ranks the current snapshot and picks the best in-window
// game per viewing window.
func (s *Service) DoubleHeader(ctx context.Context) (slate.DoubleHeaderResult, error) {
	report, err := s.BuildSlate(ctx)
	if err != nil {
		return slate.DoubleHeaderResult{}, err
	}

	s.mu.RLock()
	windows := s.windows
	s.mu.RUnlock()

	return slate.SelectDoubleHeader(report.Ranked, windows), nil
}

// Snapshot returns a deep copy of the current snapshot.
func (s *Service) Snapshot(ctx context.Context) (model.Snapshot, error) {
	return s.snapshots.Snapshot(ctx)
}

// Windows returns the configured viewing windows in priority order.
func (s *Service) Windows() []slate.Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]slate.Window(nil), s.windows...)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":            s.started,
		"topNPlayers":        s.topN,
		"starCombine":        string(s.combine),
		"mustWatchThreshold": s.mustWatch,
		"windows":            len(s.windows),
	}

	if s.started {
		if snap, err := s.snapshots.Snapshot(context.Background()); err == nil {
			stats["players"] = len(snap.Players)
			stats["teams"] = len(snap.Teams)
			stats["injuries"] = len(snap.Injuries)
			stats["games"] = len(snap.Games)
			stats["snapshotID"] = snap.ID.String()
		}
	}

	return stats
}
