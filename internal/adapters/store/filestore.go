package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	model "github.com/okian/tipoff/internal/domain/model"
	"github.com/okian/tipoff/pkg/metrics"
)

const (
	defaultDir      = "./data"
	defaultFilename = "snapshot.json"
	fileMode        = 0o644
	dirMode         = 0o755
)

// FileStore keeps the snapshot in memory behind an RWMutex and mirrors
// every change to a single JSON document so a restart resumes from the
// last upload.
type FileStore struct {
	mu   sync.RWMutex
	snap model.Snapshot

	dir      string
	filename string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file store with configuration options. No I/O
// happens until Load or the first Replace.
func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{
		dir:      defaultDir,
		filename: defaultFilename,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the snapshot document's location.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.filename)
}

// Load reads the persisted snapshot if one exists. A missing document
// is a fresh day, not an error; a corrupt one is surfaced so the
// operator can decide what to do with it.
func (s *FileStore) Load(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading snapshot document: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	s.snap = snap
	s.updateGauges()
	return nil
}

// ReplacePlayers swaps the player stat section.
func (s *FileStore) ReplacePlayers(_ context.Context, records []model.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Players = append([]model.PlayerRecord(nil), records...)
	s.snap.PlayersUploadedAt = time.Now().UTC()
	return s.commit()
}

// ReplaceTeams swaps the team advanced-stat section.
func (s *FileStore) ReplaceTeams(_ context.Context, records []model.TeamRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Teams = append([]model.TeamRecord(nil), records...)
	s.snap.TeamsUploadedAt = time.Now().UTC()
	return s.commit()
}

// ReplaceInjuries swaps the injury report section.
func (s *FileStore) ReplaceInjuries(_ context.Context, entries []model.InjuryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Injuries = append([]model.InjuryEntry(nil), entries...)
	s.snap.InjuriesUploadedAt = time.Now().UTC()
	return s.commit()
}

// ReplaceSchedule swaps the day's schedule section.
func (s *FileStore) ReplaceSchedule(_ context.Context, games []model.ScheduledGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Games = copyGames(games)
	s.snap.ScheduleUploadedAt = time.Now().UTC()
	return s.commit()
}

// Snapshot returns a deep copy of the current snapshot.
func (s *FileStore) Snapshot(_ context.Context) (model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySnapshot(s.snap), nil
}

// commit stamps a new snapshot identity and writes the document
// atomically: a temp file in the same directory renamed over the old
// one so readers never observe a partial write. Callers hold the
// write lock.
func (s *FileStore) commit() error {
	s.snap.ID = uuid.New()

	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	raw, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, fileMode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting snapshot mode: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot document: %w", err)
	}

	metrics.RecordSnapshotPersisted()
	s.updateGauges()
	return nil
}

// updateGauges pushes section sizes to the metrics registry. Callers
// hold at least the read lock.
func (s *FileStore) updateGauges() {
	metrics.UpdateSnapshotSizes(len(s.snap.Players), len(s.snap.Teams), len(s.snap.Injuries), len(s.snap.Games))
}

func copySnapshot(snap model.Snapshot) model.Snapshot {
	out := snap
	out.Players = append([]model.PlayerRecord(nil), snap.Players...)
	out.Teams = append([]model.TeamRecord(nil), snap.Teams...)
	out.Injuries = append([]model.InjuryEntry(nil), snap.Injuries...)
	out.Games = copyGames(snap.Games)
	return out
}

// copyGames clones the schedule including each game's spread pointer,
// so snapshots never alias upload buffers or each other.
func copyGames(games []model.ScheduledGame) []model.ScheduledGame {
	out := make([]model.ScheduledGame, len(games))
	for i, g := range games {
		out[i] = g
		if g.Spread != nil {
			spread := *g.Spread
			out[i].Spread = &spread
		}
	}
	return out
}
