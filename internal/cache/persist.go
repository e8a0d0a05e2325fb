package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/colwyn/draftstats/internal/api"
)

// snapshotVersion tags the persisted blob so future schema changes invalidate
// old caches instead of silently decoding into garbage.
const snapshotVersion = 1

// snapshot is the JSON document persisted by the Store: every map, every
// cell, as one unit. Keyed maps are flattened into entry arrays so keys keep
// their explicit fields instead of being stringified.
type snapshot struct {
	Version      int                      `json:"version"`
	Filters      *Cell[api.Filters]       `json:"filters"`
	PlayDraw     *Cell[[]api.PlayDrawRow] `json:"play_draw"`
	ColorRatings []colorRatingsEntry      `json:"color_ratings"`
	CardRatings  []cardRatingsEntry       `json:"card_ratings"`
	CardMeta     []cardMetaEntry          `json:"card_evaluation_metagame"`
	FirstDays    []firstDayEntry          `json:"first_days"`
}

type colorRatingsEntry struct {
	Key  RatingsKey               `json:"key"`
	Cell *Cell[[]api.ColorRating] `json:"cell"`
}

type cardRatingsEntry struct {
	Key  CardsKey                `json:"key"`
	Cell *Cell[[]api.CardRating] `json:"cell"`
}

type cardMetaEntry struct {
	Key  MetaKey                        `json:"key"`
	Cell *Cell[[]api.CardEvaluationRow] `json:"cell"`
}

type firstDayEntry struct {
	Key  FormatKey         `json:"key"`
	Cell *Cell[*time.Time] `json:"cell"`
}

// snapshotLocked captures the Store's current state. Caller holds mu.
func (s *Store) snapshotLocked() *snapshot {
	snap := &snapshot{
		Version:  snapshotVersion,
		Filters:  s.filters,
		PlayDraw: s.playDraw,
	}
	for key, cell := range s.colorRatings {
		snap.ColorRatings = append(snap.ColorRatings, colorRatingsEntry{Key: key, Cell: cell})
	}
	for key, cell := range s.cardRatings {
		snap.CardRatings = append(snap.CardRatings, cardRatingsEntry{Key: key, Cell: cell})
	}
	for key, cell := range s.cardMeta {
		snap.CardMeta = append(snap.CardMeta, cardMetaEntry{Key: key, Cell: cell})
	}
	for key, cell := range s.firstDays {
		snap.FirstDays = append(snap.FirstDays, firstDayEntry{Key: key, Cell: cell})
	}
	return snap
}

// restore replaces the Store's state with a loaded snapshot. Only called
// during construction, before the Store is shared.
func (s *Store) restore(snap *snapshot) {
	s.filters = snap.Filters
	s.playDraw = snap.PlayDraw
	for _, entry := range snap.ColorRatings {
		s.colorRatings[entry.Key] = entry.Cell
	}
	for _, entry := range snap.CardRatings {
		s.cardRatings[entry.Key] = entry.Cell
	}
	for _, entry := range snap.CardMeta {
		s.cardMeta[entry.Key] = entry.Cell
	}
	for _, entry := range snap.FirstDays {
		s.firstDays[entry.Key] = entry.Cell
	}
}

// Backend persists Store snapshots.
// The default implementation is FileBackend; tests use MemoryBackend.
type Backend interface {
	// Load returns the previously saved snapshot. Any error (missing blob,
	// decode failure, version mismatch) means "no cache yet" to the Store.
	Load() (*snapshot, error)

	// Save persists the snapshot, replacing any previous one.
	Save(*snapshot) error
}

// FileBackend stores the snapshot as one JSON file on disk.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to the given file path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads and decodes the snapshot file.
func (b *FileBackend) Load() (*snapshot, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding storage blob: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("storage blob version %d, want %d", snap.Version, snapshotVersion)
	}
	return &snap, nil
}

// Save writes the snapshot atomically via temp file + rename.
func (b *FileBackend) Save(snap *snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return err
	}

	tmpPath := b.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, b.path)
}

// MemoryBackend keeps the encoded snapshot in memory. It round-trips through
// JSON so tests exercise the same encoding path as FileBackend.
type MemoryBackend struct {
	data  []byte
	saves int
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load decodes the last saved snapshot.
func (b *MemoryBackend) Load() (*snapshot, error) {
	if b.data == nil {
		return nil, os.ErrNotExist
	}
	var snap snapshot
	if err := json.Unmarshal(b.data, &snap); err != nil {
		return nil, err
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("storage blob version %d, want %d", snap.Version, snapshotVersion)
	}
	return &snap, nil
}

// Save encodes and stores the snapshot.
func (b *MemoryBackend) Save(snap *snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	b.data = data
	b.saves++
	return nil
}

// Saves returns how many times Save has been called (for tests).
func (b *MemoryBackend) Saves() int {
	return b.saves
}
