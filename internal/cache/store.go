package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/colwyn/draftstats/internal/api"
	"github.com/colwyn/draftstats/internal/core"
)

// Fetcher is the collaborator surface the Store populates itself from.
// *api.Client is the production implementation.
type Fetcher interface {
	FetchFilters(ctx context.Context) (api.Filters, error)
	FetchColorRatings(ctx context.Context, expansion, eventType string, start, end time.Time, combineSplash bool) ([]api.ColorRating, error)
	FetchCardRatings(ctx context.Context, expansion, eventType string, start, end time.Time, colors string) ([]api.CardRating, error)
	FetchCardEvaluationMetagame(ctx context.Context, expansion, eventType, colors, rarity string, start, end time.Time) ([]api.CardEvaluationRow, error)
	FetchPlayDraw(ctx context.Context) ([]api.PlayDrawRow, error)
}

// Store caches and persists 17Lands data.
//
// The Store owns every cell it holds; accessors hand out copies of the
// unwrapped values, never the cells themselves. All state is guarded by mu,
// which is never held across a fetch: concurrent misses on the same key are
// collapsed into one in-flight fetch by the singleflight group while misses
// on distinct keys proceed in parallel.
type Store struct {
	mu      sync.Mutex
	fetcher Fetcher
	backend Backend
	log     zerolog.Logger
	flight  singleflight.Group

	// now is the day-granularity clock; overridden in tests.
	now func() time.Time

	filters      *Cell[api.Filters]
	playDraw     *Cell[[]api.PlayDrawRow]
	colorRatings map[RatingsKey]*Cell[[]api.ColorRating]
	cardRatings  map[CardsKey]*Cell[[]api.CardRating]
	cardMeta     map[MetaKey]*Cell[[]api.CardEvaluationRow]
	firstDays    map[FormatKey]*Cell[*time.Time]
}

// NewStore creates a Store backed by the given fetcher and persistence
// backend. Any previously persisted state the backend can produce is loaded;
// a missing, corrupt or incompatible blob silently yields an empty Store.
func NewStore(fetcher Fetcher, backend Backend, log zerolog.Logger) *Store {
	s := &Store{
		fetcher:      fetcher,
		backend:      backend,
		log:          log.With().Str("component", "storage").Logger(),
		now:          core.Today,
		colorRatings: make(map[RatingsKey]*Cell[[]api.ColorRating]),
		cardRatings:  make(map[CardsKey]*Cell[[]api.CardRating]),
		cardMeta:     make(map[MetaKey]*Cell[[]api.CardEvaluationRow]),
		firstDays:    make(map[FormatKey]*Cell[*time.Time]),
	}

	snap, err := backend.Load()
	if err != nil {
		s.log.Debug().Err(err).Msg("no usable persisted storage; starting empty")
		return s
	}
	s.restore(snap)
	s.log.Debug().Msg("loaded persisted storage")
	return s
}

// Filters returns the provider's filter metadata.
func (s *Store) Filters(ctx context.Context) (api.Filters, error) {
	s.log.Info().Msg("retrieving filters")

	if f, ok := s.lookupFilters(); ok {
		return f, nil
	}

	v, err, _ := s.flight.Do("filters", func() (any, error) {
		if f, ok := s.lookupFilters(); ok {
			return f, nil
		}
		filters, err := s.fetcher.FetchFilters(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.filters = NewCell(filters, s.now())
		s.persistLocked()
		s.mu.Unlock()
		return copyFilters(filters), nil
	})
	if err != nil {
		return api.Filters{}, err
	}
	return v.(api.Filters), nil
}

func (s *Store) lookupFilters() (api.Filters, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if s.filters == nil {
		return api.Filters{}, false
	}
	return copyFilters(s.filters.Value), true
}

// ColorRatings returns the aggregate color statistics for an (expansion,
// event type) pair over [start, end].
func (s *Store) ColorRatings(ctx context.Context, expansion, eventType string, start, end time.Time, combineSplash bool) ([]api.ColorRating, error) {
	key := NewRatingsKey(expansion, eventType, start, end, combineSplash)
	s.log.Info().Stringer("key", key).Msg("retrieving color ratings")

	if rows, ok := s.lookupColorRatings(key); ok {
		return rows, nil
	}

	v, err, _ := s.flight.Do(key.String(), func() (any, error) {
		if rows, ok := s.lookupColorRatings(key); ok {
			return rows, nil
		}
		rows, err := s.fetcher.FetchColorRatings(ctx, expansion, eventType, start, end, combineSplash)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.colorRatings[key] = NewCell(rows, s.now())
		s.persistLocked()
		s.mu.Unlock()
		return slices.Clone(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]api.ColorRating), nil
}

func (s *Store) lookupColorRatings(key RatingsKey) ([]api.ColorRating, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if cell, ok := s.colorRatings[key]; ok {
		return slices.Clone(cell.Value), true
	}
	return nil, false
}

// CardRatings returns the aggregate card statistics for an (expansion,
// event type) pair over [start, end], optionally restricted to a color
// filter.
func (s *Store) CardRatings(ctx context.Context, expansion, eventType string, start, end time.Time, colors string) ([]api.CardRating, error) {
	key := NewCardsKey(expansion, eventType, start, end, colors)
	s.log.Info().Stringer("key", key).Msg("retrieving card ratings")

	if rows, ok := s.lookupCardRatings(key); ok {
		return rows, nil
	}

	v, err, _ := s.flight.Do(key.String(), func() (any, error) {
		if rows, ok := s.lookupCardRatings(key); ok {
			return rows, nil
		}
		rows, err := s.fetcher.FetchCardRatings(ctx, expansion, eventType, start, end, colors)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cardRatings[key] = NewCell(rows, s.now())
		s.persistLocked()
		s.mu.Unlock()
		return slices.Clone(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]api.CardRating), nil
}

func (s *Store) lookupCardRatings(key CardsKey) ([]api.CardRating, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if cell, ok := s.cardRatings[key]; ok {
		return slices.Clone(cell.Value), true
	}
	return nil, false
}

// CardEvaluationMetagame returns the card evaluation metagame table for an
// (expansion, event type) pair over [start, end].
func (s *Store) CardEvaluationMetagame(ctx context.Context, expansion, eventType, colors, rarity string, start, end time.Time) ([]api.CardEvaluationRow, error) {
	key := NewMetaKey(expansion, eventType, colors, rarity, start, end)
	s.log.Info().Stringer("key", key).Msg("retrieving card evaluation metagame")

	if rows, ok := s.lookupCardMeta(key); ok {
		return rows, nil
	}

	v, err, _ := s.flight.Do(key.String(), func() (any, error) {
		if rows, ok := s.lookupCardMeta(key); ok {
			return rows, nil
		}
		rows, err := s.fetcher.FetchCardEvaluationMetagame(ctx, expansion, eventType, colors, rarity, start, end)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cardMeta[key] = NewCell(rows, s.now())
		s.persistLocked()
		s.mu.Unlock()
		return slices.Clone(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]api.CardEvaluationRow), nil
}

func (s *Store) lookupCardMeta(key MetaKey) ([]api.CardEvaluationRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if cell, ok := s.cardMeta[key]; ok {
		return slices.Clone(cell.Value), true
	}
	return nil, false
}

// PlayDraw returns the global play/draw advantage table.
func (s *Store) PlayDraw(ctx context.Context) ([]api.PlayDrawRow, error) {
	s.log.Info().Msg("retrieving play/draw advantage")

	if rows, ok := s.lookupPlayDraw(); ok {
		return rows, nil
	}

	v, err, _ := s.flight.Do("playdraw", func() (any, error) {
		if rows, ok := s.lookupPlayDraw(); ok {
			return rows, nil
		}
		rows, err := s.fetcher.FetchPlayDraw(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.playDraw = NewCell(rows, s.now())
		s.persistLocked()
		s.mu.Unlock()
		return slices.Clone(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]api.PlayDrawRow), nil
}

func (s *Store) lookupPlayDraw() ([]api.PlayDrawRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if s.playDraw == nil {
		return nil, false
	}
	return slices.Clone(s.playDraw.Value), true
}

// FirstDay returns the first calendar date with recorded games for an
// (expansion, event type) pair, or nil if the provider has none at all. On a
// miss the date is derived with the halving-interval search in finder.go. A
// discovered date is effectively immutable and caches for FoundFirstDayTTL;
// an absent one is re-checked after MissingFirstDayTTL.
func (s *Store) FirstDay(ctx context.Context, expansion, eventType string) (*time.Time, error) {
	key := FormatKey{Expansion: expansion, EventType: eventType}
	s.log.Info().Stringer("key", key).Msg("retrieving first day")

	if day, ok := s.lookupFirstDay(key); ok {
		return day, nil
	}

	v, err, _ := s.flight.Do(key.String(), func() (any, error) {
		if day, ok := s.lookupFirstDay(key); ok {
			return day, nil
		}
		day, err := s.findFirstDay(ctx, expansion, eventType)
		if err != nil {
			return nil, err
		}
		ttl := MissingFirstDayTTL
		if day != nil {
			ttl = FoundFirstDayTTL
		}
		s.mu.Lock()
		s.firstDays[key] = NewCellWithTTL(day, s.now(), ttl)
		s.persistLocked()
		s.mu.Unlock()
		return copyDay(day), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*time.Time), nil
}

func (s *Store) lookupFirstDay(key FormatKey) (*time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if cell, ok := s.firstDays[key]; ok {
		return copyDay(cell.Value), true
	}
	return nil, false
}

// purgeLocked removes every expired cell from every map. Runs under mu on
// each access; the full sweep trades a little CPU for one code path and
// guaranteed eventual cleanup of all stale entries.
func (s *Store) purgeLocked() {
	today := s.now()

	if s.filters != nil && s.filters.Expired(today) {
		s.filters = nil
	}
	if s.playDraw != nil && s.playDraw.Expired(today) {
		s.playDraw = nil
	}
	for key, cell := range s.colorRatings {
		if cell.Expired(today) {
			delete(s.colorRatings, key)
		}
	}
	for key, cell := range s.cardRatings {
		if cell.Expired(today) {
			delete(s.cardRatings, key)
		}
	}
	for key, cell := range s.cardMeta {
		if cell.Expired(today) {
			delete(s.cardMeta, key)
		}
	}
	for key, cell := range s.firstDays {
		if cell.Expired(today) {
			delete(s.firstDays, key)
		}
	}
}

// persistLocked writes the whole Store through the backend. Durability is
// best-effort: a write failure is logged and the in-memory state stands.
func (s *Store) persistLocked() {
	s.log.Debug().Msg("persisting storage")
	if err := s.backend.Save(s.snapshotLocked()); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist storage")
	}
}

func copyFilters(f api.Filters) api.Filters {
	return api.Filters{
		Expansions: slices.Clone(f.Expansions),
		Formats:    slices.Clone(f.Formats),
		Colors:     slices.Clone(f.Colors),
	}
}

func copyDay(day *time.Time) *time.Time {
	if day == nil {
		return nil
	}
	d := *day
	return &d
}
