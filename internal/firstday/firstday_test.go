package firstday

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colwyn/draftstats/internal/api"
	"github.com/colwyn/draftstats/internal/cache"
	"github.com/colwyn/draftstats/internal/core"
)

// recordingFetcher counts every collaborator call and serves a fixed oracle.
type recordingFetcher struct {
	mu       sync.Mutex
	filters  api.Filters
	firstDay time.Time
	calls    int
}

func (f *recordingFetcher) bump() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

func (f *recordingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *recordingFetcher) FetchFilters(context.Context) (api.Filters, error) {
	f.bump()
	return f.filters, nil
}

func (f *recordingFetcher) FetchColorRatings(_ context.Context, _, _ string, _, end time.Time, _ bool) ([]api.ColorRating, error) {
	f.bump()
	games := 0
	if !f.firstDay.IsZero() && !end.Before(f.firstDay) {
		games = 100
	}
	return []api.ColorRating{{ColorName: core.AllDecksColor, Games: games}}, nil
}

func (f *recordingFetcher) FetchCardRatings(context.Context, string, string, time.Time, time.Time, string) ([]api.CardRating, error) {
	f.bump()
	return nil, nil
}

func (f *recordingFetcher) FetchCardEvaluationMetagame(context.Context, string, string, string, string, time.Time, time.Time) ([]api.CardEvaluationRow, error) {
	f.bump()
	return nil, nil
}

func (f *recordingFetcher) FetchPlayDraw(context.Context) ([]api.PlayDrawRow, error) {
	f.bump()
	return nil, nil
}

func TestLookupKnownFormat(t *testing.T) {
	d, ok := Lookup("ONE", "PremierDraft")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.February, 2, 0, 0, 0, 0, time.UTC), d)

	_, ok = Lookup("ONE", "NoSuchEvent")
	assert.False(t, ok)
}

func TestResolveOverridePrecedence(t *testing.T) {
	fetcher := &recordingFetcher{}
	store := cache.NewStore(fetcher, cache.NewMemoryBackend(), zerolog.Nop())

	day, err := Resolve(context.Background(), store, zerolog.Nop(), "KLR", "Sealed")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, "2020-11-12", core.FormatDate(*day))
	assert.Equal(t, 0, fetcher.callCount(),
		"an override hit must not touch the store or the oracle")
}

func TestResolveFallsBackToSearch(t *testing.T) {
	first := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	fetcher := &recordingFetcher{firstDay: first}
	store := cache.NewStore(fetcher, cache.NewMemoryBackend(), zerolog.Nop())

	day, err := Resolve(context.Background(), store, zerolog.Nop(), "ZZZ", "PremierDraft")
	require.NoError(t, err)
	require.NotNil(t, day)
	gap := day.Sub(first)
	if gap < 0 {
		gap = -gap
	}
	assert.LessOrEqual(t, gap, 24*time.Hour)
	assert.Positive(t, fetcher.callCount())
}

func TestGenerateOverrides(t *testing.T) {
	fetcher := &recordingFetcher{
		filters: api.Filters{
			Expansions: []string{"ONE", "ZZZ"},
			Formats:    []string{"PremierDraft"},
		},
		firstDay: time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC),
	}
	store := cache.NewStore(fetcher, cache.NewMemoryBackend(), zerolog.Nop())

	body, err := GenerateOverrides(context.Background(), store, zerolog.Nop())
	require.NoError(t, err)

	// Existing override entries survive untouched; the unknown format gets a
	// freshly searched entry.
	assert.Contains(t, body, `{"ONE", "PremierDraft"}: day(2023, time.February, 2),`)
	assert.Contains(t, body, `{"ZZZ", "PremierDraft"}: day(2024, time.March,`)

	// Output is sorted by expansion then event type.
	oneIdx := strings.Index(body, `{"ONE", "PremierDraft"}`)
	zzzIdx := strings.Index(body, `{"ZZZ", "PremierDraft"}`)
	assert.Less(t, oneIdx, zzzIdx)
}
