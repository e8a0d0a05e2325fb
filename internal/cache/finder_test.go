package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colwyn/draftstats/internal/api"
	"github.com/colwyn/draftstats/internal/core"
)

// oracleFetcher simulates the provider's monotone availability: the
// "All Decks" row has games iff the range's end date reaches firstDay.
// A zero firstDay means the format never has data.
type oracleFetcher struct {
	mu       sync.Mutex
	firstDay time.Time
	fetches  int
}

func (f *oracleFetcher) FetchColorRatings(_ context.Context, _, _ string, _, end time.Time, _ bool) ([]api.ColorRating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	games := 0
	if !f.firstDay.IsZero() && !end.Before(f.firstDay) {
		games = 5000
	}
	return []api.ColorRating{{ColorName: core.AllDecksColor, Games: games}}, nil
}

func (f *oracleFetcher) FetchFilters(context.Context) (api.Filters, error) {
	return api.Filters{}, nil
}

func (f *oracleFetcher) FetchCardRatings(context.Context, string, string, time.Time, time.Time, string) ([]api.CardRating, error) {
	return nil, nil
}

func (f *oracleFetcher) FetchCardEvaluationMetagame(context.Context, string, string, string, string, time.Time, time.Time) ([]api.CardEvaluationRow, error) {
	return nil, nil
}

func (f *oracleFetcher) FetchPlayDraw(context.Context) ([]api.PlayDrawRow, error) {
	return nil, nil
}

func (f *oracleFetcher) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func assertWithinOneDay(t *testing.T, want time.Time, got *time.Time) {
	t.Helper()
	require.NotNil(t, got)
	gap := got.Sub(want)
	if gap < 0 {
		gap = -gap
	}
	assert.LessOrEqual(t, gap, 24*time.Hour,
		"found %s, want within one day of %s", core.FormatDate(*got), core.FormatDate(want))
}

func TestFinderConvergence(t *testing.T) {
	first := date("2021-06-15")
	fetcher := &oracleFetcher{firstDay: first}
	store, _, _ := newTestStore(fetcher, "2023-07-01")

	day, err := store.FirstDay(context.Background(), "STX", "PremierDraft")
	require.NoError(t, err)
	assertWithinOneDay(t, first, day)
	assert.LessOrEqual(t, fetcher.fetchCount(), 40,
		"search over a multi-year history must stay within the probe budget")
}

func TestFinderSweepsWholeHistory(t *testing.T) {
	// Every candidate boundary across a five-year history converges to
	// within one day, inside the probe budget.
	now := date("2024-01-01")
	for offset := 0; offset <= 1826; offset++ {
		first := now.AddDate(0, 0, -offset)
		fetcher := &oracleFetcher{firstDay: first}
		store, _, _ := newTestStore(fetcher, "2024-01-01")

		day, err := store.FirstDay(context.Background(), "KHM", "QuickDraft")
		require.NoError(t, err, "offset %d", offset)
		assertWithinOneDay(t, first, day)
		assert.LessOrEqual(t, fetcher.fetchCount(), 40, "offset %d", offset)
	}
}

func TestFinderAbsence(t *testing.T) {
	fetcher := &oracleFetcher{} // zero games for all of history
	store, _, _ := newTestStore(fetcher, "2023-07-01")

	day, err := store.FirstDay(context.Background(), "XYZ", "PremierDraft")
	require.NoError(t, err)
	assert.Nil(t, day)
	assert.Equal(t, 1, fetcher.fetchCount(),
		"a whole-history probe with zero games ends the search immediately")
}

func TestFinderScenario(t *testing.T) {
	// Zero games through 2020-01-01, non-zero by 2021-06-15: the result must
	// land in [2021-06-14, 2021-06-16].
	fetcher := &oracleFetcher{firstDay: date("2021-06-15")}
	store, _, _ := newTestStore(fetcher, "2023-01-10")
	ctx := context.Background()

	probe, err := store.ColorRatings(ctx, "STX", "PremierDraft", core.Epoch, date("2020-01-01"), false)
	require.NoError(t, err)
	assert.Equal(t, 0, probe[0].Games)

	probe, err = store.ColorRatings(ctx, "STX", "PremierDraft", core.Epoch, date("2021-06-15"), false)
	require.NoError(t, err)
	assert.Positive(t, probe[0].Games)

	day, err := store.FirstDay(ctx, "STX", "PremierDraft")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.True(t, !day.Before(date("2021-06-14")) && !day.After(date("2021-06-16")),
		"got %s", core.FormatDate(*day))
}

func TestFinderResultTTLAsymmetry(t *testing.T) {
	ctx := context.Background()

	// A discovered first day is effectively permanent.
	found := &oracleFetcher{firstDay: date("2022-04-28")}
	store, _, now := newTestStore(found, "2023-07-01")
	_, err := store.FirstDay(ctx, "SNC", "PremierDraft")
	require.NoError(t, err)
	probes := found.fetchCount()

	*now = now.AddDate(0, 0, 30)
	day, err := store.FirstDay(ctx, "SNC", "PremierDraft")
	require.NoError(t, err)
	assertWithinOneDay(t, date("2022-04-28"), day)
	assert.Equal(t, probes, found.fetchCount(), "a found date must not be re-searched")

	// A missing one is re-checked once its one-day TTL lapses.
	missing := &oracleFetcher{}
	store, _, now = newTestStore(missing, "2023-07-01")
	_, err = store.FirstDay(ctx, "FUT", "PremierDraft")
	require.NoError(t, err)
	require.Equal(t, 1, missing.fetchCount())

	*now = now.AddDate(0, 0, 2)
	day, err = store.FirstDay(ctx, "FUT", "PremierDraft")
	require.NoError(t, err)
	assert.Nil(t, day)
	assert.Equal(t, 2, missing.fetchCount())
}

func TestFinderProbesAreCacheHits(t *testing.T) {
	fetcher := &oracleFetcher{firstDay: date("2021-06-15")}
	store, _, _ := newTestStore(fetcher, "2023-07-01")
	ctx := context.Background()

	_, err := store.FirstDay(ctx, "STX", "PremierDraft")
	require.NoError(t, err)
	probes := fetcher.fetchCount()

	// Re-running the search path with a warm cache issues no new fetches:
	// repeat probes over the same ranges are cache hits.
	day, err := store.findFirstDay(ctx, "STX", "PremierDraft")
	require.NoError(t, err)
	assertWithinOneDay(t, date("2021-06-15"), day)
	assert.Equal(t, probes, fetcher.fetchCount())
}
