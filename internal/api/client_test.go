package api

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colwyn/draftstats/internal/core"
)

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := core.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestFetchFilters(t *testing.T) {
	transport := NewScriptedTransport()
	transport.Fixtures[core.FiltersPath] = []byte(
		`{"expansions":["ONE","BRO"],"formats":["PremierDraft"],"colors":["W","U"]}`)

	client := NewClient(transport, zerolog.Nop())
	filters, err := client.FetchFilters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"ONE", "BRO"}, filters.Expansions)
	assert.Equal(t, []string{"PremierDraft"}, filters.Formats)
	assert.Equal(t, []string{"W", "U"}, filters.Colors)
}

func TestFetchColorRatingsParams(t *testing.T) {
	transport := NewScriptedTransport()
	transport.Fixtures[core.ColorRatingsPath] = []byte(
		`[{"color_name":"All Decks","games":120,"wins":66,"win_rate":0.55}]`)

	client := NewClient(transport, zerolog.Nop())
	rows, err := client.FetchColorRatings(context.Background(), "ONE", "PremierDraft",
		testDate(t, "2023-02-02"), testDate(t, "2023-03-01"), true)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "All Decks", rows[0].ColorName)
	assert.Equal(t, 120, rows[0].Games)

	reqs := transport.Requests()
	require.Len(t, reqs, 1)
	params := reqs[0].Params
	assert.Equal(t, "ONE", params.Get("expansion"))
	assert.Equal(t, "PremierDraft", params.Get("event_type"))
	assert.Equal(t, "2023-02-02", params.Get("start_date"))
	assert.Equal(t, "2023-03-01", params.Get("end_date"))
	assert.Equal(t, "true", params.Get("combine_splash"))
}

func TestFetchCardRatingsOptionalColors(t *testing.T) {
	transport := NewScriptedTransport()
	client := NewClient(transport, zerolog.Nop())
	ctx := context.Background()

	start := testDate(t, "2022-09-01")
	end := testDate(t, "2022-10-01")

	_, err := client.FetchCardRatings(ctx, "DMU", "QuickDraft", start, end, "")
	require.NoError(t, err)
	_, err = client.FetchCardRatings(ctx, "DMU", "QuickDraft", start, end, "WU")
	require.NoError(t, err)

	reqs := transport.Requests()
	require.Len(t, reqs, 2)
	// The event type travels as "format" on this endpoint.
	assert.Equal(t, "DMU", reqs[0].Params.Get("expansion"))
	assert.Equal(t, "QuickDraft", reqs[0].Params.Get("format"))
	assert.False(t, reqs[0].Params.Has("colors"))
	assert.Equal(t, "WU", reqs[1].Params.Get("colors"))
}

func TestFetchCardEvaluationMetagameFilters(t *testing.T) {
	transport := NewScriptedTransport()
	transport.Fixtures[core.CardMetagamePath] = []byte(
		`[{"name":"Phyrexian Obliterator","week":3,"pick_rate":0.92}]`)

	client := NewClient(transport, zerolog.Nop())
	rows, err := client.FetchCardEvaluationMetagame(context.Background(),
		"ONE", "PremierDraft", "", "rare", testDate(t, "2023-02-02"), testDate(t, "2023-03-01"))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Phyrexian Obliterator", rows[0]["name"])

	reqs := transport.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "rare", reqs[0].Params.Get("rarity"))
	assert.False(t, reqs[0].Params.Has("colors"))
}

func TestFetchPlayDraw(t *testing.T) {
	transport := NewScriptedTransport()
	transport.Fixtures[core.PlayDrawPath] = []byte(
		`[{"expansion":"BRO","event_type":"PremierDraft","win_rate_on_play":0.032,"average_game_length":9.2}]`)

	client := NewClient(transport, zerolog.Nop())
	rows, err := client.FetchPlayDraw(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "BRO", rows[0].Expansion)
	assert.InDelta(t, 0.032, rows[0].WinRateOnPlay, 1e-9)
}

func TestFetchDecodeError(t *testing.T) {
	transport := NewScriptedTransport()
	transport.Fixtures[core.FiltersPath] = []byte(`not json`)

	client := NewClient(transport, zerolog.Nop())
	_, err := client.FetchFilters(context.Background())
	assert.Error(t, err)
}

func TestDefaultFilters(t *testing.T) {
	filters := DefaultFilters()

	assert.Contains(t, filters.Expansions, "ONE")
	assert.Contains(t, filters.Formats, "PremierDraft")
	assert.Contains(t, filters.Colors, "Azorius (WU)")

	// Callers may sort or truncate; the built-ins must stay intact.
	filters.Expansions[0] = "mutated"
	assert.Equal(t, "ONE", DefaultFilters().Expansions[0])
}
