// Package api provides the HTTP client and types for the 17Lands data API.
package api

import (
	"context"
	"net/url"

	"github.com/colwyn/draftstats/internal/core"
)

// Filters describes the filter metadata exposed by the provider: which
// expansions, event types and color filters exist.
type Filters struct {
	Expansions []string `json:"expansions"`
	Formats    []string `json:"formats"`
	Colors     []string `json:"colors"`
}

// DefaultFilters returns the built-in filter set used when the provider
// cannot be reached and no cached copy exists.
func DefaultFilters() Filters {
	return Filters{
		Expansions: append([]string(nil), core.DefaultExpansions...),
		Formats:    append([]string(nil), core.DefaultEventTypes...),
		Colors:     append([]string(nil), core.ColorPairs...),
	}
}

// ColorRating is one row of the aggregate color statistics table. The
// "All Decks" row carries the format-wide totals.
type ColorRating struct {
	ColorName string  `json:"color_name"`
	Games     int     `json:"games"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
	IsSummary bool    `json:"is_summary"`
}

// CardRating is one row of the aggregate card statistics table.
type CardRating struct {
	Name               string  `json:"name"`
	Color              string  `json:"color"`
	Rarity             string  `json:"rarity"`
	SeenCount          int     `json:"seen_count"`
	AvgSeen            float64 `json:"avg_seen"`
	PickCount          int     `json:"pick_count"`
	AvgPick            float64 `json:"avg_pick"`
	EverDrawnGameCount int     `json:"ever_drawn_game_count"`
	EverDrawnWinRate   float64 `json:"ever_drawn_win_rate"`
}

// CardEvaluationRow is one row of the card evaluation metagame table. The
// provider varies its columns over time, so rows stay schemaless and the
// renderer passes fields through untouched.
type CardEvaluationRow map[string]any

// PlayDrawRow is one row of the global play/draw advantage table.
type PlayDrawRow struct {
	Expansion         string  `json:"expansion"`
	EventType         string  `json:"event_type"`
	WinRateOnPlay     float64 `json:"win_rate_on_play"`
	AverageGameLength float64 `json:"average_game_length"`
}

// Transport is the interface for performing raw API requests.
// The default implementation is HTTPTransport; tests use ScriptedTransport.
type Transport interface {
	Get(ctx context.Context, path string, params url.Values) ([]byte, error)
}
