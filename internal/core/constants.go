// Package core provides shared constants, configuration and date helpers
// for draftstats.
package core

import "time"

// API endpoints
const (
	APIBaseURL = "https://www.17lands.com"

	FiltersPath      = "/data/filters"
	ColorRatingsPath = "/color_ratings/data"
	CardRatingsPath  = "/card_ratings/data"
	CardMetagamePath = "/card_evaluation_metagame/data"
	PlayDrawPath     = "/data/play_draw"
)

// DateFmt is the date layout used by the API and everywhere in the cache.
// Day granularity only; no sub-day precision exists anywhere in the system.
const DateFmt = "2006-01-02"

// Epoch predates every expansion tracked by the provider. Range queries that
// should cover a format's whole lifetime start here.
var Epoch = time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)

// AllDecksColor is the aggregate row name in color ratings responses used to
// decide whether an (expansion, event type) range has any recorded games.
const AllDecksColor = "All Decks"

// DefaultExpansions are the expansions offered when the provider's filter
// metadata cannot be fetched.
var DefaultExpansions = []string{"ONE", "BRO", "DMU", "SNC", "NEO", "VOW", "MID"}

// DefaultEventTypes are the event types offered when the provider's filter
// metadata cannot be fetched.
var DefaultEventTypes = []string{
	"PremierDraft",
	"QuickDraft",
	"TradDraft",
	"Sealed",
	"TradSealed",
}

// ColorPairs lists the ten two-color guild pairs in display order. They
// stand in for the provider's color filter list when it is unavailable.
var ColorPairs = []string{
	"Azorius (WU)",
	"Dimir (UB)",
	"Rakdos (BR)",
	"Gruul (RG)",
	"Selesnya (GW)",
	"Orzhov (WB)",
	"Simic (GU)",
	"Golgari (BG)",
	"Izzet (UR)",
	"Boros (RW)",
}

// Version is the current CLI version.
const Version = "0.3.0"
