package cache

import (
	"fmt"
	"time"

	"github.com/colwyn/draftstats/internal/core"
)

// Composite cache keys. Dates are stored as YYYY-MM-DD strings so keys are
// comparable, hashable and serialize cleanly.

// RatingsKey identifies one color ratings query.
type RatingsKey struct {
	Expansion     string `json:"expansion"`
	EventType     string `json:"event_type"`
	Start         string `json:"start"`
	End           string `json:"end"`
	CombineSplash bool   `json:"combine_splash"`
}

// NewRatingsKey builds a RatingsKey from query arguments.
func NewRatingsKey(expansion, eventType string, start, end time.Time, combineSplash bool) RatingsKey {
	return RatingsKey{
		Expansion:     expansion,
		EventType:     eventType,
		Start:         core.FormatDate(start),
		End:           core.FormatDate(end),
		CombineSplash: combineSplash,
	}
}

func (k RatingsKey) String() string {
	return fmt.Sprintf("colors/%s/%s/%s/%s/splash=%t",
		k.Expansion, k.EventType, k.Start, k.End, k.CombineSplash)
}

// CardsKey identifies one card ratings query.
type CardsKey struct {
	Expansion string `json:"expansion"`
	EventType string `json:"event_type"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Colors    string `json:"colors"`
}

// NewCardsKey builds a CardsKey from query arguments.
func NewCardsKey(expansion, eventType string, start, end time.Time, colors string) CardsKey {
	return CardsKey{
		Expansion: expansion,
		EventType: eventType,
		Start:     core.FormatDate(start),
		End:       core.FormatDate(end),
		Colors:    colors,
	}
}

func (k CardsKey) String() string {
	return fmt.Sprintf("cards/%s/%s/%s/%s/colors=%s",
		k.Expansion, k.EventType, k.Start, k.End, k.Colors)
}

// MetaKey identifies one card evaluation metagame query.
type MetaKey struct {
	Expansion string `json:"expansion"`
	EventType string `json:"event_type"`
	Colors    string `json:"colors"`
	Rarity    string `json:"rarity"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// NewMetaKey builds a MetaKey from query arguments.
func NewMetaKey(expansion, eventType, colors, rarity string, start, end time.Time) MetaKey {
	return MetaKey{
		Expansion: expansion,
		EventType: eventType,
		Colors:    colors,
		Rarity:    rarity,
		Start:     core.FormatDate(start),
		End:       core.FormatDate(end),
	}
}

func (k MetaKey) String() string {
	return fmt.Sprintf("meta/%s/%s/%s/%s/%s/%s",
		k.Expansion, k.EventType, k.Colors, k.Rarity, k.Start, k.End)
}

// FormatKey identifies an (expansion, event type) pair.
type FormatKey struct {
	Expansion string `json:"expansion"`
	EventType string `json:"event_type"`
}

func (k FormatKey) String() string {
	return fmt.Sprintf("firstday/%s/%s", k.Expansion, k.EventType)
}
