package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colwyn/draftstats/internal/api"
)

func TestWriteColorRatings(t *testing.T) {
	var b strings.Builder
	WriteColorRatings(&b, []api.ColorRating{
		{ColorName: "All Decks", Games: 1000, Wins: 550, WinRate: 0.55},
		{ColorName: "Azorius (WU)", Games: 120, Wins: 70, WinRate: 0.583},
	})

	out := b.String()
	assert.Contains(t, out, "All Decks")
	assert.Contains(t, out, "55.0%")
	assert.Contains(t, out, "Azorius (WU)")
}

func TestWriteCardRatingsSortsByWinRate(t *testing.T) {
	var b strings.Builder
	WriteCardRatings(&b, []api.CardRating{
		{Name: "Filler Card", Rarity: "common", EverDrawnWinRate: 0.48},
		{Name: "Bomb Rare", Rarity: "rare", EverDrawnWinRate: 0.64},
	})

	out := b.String()
	assert.Less(t, strings.Index(out, "Bomb Rare"), strings.Index(out, "Filler Card"))
}

func TestWriteCardEvaluationMetagameEmpty(t *testing.T) {
	var b strings.Builder
	WriteCardEvaluationMetagame(&b, nil)
	assert.Contains(t, b.String(), "no data")
}

func TestWriteFiltersRagged(t *testing.T) {
	var b strings.Builder
	WriteFilters(&b, api.Filters{
		Expansions: []string{"ONE", "BRO", "DMU"},
		Formats:    []string{"PremierDraft"},
		Colors:     []string{"W", "U"},
	})

	out := b.String()
	assert.Contains(t, out, "DMU")
	assert.Contains(t, out, "PremierDraft")
}
