package cache

import (
	"context"
	"time"

	"github.com/colwyn/draftstats/internal/core"
)

// convergencePad keeps the interval-halving loop moving: halving alone can
// oscillate forever at day granularity, so each step shrinks the interval to
// half plus six hours, which has a fixed point below one day.
const convergencePad = 6 * time.Hour

const day = 24 * time.Hour

// findFirstDay derives the earliest calendar date for which the provider has
// recorded games for (expansion, eventType), or nil if it has none at all.
//
// The provider's data is monotone in date: if [Epoch, d] has zero games, so
// does every shorter range. The search halves the interval from the present
// backwards, probing through the Store's own color ratings accessor so that
// repeated probes over the same range are cache hits, not network calls.
// Converges in O(log historyLength) probes.
func (s *Store) findFirstDay(ctx context.Context, expansion, eventType string) (*time.Time, error) {
	end := s.now()
	diff := end.Sub(core.Epoch)

	// Whole-history probe: a format with zero games over [Epoch, now] either
	// never existed or is not released yet.
	games, err := s.probeGames(ctx, expansion, eventType, end)
	if err != nil {
		return nil, err
	}
	if games == 0 {
		return nil, nil
	}

	for {
		games, err := s.probeGames(ctx, expansion, eventType, end)
		if err != nil {
			return nil, err
		}
		diff = diff/2 + convergencePad
		if games > 0 {
			// Data exists up to end; once the interval is at minimum
			// resolution this boundary is the answer. "Today has data" is
			// not "first day": the loop keeps narrowing from above even
			// when the very first probe is non-zero.
			if diff <= day {
				d := end
				return &d, nil
			}
			end = addDays(end, -wholeDays(diff))
		} else {
			if diff <= day {
				d := addDays(end, 1)
				return &d, nil
			}
			end = addDays(end, wholeDays(diff))
		}
	}
}

// probeGames asks the cache-backed oracle how many games the "All Decks"
// aggregate row records over [Epoch, end]. A missing row or empty response
// counts as zero games; that is a search signal, not an error.
func (s *Store) probeGames(ctx context.Context, expansion, eventType string, end time.Time) (int, error) {
	rows, err := s.ColorRatings(ctx, expansion, eventType, core.Epoch, end, false)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if row.ColorName == core.AllDecksColor {
			return row.Games, nil
		}
	}
	return 0, nil
}

// wholeDays truncates a duration to whole days, matching day-granularity
// date arithmetic: the six-hour pad influences the convergence test but
// never shifts a date off midnight.
func wholeDays(d time.Duration) int {
	return int(d / day)
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
