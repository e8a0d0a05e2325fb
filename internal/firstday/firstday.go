package firstday

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colwyn/draftstats/internal/cache"
)

// Lookup returns the hard-coded first day for a format, if one is known.
func Lookup(expansion, eventType string) (time.Time, bool) {
	d, ok := overrides[formatKey{expansion, eventType}]
	return d, ok
}

// Resolve returns the first day for a format: the override table when it has
// an entry (no store access at all), otherwise the store's search-backed
// accessor. A nil date with nil error means the provider has no data for the
// format.
func Resolve(ctx context.Context, store *cache.Store, log zerolog.Logger, expansion, eventType string) (*time.Time, error) {
	if d, ok := Lookup(expansion, eventType); ok {
		log.Debug().Str("expansion", expansion).Str("event_type", eventType).
			Msg("using hard-coded first day")
		return &d, nil
	}
	return store.FirstDay(ctx, expansion, eventType)
}

// GenerateOverrides resolves the first day of every (expansion, event type)
// combination the provider's filters advertise and renders the result as the
// body of a Go map literal, preserving existing override entries. The output
// is meant to be pasted over the table in overrides.go once newly released
// formats have settled.
func GenerateOverrides(ctx context.Context, store *cache.Store, log zerolog.Logger) (string, error) {
	filters, err := store.Filters(ctx)
	if err != nil {
		return "", err
	}

	days := make(map[formatKey]time.Time, len(overrides))
	for key, d := range overrides {
		days[key] = d
	}

	for _, expansion := range filters.Expansions {
		for _, eventType := range filters.Formats {
			key := formatKey{expansion, eventType}
			if _, ok := days[key]; ok {
				continue
			}
			d, err := store.FirstDay(ctx, expansion, eventType)
			if err != nil {
				return "", fmt.Errorf("resolving first day for (%s, %s): %w", expansion, eventType, err)
			}
			if d != nil {
				days[key] = *d
			}
		}
	}

	keys := make([]formatKey, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].expansion != keys[j].expansion {
			return keys[i].expansion < keys[j].expansion
		}
		return keys[i].eventType < keys[j].eventType
	})

	var b strings.Builder
	for _, key := range keys {
		d := days[key]
		fmt.Fprintf(&b, "\t{%q, %q}: day(%d, time.%s, %d),\n",
			key.expansion, key.eventType, d.Year(), d.Month(), d.Day())
	}
	return b.String(), nil
}
