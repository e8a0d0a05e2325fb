// Package output provides rendering helpers for the draftstats CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/colwyn/draftstats/internal/api"
)

// PrintJSON prints a value as indented JSON.
func PrintJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// WriteFilters renders the filter metadata.
func WriteFilters(w io.Writer, f api.Filters) {
	tw := newTable(w)
	fmt.Fprintln(tw, "EXPANSIONS\tEVENT TYPES\tCOLORS")
	n := max(len(f.Expansions), len(f.Formats), len(f.Colors))
	for i := 0; i < n; i++ {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", at(f.Expansions, i), at(f.Formats, i), at(f.Colors, i))
	}
	tw.Flush()
}

// WriteColorRatings renders the color ratings table.
func WriteColorRatings(w io.Writer, rows []api.ColorRating) {
	tw := newTable(w)
	fmt.Fprintln(tw, "COLOR\tGAMES\tWINS\tWIN RATE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.ColorName, r.Games, r.Wins, percent(r.WinRate))
	}
	tw.Flush()
}

// WriteCardRatings renders the card ratings table sorted by ever-drawn win
// rate, best first.
func WriteCardRatings(w io.Writer, rows []api.CardRating) {
	sorted := append([]api.CardRating(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EverDrawnWinRate > sorted[j].EverDrawnWinRate
	})

	tw := newTable(w)
	fmt.Fprintln(tw, "CARD\tCOLOR\tRARITY\tGIH WR\tGIH GAMES\tALSA")
	for _, r := range sorted {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%.2f\n",
			r.Name, r.Color, r.Rarity, percent(r.EverDrawnWinRate), r.EverDrawnGameCount, r.AvgSeen)
	}
	tw.Flush()
}

// WriteCardEvaluationMetagame renders the schemaless metagame rows with a
// column per key, ordered alphabetically for stable output.
func WriteCardEvaluationMetagame(w io.Writer, rows []api.CardEvaluationRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no data")
		return
	}

	columns := make([]string, 0, len(rows[0]))
	for key := range rows[0] {
		columns = append(columns, key)
	}
	sort.Strings(columns)

	tw := newTable(w)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(columns, "\t")))
	for _, row := range rows {
		values := make([]string, len(columns))
		for i, key := range columns {
			values[i] = fmt.Sprintf("%v", row[key])
		}
		fmt.Fprintln(tw, strings.Join(values, "\t"))
	}
	tw.Flush()
}

// WritePlayDraw renders the play/draw advantage table.
func WritePlayDraw(w io.Writer, rows []api.PlayDrawRow) {
	tw := newTable(w)
	fmt.Fprintln(tw, "EXPANSION\tEVENT TYPE\tWR ON PLAY\tAVG GAME LENGTH")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n",
			r.Expansion, r.EventType, percent(r.WinRateOnPlay), r.AverageGameLength)
	}
	tw.Flush()
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
