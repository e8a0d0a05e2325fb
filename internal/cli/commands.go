package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/colwyn/draftstats/internal/api"
	"github.com/colwyn/draftstats/internal/cache"
	"github.com/colwyn/draftstats/internal/core"
	"github.com/colwyn/draftstats/internal/firstday"
	"github.com/colwyn/draftstats/internal/output"
)

func init() {
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(playDrawCmd)
	rootCmd.AddCommand(firstDayCmd)
	firstDayCmd.AddCommand(generateCmd)

	colorsCmd.Flags().Bool("splash", false, "Combine multi-color splash decks")
	colorsCmd.Flags().String("start", "", "Start date (YYYY-MM-DD or d-7/w-2/m-3/y-1; default: format's first day)")
	colorsCmd.Flags().String("end", "", "End date (default: today)")

	cardsCmd.Flags().String("colors", "", "Restrict to decks of this color filter (e.g. WU)")
	cardsCmd.Flags().String("start", "", "Start date (default: format's first day)")
	cardsCmd.Flags().String("end", "", "End date (default: today)")

	metaCmd.Flags().String("colors", "", "Restrict to this color filter")
	metaCmd.Flags().String("rarity", "", "Restrict to this rarity")
	metaCmd.Flags().String("start", "", "Start date (default: format's first day)")
	metaCmd.Flags().String("end", "", "End date (default: today)")
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the expansions, event types and colors the provider knows",
	RunE:  handleFilters,
}

var colorsCmd = &cobra.Command{
	Use:   "colors [expansion] [event-type]",
	Short: "Aggregate color statistics for a format",
	Args:  cobra.ExactArgs(2),
	RunE:  handleColors,
}

var cardsCmd = &cobra.Command{
	Use:   "cards [expansion] [event-type]",
	Short: "Aggregate card statistics for a format",
	Args:  cobra.ExactArgs(2),
	RunE:  handleCards,
}

var metaCmd = &cobra.Command{
	Use:   "meta [expansion] [event-type]",
	Short: "Card evaluation metagame table for a format",
	Args:  cobra.ExactArgs(2),
	RunE:  handleMeta,
}

var playDrawCmd = &cobra.Command{
	Use:   "playdraw",
	Short: "Global play/draw advantage table",
	RunE:  handlePlayDraw,
}

var firstDayCmd = &cobra.Command{
	Use:   "firstday [expansion] [event-type]",
	Short: "First calendar date with recorded games for a format",
	Args:  cobra.ExactArgs(2),
	RunE:  handleFirstDay,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the hard-coded first-day override table",
	Long: `Resolves the first day of every (expansion, event type) combination the
provider advertises and prints an updated Go map literal body for the
override table. Expect a long run on a cold cache.`,
	Args: cobra.NoArgs,
	RunE: handleGenerate,
}

// newStore wires config, logger, client and persistence into a Store.
func newStore() (*cache.Store, zerolog.Logger, error) {
	cfg, err := core.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if cacheDir != "" {
		cfg.CacheDir = cacheDir
	}

	log := core.NewLogger(verbose)
	client := api.NewClient(api.NewHTTPTransport(cfg, log), log)
	backend := cache.NewFileBackend(cfg.StoragePath())
	return cache.NewStore(client, backend, log), log, nil
}

// formatRange resolves the --start/--end flags, defaulting to the format's
// lifetime: first day through today.
func formatRange(ctx context.Context, cmd *cobra.Command, store *cache.Store, log zerolog.Logger, expansion, eventType string) (time.Time, time.Time, error) {
	var start, end time.Time

	startSpec, _ := cmd.Flags().GetString("start")
	endSpec, _ := cmd.Flags().GetString("end")

	if startSpec != "" {
		t, err := core.ParseDateSpec(startSpec)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	} else {
		first, err := firstday.Resolve(ctx, store, log, expansion, eventType)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if first != nil {
			start = *first
		} else {
			start = core.Epoch
		}
	}

	if endSpec != "" {
		t, err := core.ParseDateSpec(endSpec)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t
	} else {
		end = core.Today()
	}

	return start, end, nil
}

func handleFilters(cmd *cobra.Command, args []string) error {
	store, log, err := newStore()
	if err != nil {
		return err
	}

	filters, err := store.Filters(cmd.Context())
	if err != nil {
		log.Warn().Err(err).Msg("filters unavailable, using built-in defaults")
		filters = api.DefaultFilters()
	}

	if jsonOut {
		output.PrintJSON(filters)
		return nil
	}
	output.WriteFilters(os.Stdout, filters)
	return nil
}

func handleColors(cmd *cobra.Command, args []string) error {
	expansion, eventType := args[0], args[1]
	splash, _ := cmd.Flags().GetBool("splash")

	store, log, err := newStore()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start, end, err := formatRange(ctx, cmd, store, log, expansion, eventType)
	if err != nil {
		return err
	}

	rows, err := store.ColorRatings(ctx, expansion, eventType, start, end, splash)
	if err != nil {
		return err
	}

	if jsonOut {
		output.PrintJSON(rows)
		return nil
	}
	output.WriteColorRatings(os.Stdout, rows)
	return nil
}

func handleCards(cmd *cobra.Command, args []string) error {
	expansion, eventType := args[0], args[1]
	colors, _ := cmd.Flags().GetString("colors")

	store, log, err := newStore()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start, end, err := formatRange(ctx, cmd, store, log, expansion, eventType)
	if err != nil {
		return err
	}

	rows, err := store.CardRatings(ctx, expansion, eventType, start, end, colors)
	if err != nil {
		return err
	}

	if jsonOut {
		output.PrintJSON(rows)
		return nil
	}
	output.WriteCardRatings(os.Stdout, rows)
	return nil
}

func handleMeta(cmd *cobra.Command, args []string) error {
	expansion, eventType := args[0], args[1]
	colors, _ := cmd.Flags().GetString("colors")
	rarity, _ := cmd.Flags().GetString("rarity")

	store, log, err := newStore()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start, end, err := formatRange(ctx, cmd, store, log, expansion, eventType)
	if err != nil {
		return err
	}

	rows, err := store.CardEvaluationMetagame(ctx, expansion, eventType, colors, rarity, start, end)
	if err != nil {
		return err
	}

	if jsonOut {
		output.PrintJSON(rows)
		return nil
	}
	output.WriteCardEvaluationMetagame(os.Stdout, rows)
	return nil
}

func handlePlayDraw(cmd *cobra.Command, args []string) error {
	store, _, err := newStore()
	if err != nil {
		return err
	}

	rows, err := store.PlayDraw(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		output.PrintJSON(rows)
		return nil
	}
	output.WritePlayDraw(os.Stdout, rows)
	return nil
}

func handleFirstDay(cmd *cobra.Command, args []string) error {
	expansion, eventType := args[0], args[1]

	store, log, err := newStore()
	if err != nil {
		return err
	}

	source := "search"
	if _, ok := firstday.Lookup(expansion, eventType); ok {
		source = "override"
	}

	day, err := firstday.Resolve(cmd.Context(), store, log, expansion, eventType)
	if err != nil {
		return err
	}

	if day == nil {
		fmt.Printf("%s %s: no recorded games\n", expansion, eventType)
		return nil
	}
	fmt.Printf("%s %s: %s (%s)\n", expansion, eventType, core.FormatDate(*day), source)
	return nil
}

func handleGenerate(cmd *cobra.Command, args []string) error {
	store, log, err := newStore()
	if err != nil {
		return err
	}

	body, err := firstday.GenerateOverrides(cmd.Context(), store, log)
	if err != nil {
		return err
	}
	fmt.Print(body)
	return nil
}
