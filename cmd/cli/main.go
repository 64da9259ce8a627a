package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gamelib/internal/catalog"
	"gamelib/internal/feed"
	"gamelib/pkg/models"
	"gamelib/pkg/utils"
)

// Offline companion to the api-server: runs the same feed pipeline against a
// local file or URL and prints matches, without a running server.
func main() {
	cfg := utils.LoadConfig()

	var (
		feedArg = flag.String("feed", cfg.FeedURL, "feed CSV: file path or http(s) URL")
		format  = flag.String("format", "table", "output format: table, json or csv")
		facets  = flag.Bool("facets", false, "print facet value lists instead of games")

		search   = flag.String("q", "", "name substring")
		players  = flag.Int("players", 0, "player count (0 = any)")
		playTime = flag.Int("time", 0, "play time in minutes (0 = any)")
		weight   = flag.String("weight", "", "complexity band: Low, Medium or High")
		maxAge   = flag.Int("max-age", 0, "minimum-age ceiling (0 = any)")
		top100   = flag.Bool("top100", false, "top-ranked games only")
		sold     = flag.Bool("sold", false, "games with a retail price only")
		curated  = flag.Bool("curated", false, "curator picks only")
		regional = flag.Bool("regional", false, "locally-designed games only")
		year     = flag.Int("year", 0, "published year (0 = any)")

		categories = flag.String("categories", "", "comma-separated category selection")
		mechanisms = flag.String("mechanisms", "", "comma-separated mechanism selection")
		designers  = flag.String("designers", "", "comma-separated designer selection")
		artists    = flag.String("artists", "", "comma-separated artist selection")
		publishers = flag.String("publishers", "", "comma-separated publisher selection")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()

	games, _, err := loadGames(ctx, *feedArg, cfg)
	if err != nil {
		log.Fatalf("load feed: %v", err)
	}

	if *facets {
		printFacets(catalog.Extract(games, cfg.FacetExcludeDesigners), *format)
		return
	}

	crit := catalog.Criteria{
		Search:            *search,
		Players:           *players,
		Time:              *playTime,
		Weight:            *weight,
		MaxAge:            *maxAge,
		TopRanked:         *top100,
		Sold:              *sold,
		CuratorPicks:      *curated,
		RegionalDesigners: *regional,
		Categories:        splitArg(*categories),
		Mechanisms:        splitArg(*mechanisms),
		Designers:         splitArg(*designers),
		Artists:           splitArg(*artists),
		Publishers:        splitArg(*publishers),
		Year:              *year,
	}

	matches := catalog.Filter(games, crit)
	if err := printGames(matches, *format); err != nil {
		log.Fatalf("print: %v", err)
	}
}

func loadGames(ctx context.Context, src string, cfg utils.Config) ([]models.Game, feed.Stats, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return feed.Load(ctx, feed.NewFetcher(src, cfg.FetchTimeout))
	}

	b, err := os.ReadFile(src)
	if err != nil {
		return nil, feed.Stats{}, err
	}
	games, stats := feed.Parse(string(b))
	return games, stats, nil
}

func printGames(games []models.Game, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(games)

	case "csv":
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"id", "name", "players", "time", "weight", "year"}); err != nil {
			return err
		}
		for _, g := range games {
			rec := []string{
				g.ID,
				g.Name,
				fmt.Sprintf("%d-%d", g.MinPlayers, g.MaxPlayers),
				fmt.Sprintf("%d-%d", g.MinTime, g.MaxTime),
				models.WeightBand(g.Weight),
				yearString(g),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	case "table":
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tPLAYERS\tTIME\tWEIGHT\tYEAR")
		for _, g := range games {
			fmt.Fprintf(tw, "%s\t%s\t%d-%d\t%d-%d\t%s\t%s\n",
				g.ID, g.Name,
				g.MinPlayers, g.MaxPlayers,
				g.MinTime, g.MaxTime,
				models.WeightBand(g.Weight),
				yearString(g))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Printf("%d game(s)\n", len(games))
		return nil

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printFacets(f catalog.Facets, format string) {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(f)
		return
	}

	section := func(name string, values []string) {
		fmt.Printf("%s (%d):\n", name, len(values))
		for _, v := range values {
			fmt.Printf("  %s\n", v)
		}
	}
	section("Categories", f.Categories)
	section("Mechanisms", f.Mechanisms)
	section("Designers", f.Designers)
	section("Artists", f.Artists)
	section("Publishers", f.Publishers)

	fmt.Printf("Years (%d):\n", len(f.Years))
	for _, y := range f.Years {
		fmt.Printf("  %d\n", y)
	}
}

func yearString(g models.Game) string {
	if g.YearPublished == nil {
		return ""
	}
	return strconv.Itoa(*g.YearPublished)
}

func splitArg(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
