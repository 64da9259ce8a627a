package utils

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Published CSV export of the library sheet. Override with GAMELIB_FEED_URL.
const defaultFeedURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQ82tONzKAbS4g8sfREBApuIw7f8WfIFN2z98r6Br8FEWw8jZK3dCRZXl5XbY8SZbRMLUNp8H7ov99W/pub?gid=202930632&single=true&output=csv"

type Config struct {
	FeedURL      string
	Addr         string
	FetchTimeout time.Duration

	// Names dropped from the designer facet (curators who appear as
	// designers in the feed but should not be offered as a filter).
	FacetExcludeDesigners []string
}

func LoadConfig() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfg := Config{
		FeedURL:               defaultFeedURL,
		Addr:                  ":8080",
		FetchTimeout:          15 * time.Second,
		FacetExcludeDesigners: []string{"JR Honeycutt"},
	}

	if v := os.Getenv("GAMELIB_FEED_URL"); v != "" {
		cfg.FeedURL = v
	}
	if v := os.Getenv("GAMELIB_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("GAMELIB_FETCH_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.FetchTimeout = time.Duration(secs) * time.Second
		}
	}
	if v, ok := os.LookupEnv("GAMELIB_FACET_EXCLUDE_DESIGNERS"); ok {
		cfg.FacetExcludeDesigners = splitList(v)
	}

	return cfg
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
