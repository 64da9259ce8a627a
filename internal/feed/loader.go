package feed

import (
	"context"
	"log"
	"strings"

	"gamelib/pkg/models"
)

// Stats summarizes one parse pass over the feed.
type Stats struct {
	Rows      int `json:"rows"`      // data rows seen (blank lines excluded)
	Loaded    int `json:"loaded"`    // records admitted to the catalog
	Malformed int `json:"malformed"` // rows skipped for a column-count mismatch
	Unowned   int `json:"unowned"`   // rows parsed but dropped for own == 0
}

// Parse turns raw feed text into the admitted records, in feed order.
//
// The first non-blank line is the header; its names are matched
// case-insensitively. A row whose field count does not match the header is
// skipped with a diagnostic and parsing continues — a bad row never poisons
// its neighbours. Rows that parse but report zero owned copies are dropped
// silently.
func Parse(text string) ([]models.Game, Stats) {
	var stats Stats

	text = strings.TrimPrefix(text, "\ufeff")
	lines := splitLines(text)
	if len(lines) == 0 {
		log.Printf("[feed] feed is empty after splitting lines")
		return nil, stats
	}

	headers := SplitLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(h)
	}

	games := make([]models.Game, 0, len(lines)-1)
	for row := 1; row < len(lines); row++ {
		stats.Rows++

		values := SplitRow(lines[row], len(headers))
		if len(values) != len(headers) {
			stats.Malformed++
			log.Printf("[feed] skipping malformed row %d: expected %d columns, got %d",
				row+1, len(headers), len(values))
			continue
		}

		g := BuildGame(headers, values, row)
		if g.Own == 0 {
			stats.Unowned++
			continue
		}
		games = append(games, g)
		stats.Loaded++
	}

	log.Printf("[feed] parsed %d games (%d rows, %d malformed, %d unowned)",
		stats.Loaded, stats.Rows, stats.Malformed, stats.Unowned)
	return games, stats
}

// Load fetches the feed and parses it. A transport failure fails the whole
// load: no partial results are ever returned.
func Load(ctx context.Context, f *Fetcher) ([]models.Game, Stats, error) {
	text, err := f.Fetch(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	games, stats := Parse(text)
	return games, stats, nil
}

// splitLines is tolerant of both \n and \r\n endings and drops blank lines
// entirely before tokenization.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
