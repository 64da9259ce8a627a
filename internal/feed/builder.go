package feed

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"gamelib/pkg/models"
)

// columnRule coerces one recognized feed column into the record under
// construction. A rule never fails: when the raw value does not parse it
// leaves the record's documented default in place, so a malformed cell
// degrades to a default instead of killing the row.
type columnRule func(g *models.Game, raw string)

var leadingDigits = regexp.MustCompile(`^(\d+)`)

// columnRules maps lowercased header names to their coercion rule. Adding a
// column to the feed means adding an entry here. Headers without an entry are
// ignored.
var columnRules = map[string]columnRule{
	"objectid": func(g *models.Game, raw string) { g.ID = raw },
	"objectname": func(g *models.Game, raw string) {
		if raw != "" {
			g.Name = raw
		}
	},
	"minplayers": func(g *models.Game, raw string) {
		if n, ok := parseInt(raw); ok {
			g.MinPlayers = n
		}
	},
	"maxplayers": func(g *models.Game, raw string) {
		if n, ok := parseInt(raw); ok {
			g.MaxPlayers = n
		}
	},
	"difficulty": func(g *models.Game, raw string) {
		if n, ok := parseInt(raw); ok {
			g.Difficulty = n
		}
	},
	"minplaytime": func(g *models.Game, raw string) {
		if n, ok := parseInt(raw); ok {
			g.MinTime = n
		}
	},
	"maxplaytime": func(g *models.Game, raw string) {
		if n, ok := parseInt(raw); ok {
			g.MaxTime = n
		}
	},
	"avgweight": func(g *models.Game, raw string) {
		if f, ok := parseFloat(raw); ok {
			g.Weight = f
		}
	},
	"rank": func(g *models.Game, raw string) {
		if n, ok := parseInt(raw); ok {
			g.Rank = &n
		}
	},
	"average": func(g *models.Game, raw string) {
		if f, ok := parseFloat(raw); ok {
			g.Average = &f
		}
	},
	"imageurl":    func(g *models.Game, raw string) { g.ImageURL = raw },
	"comment":     func(g *models.Game, raw string) { g.ShelfLocation = raw },
	"description": func(g *models.Game, raw string) { g.Description = raw },
	"itemtype": func(g *models.Game, raw string) {
		switch strings.ToLower(raw) {
		case "standalone":
			g.ItemType = "Base Game"
		case "expansion":
			g.ItemType = "Expansion"
		default:
			g.ItemType = raw
		}
	},
	"retailprice": func(g *models.Game, raw string) {
		if f, ok := parseFloat(raw); ok {
			g.RetailPrice = &f
		}
	},
	"bggrecagerange": func(g *models.Game, raw string) {
		// keep the raw range verbatim; the derived integer is lossy
		g.AgeRange = raw
		if m := leadingDigits.FindStringSubmatch(raw); m != nil {
			g.MinAge, _ = strconv.Atoi(m[1])
		} else {
			g.MinAge = 0
		}
	},
	"staffpicksname":        func(g *models.Game, raw string) { g.CuratorName = raw },
	"staffpicksdescription": func(g *models.Game, raw string) { g.CuratorNote = raw },
	"category":              func(g *models.Game, raw string) { g.Categories = SplitTags(raw) },
	"mechanism":             func(g *models.Game, raw string) { g.Mechanisms = SplitTags(raw) },
	"designer":              func(g *models.Game, raw string) { g.Designers = SplitTags(raw) },
	"artist":                func(g *models.Game, raw string) { g.Artists = SplitTags(raw) },
	"publisher":             func(g *models.Game, raw string) { g.Publishers = SplitTags(raw) },
	"family":                func(g *models.Game, raw string) { g.Family = raw },
	"own": func(g *models.Game, raw string) {
		if n, ok := parseInt(raw); ok {
			g.Own = n
		}
	},
	"yearpublished": func(g *models.Game, raw string) {
		if n, ok := parseInt(raw); ok {
			g.YearPublished = &n
		}
	},
}

// BuildGame assembles one record from a shape-checked row. headers must be
// lowercased and len(values) must equal len(headers); rowIndex is the 1-based
// position of the row in the feed, used to synthesize missing IDs.
//
// Admission (Own != 0) is the caller's decision; the record itself is always
// built.
func BuildGame(headers, values []string, rowIndex int) models.Game {
	g := models.Game{
		Name:       "Unknown Game",
		MaxPlayers: 99,
		Weight:     1,
	}

	for i, h := range headers {
		if rule, ok := columnRules[h]; ok {
			rule(&g, values[i])
		}
	}

	deriveTimes(&g)

	if g.ID == "" {
		g.ID = fmt.Sprintf("item-%d", rowIndex)
	}
	if g.ImageURL == "" {
		g.ImageURL = placeholderImage(g.Name)
	}
	return g
}

// deriveTimes backfills the play-time range. A lone MinTime caps itself; a
// fully unset range is estimated from the complexity band, using the same
// three bands the complexity filter classifies by.
func deriveTimes(g *models.Game) {
	if g.MaxTime == 0 && g.MinTime != 0 {
		g.MaxTime = g.MinTime
	}
	if g.MinTime == 0 && g.MaxTime == 0 {
		switch models.WeightBand(g.Weight) {
		case models.BandLow:
			g.MinTime, g.MaxTime = 15, 30
		case models.BandMedium:
			g.MinTime, g.MaxTime = 30, 45
		case models.BandHigh:
			g.MinTime, g.MaxTime = 60, 120
		}
	}
}

func placeholderImage(name string) string {
	label := []rune(name)
	if len(label) > 5 {
		label = label[:5]
	}
	return "https://placehold.co/150x150/cccccc/000000?text=" + url.QueryEscape(string(label)+"...")
}

func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	return n, err == nil
}

func parseFloat(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return f, err == nil
}
