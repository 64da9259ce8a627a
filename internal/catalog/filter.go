package catalog

import (
	"strings"

	"gamelib/pkg/models"
)

// Family marker identifying locally-designed games in the feed.
const regionalFamilyMarker = "Organizations: Game Designers of North Carolina"

// Criteria bundles every filter setting. The zero value means "no
// preference" for every criterion: empty strings, zero numbers, false flags
// and empty sets are all inactive, so Filter(games, Criteria{}) returns the
// catalog unchanged.
//
// Criteria is an opaque, immutable input to the filter: the engine reads
// nothing but what is passed in.
type Criteria struct {
	Search  string // case-insensitive substring of the name
	Players int    // required player count, 0 = any
	Time    int    // desired play time in minutes, 0 = any
	Weight  string // complexity band: Low / Medium / High, "" = any
	MaxAge  int    // minimum-age ceiling, 0 = any

	TopRanked         bool // rank set and <= 100
	Sold              bool // retail price present
	CuratorPicks      bool // curator name present
	RegionalDesigners bool // family carries the regional marker

	Categories []string
	Mechanisms []string
	Designers  []string
	Artists    []string
	Publishers []string

	Year int // exact published year, 0 = any
}

// Filter returns the order-preserving subsequence of games satisfying every
// active criterion. It is a pure function of its inputs.
func Filter(games []models.Game, c Criteria) []models.Game {
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if Matches(g, c) {
			out = append(out, g)
		}
	}
	return out
}

// Matches reports whether one game satisfies every active criterion.
func Matches(g models.Game, c Criteria) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(c.Search)) {
		return false
	}
	if c.Players != 0 && (g.MinPlayers > c.Players || g.MaxPlayers < c.Players) {
		return false
	}
	if c.Time != 0 && (g.MinTime > c.Time || g.MaxTime < c.Time) {
		return false
	}
	if c.Weight != "" && models.WeightBand(g.Weight) != c.Weight {
		return false
	}
	// a game with no known minimum age never matches an active age filter
	if c.MaxAge != 0 && (g.MinAge <= 0 || g.MinAge > c.MaxAge) {
		return false
	}
	if c.TopRanked && (g.Rank == nil || *g.Rank > 100) {
		return false
	}
	if c.Sold && g.RetailPrice == nil {
		return false
	}
	if c.CuratorPicks && g.CuratorName == "" {
		return false
	}
	if c.RegionalDesigners && !strings.Contains(g.Family, regionalFamilyMarker) {
		return false
	}
	if c.Year != 0 && (g.YearPublished == nil || *g.YearPublished != c.Year) {
		return false
	}

	// within a facet any selected value matches; facets combine with AND
	if len(c.Categories) > 0 && !anyOverlap(g.Categories, c.Categories) {
		return false
	}
	if len(c.Mechanisms) > 0 && !anyOverlap(g.Mechanisms, c.Mechanisms) {
		return false
	}
	if len(c.Designers) > 0 && !anyOverlap(g.Designers, c.Designers) {
		return false
	}
	if len(c.Artists) > 0 && !anyOverlap(g.Artists, c.Artists) {
		return false
	}
	if len(c.Publishers) > 0 && !anyOverlap(g.Publishers, c.Publishers) {
		return false
	}

	return true
}

func anyOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
