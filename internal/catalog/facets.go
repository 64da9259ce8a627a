package catalog

import (
	"regexp"
	"sort"
	"strings"

	"gamelib/pkg/models"
)

// Facets are the distinct-value universes the filter UI offers per
// multi-valued attribute, plus the published years.
type Facets struct {
	Categories []string `json:"categories"`
	Mechanisms []string `json:"mechanisms"`
	Designers  []string `json:"designers"`
	Artists    []string `json:"artists"`
	Publishers []string `json:"publishers"`
	Years      []int    `json:"years"`
}

var leadingArticle = regexp.MustCompile(`(?i)^(a|an|the)\s+`)

// sortKey normalizes a value for facet ordering: case-insensitive, with a
// leading English article stripped so "The Crew" sorts under C.
func sortKey(s string) string {
	return leadingArticle.ReplaceAllString(strings.ToLower(s), "")
}

// UniqueValues computes the sorted set of distinct non-empty values of one
// attribute across all games. Sorting is article-insensitive; ties fall back
// to plain ordering of the original strings.
func UniqueValues(games []models.Game, pick func(models.Game) []string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, g := range games {
		for _, v := range pick(g) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}

	sort.Slice(values, func(i, j int) bool {
		ki, kj := sortKey(values[i]), sortKey(values[j])
		if ki != kj {
			return ki < kj
		}
		return values[i] < values[j]
	})
	return values
}

// Years returns the distinct published years, newest first.
func Years(games []models.Game) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, g := range games {
		if g.YearPublished == nil {
			continue
		}
		y := *g.YearPublished
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Extract computes all facet lists for one catalog. excludeDesigners removes
// specific names from the designer facet only; the games themselves keep the
// full designer list. Nothing is cached: callers recompute on reload.
func Extract(games []models.Game, excludeDesigners []string) Facets {
	designers := UniqueValues(games, func(g models.Game) []string { return g.Designers })
	if len(excludeDesigners) > 0 {
		kept := designers[:0]
		for _, d := range designers {
			if !contains(excludeDesigners, d) {
				kept = append(kept, d)
			}
		}
		designers = kept
	}

	return Facets{
		Categories: UniqueValues(games, func(g models.Game) []string { return g.Categories }),
		Mechanisms: UniqueValues(games, func(g models.Game) []string { return g.Mechanisms }),
		Designers:  designers,
		Artists:    UniqueValues(games, func(g models.Game) []string { return g.Artists }),
		Publishers: UniqueValues(games, func(g models.Game) []string { return g.Publishers }),
		Years:      Years(games),
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
