package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamelib/pkg/models"
)

func sampleCatalog() []models.Game {
	return []models.Game{
		{
			ID: "g1", Name: "Azul", MinPlayers: 2, MaxPlayers: 4,
			MinTime: 30, MaxTime: 45, Weight: 1.8, MinAge: 8,
			Rank: intp(52), RetailPrice: floatp(39.99),
			Categories:    []string{"Abstract", "Strategy"},
			Mechanisms:    []string{"Tile Placement", "Drafting"},
			Designers:     []string{"Michael Kiesling"},
			YearPublished: intp(2017),
		},
		{
			ID: "g2", Name: "Gloomhaven", MinPlayers: 1, MaxPlayers: 4,
			MinTime: 60, MaxTime: 120, Weight: 3.9, MinAge: 14,
			Rank:          intp(3),
			Categories:    []string{"Adventure", "Strategy"},
			Mechanisms:    []string{"Campaign"},
			Designers:     []string{"Isaac Childres"},
			CuratorName:   "Sam",
			CuratorNote:   "the big one",
			YearPublished: intp(2017),
		},
		{
			ID: "g3", Name: "The Crew", MinPlayers: 3, MaxPlayers: 5,
			MinTime: 20, MaxTime: 20, Weight: 2.0,
			Rank:          intp(101),
			Categories:    []string{"Card Game"},
			Mechanisms:    []string{"Trick-taking", "Drafting"},
			Designers:     []string{"Thomas Sing"},
			Family:        "Organizations: Game Designers of North Carolina, Series: Crew",
			YearPublished: intp(2019),
		},
	}
}

func TestFilter(t *testing.T) {
	games := sampleCatalog()

	t.Run("zero criteria return the catalog unchanged", func(t *testing.T) {
		got := Filter(games, Criteria{})
		if diff := cmp.Diff(games, got); diff != "" {
			t.Errorf("catalog changed (-want +got):\n%s", diff)
		}
	})

	t.Run("search is a case-insensitive substring", func(t *testing.T) {
		got := Filter(games, Criteria{Search: "crew"})
		require.Len(t, got, 1)
		assert.Equal(t, "g3", got[0].ID)
	})

	t.Run("player count matches the inclusive interval", func(t *testing.T) {
		assert.Len(t, Filter(games, Criteria{Players: 1}), 1)  // only Gloomhaven seats 1
		assert.Len(t, Filter(games, Criteria{Players: 4}), 3)  // everyone seats 4
		assert.Len(t, Filter(games, Criteria{Players: 5}), 1)  // only The Crew
		assert.Empty(t, Filter(games, Criteria{Players: 6}))
	})

	t.Run("play time matches the inclusive interval", func(t *testing.T) {
		got := Filter(games, Criteria{Time: 45})
		require.Len(t, got, 1)
		assert.Equal(t, "g1", got[0].ID)

		assert.Len(t, Filter(games, Criteria{Time: 20}), 1)
		assert.Empty(t, Filter(games, Criteria{Time: 10}))
	})

	t.Run("weight matches by band, not raw score", func(t *testing.T) {
		low := Filter(games, Criteria{Weight: models.BandLow})
		require.Len(t, low, 2) // 1.8 and 2.0 both band Low
		assert.Equal(t, "g1", low[0].ID)
		assert.Equal(t, "g3", low[1].ID)

		high := Filter(games, Criteria{Weight: models.BandHigh})
		require.Len(t, high, 1)
		assert.Equal(t, "g2", high[0].ID)
	})

	t.Run("age ceiling excludes games with unknown minimum age", func(t *testing.T) {
		got := Filter(games, Criteria{MaxAge: 10})
		require.Len(t, got, 1)
		assert.Equal(t, "g1", got[0].ID) // g3 has MinAge 0, never matches
	})

	t.Run("top ranked cuts off at exactly 100", func(t *testing.T) {
		got := Filter(games, Criteria{TopRanked: true})
		require.Len(t, got, 2)
		assert.Equal(t, "g1", got[0].ID) // rank 52
		assert.Equal(t, "g2", got[1].ID) // rank 3; rank 101 excluded
	})

	t.Run("sold means a price is present, even zero", func(t *testing.T) {
		priced := append(sampleCatalog(), models.Game{ID: "g4", RetailPrice: floatp(0)})
		got := Filter(priced, Criteria{Sold: true})
		require.Len(t, got, 2)
		assert.Equal(t, "g1", got[0].ID)
		assert.Equal(t, "g4", got[1].ID)
	})

	t.Run("curator picks need a curator name", func(t *testing.T) {
		got := Filter(games, Criteria{CuratorPicks: true})
		require.Len(t, got, 1)
		assert.Equal(t, "g2", got[0].ID)
	})

	t.Run("regional designers match on the family marker", func(t *testing.T) {
		got := Filter(games, Criteria{RegionalDesigners: true})
		require.Len(t, got, 1)
		assert.Equal(t, "g3", got[0].ID)
	})

	t.Run("year matches exactly", func(t *testing.T) {
		assert.Len(t, Filter(games, Criteria{Year: 2017}), 2)
		assert.Len(t, Filter(games, Criteria{Year: 2019}), 1)
		assert.Empty(t, Filter(games, Criteria{Year: 1999}))
	})

	t.Run("facet values OR within a facet", func(t *testing.T) {
		got := Filter(games, Criteria{Categories: []string{"Abstract", "Card Game"}})
		require.Len(t, got, 2)
		assert.Equal(t, "g1", got[0].ID)
		assert.Equal(t, "g3", got[1].ID)
	})

	t.Run("facets AND across facets", func(t *testing.T) {
		got := Filter(games, Criteria{
			Categories: []string{"Strategy"},
			Mechanisms: []string{"Drafting"},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "g1", got[0].ID)
	})

	t.Run("all criteria combine conjunctively", func(t *testing.T) {
		crit := Criteria{
			Search:    "a",
			Players:   2,
			Weight:    models.BandLow,
			TopRanked: true,
			Year:      2017,
		}
		got := Filter(games, crit)
		for _, g := range got {
			assert.True(t, Matches(g, crit), "game %s in result but fails Matches", g.ID)
		}
		require.Len(t, got, 1)
		assert.Equal(t, "g1", got[0].ID)
	})
}
