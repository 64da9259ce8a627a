package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"gamelib/pkg/models"
)

func TestUniqueValues(t *testing.T) {
	categories := func(g models.Game) []string { return g.Categories }

	t.Run("article-insensitive ordering", func(t *testing.T) {
		games := []models.Game{
			{Categories: []string{"The Crew"}},
			{Categories: []string{"Azul"}},
			{Categories: []string{"An Age"}},
		}
		got := UniqueValues(games, categories)
		if diff := cmp.Diff([]string{"Azul", "An Age", "The Crew"}, got); diff != "" {
			t.Errorf("unexpected order (-want +got):\n%s", diff)
		}
	})

	t.Run("case-insensitive ordering", func(t *testing.T) {
		games := []models.Game{
			{Categories: []string{"zombies", "Abstract"}},
		}
		assert.Equal(t, []string{"Abstract", "zombies"}, UniqueValues(games, categories))
	})

	t.Run("duplicates collapse, empties dropped", func(t *testing.T) {
		games := []models.Game{
			{Categories: []string{"Party", ""}},
			{Categories: []string{"Party"}},
		}
		assert.Equal(t, []string{"Party"}, UniqueValues(games, categories))
	})

	t.Run("empty catalog yields empty list", func(t *testing.T) {
		assert.Empty(t, UniqueValues(nil, categories))
	})
}

func TestYears(t *testing.T) {
	games := []models.Game{
		{YearPublished: intp(2017)},
		{YearPublished: intp(2023)},
		{YearPublished: nil},
		{YearPublished: intp(2017)},
	}
	assert.Equal(t, []int{2023, 2017}, Years(games))
}

func TestExtract(t *testing.T) {
	games := []models.Game{
		{
			Categories: []string{"Strategy"},
			Mechanisms: []string{"Drafting"},
			Designers:  []string{"Rob Daviau", "JR Honeycutt"},
			Artists:    []string{"Beth Sobel"},
			Publishers: []string{"The Op"},
		},
	}

	f := Extract(games, []string{"JR Honeycutt"})

	assert.Equal(t, []string{"Strategy"}, f.Categories)
	assert.Equal(t, []string{"Drafting"}, f.Mechanisms)
	assert.Equal(t, []string{"Beth Sobel"}, f.Artists)
	assert.Equal(t, []string{"The Op"}, f.Publishers)

	// the excluded curator disappears from the facet, not from the game
	assert.Equal(t, []string{"Rob Daviau"}, f.Designers)
	assert.Contains(t, games[0].Designers, "JR Honeycutt")
}

func intp(n int) *int { return &n }

func floatp(f float64) *float64 { return &f }
