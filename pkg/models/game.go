package models

// Game is the normalized, internal form of one catalog entry built from a
// single feed row.
//
// The feed is loose about optionality: fields the sheet may leave blank are
// pointers (nil = absent), fields with a documented fallback are plain values
// carrying that fallback. Records are immutable once built.
type Game struct {
	ID            string   `json:"id"`                     // feed objectid, or synthesized "item-<row>" when blank
	Name          string   `json:"name"`                   // display name, never empty
	MinPlayers    int      `json:"min_players"`            // 0 = unknown
	MaxPlayers    int      `json:"max_players"`            // defaults to 99 when the feed is silent
	Difficulty    int      `json:"difficulty,omitempty"`   // house difficulty score (distinct from Weight)
	MinTime       int      `json:"min_time"`               // minutes, after derivation
	MaxTime       int      `json:"max_time"`               // minutes, >= MinTime after derivation
	Weight        float64  `json:"weight"`                 // complexity score, nominally [1,5], defaults to 1
	Rank          *int     `json:"rank,omitempty"`         // community rank, nil when unranked
	Average       *float64 `json:"average,omitempty"`      // community rating, nil when unrated
	ImageURL      string   `json:"image_url"`              // placeholder synthesized from Name when blank
	ShelfLocation string   `json:"shelf_location,omitempty"`
	Description   string   `json:"description,omitempty"`
	ItemType      string   `json:"item_type,omitempty"`    // "Base Game" / "Expansion" / passthrough
	RetailPrice   *float64 `json:"retail_price,omitempty"` // nil = not sold by the store
	AgeRange      string   `json:"age_range,omitempty"`    // raw recommended-age string, kept verbatim
	MinAge        int      `json:"min_age"`                // leading integer of AgeRange, 0 = unknown
	CuratorName   string   `json:"curator_name,omitempty"`
	CuratorNote   string   `json:"curator_note,omitempty"`
	Categories    []string `json:"categories"`
	Mechanisms    []string `json:"mechanisms"`
	Designers     []string `json:"designers"`
	Artists       []string `json:"artists"`
	Publishers    []string `json:"publishers"`
	Family        string   `json:"family,omitempty"`
	Own           int      `json:"own"` // owned copies; rows with 0 never enter the catalog
	YearPublished *int     `json:"year_published,omitempty"`
}

// Complexity band labels shared by the time-derivation rules and the
// complexity filter. Both sides must agree on the same three ranges.
const (
	BandLow    = "Low"
	BandMedium = "Medium"
	BandHigh   = "High"
)

// WeightBand classifies a complexity score into Low/Medium/High.
// The score is clamped to [1,5] first, so the empty label is unreachable in
// practice; it is still returned for anything that escapes the three ranges.
func WeightBand(w float64) string {
	if w < 1 {
		w = 1
	}
	if w > 5 {
		w = 5
	}
	switch {
	case w <= 2:
		return BandLow
	case w <= 2.5:
		return BandMedium
	case w <= 5:
		return BandHigh
	}
	return ""
}
