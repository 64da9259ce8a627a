package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine(t *testing.T) {
	t.Run("plain fields", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, SplitLine("a,b,c"))
	})

	t.Run("quoted field keeps embedded comma", func(t *testing.T) {
		assert.Equal(t,
			[]string{"foo", "bar, baz", "qux"},
			SplitLine(`foo, "bar, baz", qux`))
	})

	t.Run("doubled quote unescapes to one", func(t *testing.T) {
		assert.Equal(t,
			[]string{`say "hi"`, "x"},
			SplitLine(`"say ""hi""",x`))
	})

	t.Run("empty fields survive", func(t *testing.T) {
		assert.Equal(t, []string{"a", "", "b"}, SplitLine("a,,b"))
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, SplitLine(" a , b "))
	})

	t.Run("empty line is one empty field", func(t *testing.T) {
		assert.Equal(t, []string{""}, SplitLine(""))
	})
}

func TestSplitRow(t *testing.T) {
	t.Run("trailing delimiter tolerated", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, SplitRow("a,b,", 2))
	})

	t.Run("multiple trailing empties dropped", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, SplitRow("a,b,,,", 2))
	})

	t.Run("non-empty extras kept for the shape check", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, SplitRow("a,b,c", 2))
	})

	t.Run("short rows unchanged", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, SplitRow("a", 3))
	})
}

func TestSplitTags(t *testing.T) {
	t.Run("quoted run protects embedded comma", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Strategy", "Card Game, Deck-Building"},
			SplitTags(`Strategy, "Card Game, Deck-Building"`))
	})

	t.Run("plain list", func(t *testing.T) {
		assert.Equal(t, []string{"Fantasy", "Horror"}, SplitTags("Fantasy, Horror"))
	})

	t.Run("single value", func(t *testing.T) {
		assert.Equal(t, []string{"Fantasy"}, SplitTags("Fantasy"))
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		assert.Empty(t, SplitTags(""))
	})

	t.Run("blank candidates discarded", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, SplitTags("a, , b,"))
	})

	t.Run("quoted run first", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Sci-Fi, Horror", "Fantasy"},
			SplitTags(`"Sci-Fi, Horror", Fantasy`))
	})
}
