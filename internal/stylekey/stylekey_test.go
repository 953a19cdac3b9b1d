package stylekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIsTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Key(";"), Build(Request{}))
	assert.Equal(t, Key("text;body"), Build(Request{Category: "text", Variant: "body"}))
}

func TestBuildIsInsertionOrderIndependent(t *testing.T) {
	t.Parallel()

	first := map[string]string{}
	first["bold"] = "true"
	first["size"] = "BODY"
	first["fg"] = "PRIMARY:MID"

	second := map[string]string{}
	second["fg"] = "PRIMARY:MID"
	second["size"] = "BODY"
	second["bold"] = "true"

	a := Build(Request{Category: "text", Variant: "label", Extras: first})
	b := Build(Request{Category: "text", Variant: "label", Extras: second})
	require.Equal(t, a, b)
	assert.Equal(t, Key("text;label;bold=true;fg=PRIMARY:MID;size=BODY"), a)
}

func TestBuildDistinguishesEverySemanticField(t *testing.T) {
	t.Parallel()

	base := Request{
		Category: "control",
		Variant:  "BUTTON",
		Extras:   map[string]string{"bg": "PRIMARY:MID", "border": "THIN"},
	}

	variants := []Request{
		{Category: "input", Variant: "BUTTON", Extras: map[string]string{"bg": "PRIMARY:MID", "border": "THIN"}},
		{Category: "control", Variant: "CHECKBOX", Extras: map[string]string{"bg": "PRIMARY:MID", "border": "THIN"}},
		{Category: "control", Variant: "BUTTON", Extras: map[string]string{"bg": "PRIMARY:DARK", "border": "THIN"}},
		{Category: "control", Variant: "BUTTON", Extras: map[string]string{"bg": "PRIMARY:MID", "border": "THICK"}},
		{Category: "control", Variant: "BUTTON", Extras: map[string]string{"bg": "PRIMARY:MID"}},
	}

	baseKey := Build(base)
	seen := map[Key]struct{}{baseKey: {}}
	for _, v := range variants {
		key := Build(v)
		_, dup := seen[key]
		require.False(t, dup, "collision for %+v", v)
		seen[key] = struct{}{}
	}
}

func TestBuildEscapesSeparatorCharacters(t *testing.T) {
	t.Parallel()

	// A value containing the separator scheme must not collide with the
	// equivalent structure expressed through separate fields.
	smuggled := Build(Request{
		Category: "text",
		Variant:  "label",
		Extras:   map[string]string{"a": "1;b=2"},
	})
	structural := Build(Request{
		Category: "text",
		Variant:  "label",
		Extras:   map[string]string{"a": "1", "b": "2"},
	})
	require.NotEqual(t, smuggled, structural)

	// Category/variant boundaries are protected the same way.
	joined := Build(Request{Category: "text;label", Variant: ""})
	split := Build(Request{Category: "text", Variant: "label"})
	require.NotEqual(t, joined, split)

	// Escape characters in values survive round-tripping into the key.
	backslash := Build(Request{Category: "text", Variant: `la\bel`})
	plain := Build(Request{Category: "text", Variant: "label"})
	require.NotEqual(t, backslash, plain)
}

func TestBuildKeyOmitsEmptyExtrasSection(t *testing.T) {
	t.Parallel()

	withNil := Build(Request{Category: "container", Variant: "CARD", Extras: nil})
	withEmpty := Build(Request{Category: "container", Variant: "CARD", Extras: map[string]string{}})
	assert.Equal(t, withNil, withEmpty)
}
