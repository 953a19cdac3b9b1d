package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veneer-ui/veneer/internal/config"
	"github.com/veneer-ui/veneer/internal/logger"
	"github.com/veneer-ui/veneer/internal/shade"
	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

func newDefaultStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(config.Default(), logger.Discard())
	require.NoError(t, err)
	return store
}

func TestNewStoreDerivesBaseFamilies(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	scale, err := store.ColorFamily("PRIMARY")
	require.NoError(t, err)
	require.Equal(t, "#00A3FE", scale.Mid)

	derived, err := shade.Derive("#00A3FE")
	require.NoError(t, err)
	require.Equal(t, derived, scale)
}

func TestNewStoreKeepsHandTunedShades(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	scale, err := store.ColorFamily("SUCCESS")
	require.NoError(t, err)
	require.Equal(t, shade.Scale{
		Light: "#3EFF9D",
		Mid:   "#34E683",
		Dark:  "#2CC36F",
		XDark: "#1F8A4E",
	}, scale)
}

func TestLookupsAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	upper, err := store.Color("PRIMARY", shade.Mid)
	require.NoError(t, err)
	lower, err := store.Color("primary", shade.Mid)
	require.NoError(t, err)
	require.Equal(t, upper, lower)

	px, err := store.Spacing("md")
	require.NoError(t, err)
	require.Equal(t, 16, px)
}

func TestUnknownTokensAreRejected(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	cases := []struct {
		name   string
		lookup func() error
		kind   string
	}{
		{"family", func() error { _, err := store.ColorFamily("TERTIARY"); return err }, "family"},
		{"spacing", func() error { _, err := store.Spacing("XXXL"); return err }, "spacing"},
		{"size", func() error { _, err := store.FontSpec("CAPTION"); return err }, "size"},
		{"border", func() error { _, err := store.BorderWeight("HAIRLINE"); return err }, "border"},
		{"text", func() error { _, err := store.TextColor("MAGENTA"); return err }, "text"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.lookup()
			require.Error(t, err)
			var unknownErr *veneererrors.UnknownTokenError
			require.ErrorAs(t, err, &unknownErr)
			require.Equal(t, tc.kind, unknownErr.Kind)
		})
	}
}

func TestSpacingScaleFollowsGridUnit(t *testing.T) {
	t.Parallel()

	theme := config.Default()
	theme.Spacing.Unit = 8
	store, err := NewStore(theme, logger.Discard())
	require.NoError(t, err)

	expected := map[string]int{"XS": 8, "SM": 16, "MD": 32, "LG": 48, "XL": 64, "XXL": 96}
	for name, want := range expected {
		px, err := store.Spacing(name)
		require.NoError(t, err)
		require.Equal(t, want, px, name)
	}
}

func TestBorderWeights(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	expected := map[string]int{"NONE": 0, "THIN": 1, "MEDIUM": 2, "THICK": 3}
	for name, want := range expected {
		px, err := store.BorderWeight(name)
		require.NoError(t, err)
		require.Equal(t, want, px, name)
	}
}

func TestTextColors(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	black, err := store.TextColor("BLACK")
	require.NoError(t, err)
	require.Equal(t, "#000000", black)

	white, err := store.TextColor("WHITE")
	require.NoError(t, err)
	require.Equal(t, "#FFFFFF", white)

	grey, err := store.TextColor("GREY")
	require.NoError(t, err)
	require.Equal(t, "#999999", grey)

	primary, err := store.TextColor("PRIMARY")
	require.NoError(t, err)
	mid, err := store.Color("PRIMARY", shade.Mid)
	require.NoError(t, err)
	require.Equal(t, mid, primary)
}

func TestFontSpecCarriesCascade(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	spec, err := store.FontSpec("BODY")
	require.NoError(t, err)
	require.Equal(t, 11, spec.Size)
	require.Equal(t, "Poppins", spec.Cascade[0])
}

func TestNewStoreRejectsMalformedBase(t *testing.T) {
	t.Parallel()

	theme := config.Default()
	theme.Palette.Families["PRIMARY"] = config.Family{Base: "#GGGGGG"}
	_, err := NewStore(theme, logger.Discard())
	require.Error(t, err)
	var colorErr *veneererrors.InvalidColorError
	require.ErrorAs(t, err, &colorErr)
}
