package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

func validTheme() *Theme {
	return Default()
}

func TestValidateTheme(t *testing.T) {
	t.Parallel()

	t.Run("default theme is valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, ValidateTheme(validTheme()))
	})

	t.Run("nil theme is rejected", func(t *testing.T) {
		t.Parallel()
		err := ValidateTheme(nil)
		require.Error(t, err)
		var validationErr *veneererrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("family with base and shades is rejected", func(t *testing.T) {
		t.Parallel()
		theme := validTheme()
		theme.Palette.Families["PRIMARY"] = Family{
			Base:   "#2D6CDF",
			Shades: &ShadeSet{Light: "#FFFFFF", Mid: "#CCCCCC", Dark: "#999999", XDark: "#666666"},
		}
		err := ValidateTheme(theme)
		require.Error(t, err)
		require.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("family with neither base nor shades is rejected", func(t *testing.T) {
		t.Parallel()
		theme := validTheme()
		theme.Palette.Families["PRIMARY"] = Family{}
		err := ValidateTheme(theme)
		require.Error(t, err)
		require.Contains(t, err.Error(), "either base or shades")
	})

	t.Run("malformed base colour is rejected", func(t *testing.T) {
		t.Parallel()
		theme := validTheme()
		theme.Palette.Families["PRIMARY"] = Family{Base: "2D6CDF"}
		err := ValidateTheme(theme)
		require.Error(t, err)
	})

	t.Run("incomplete shade set is rejected", func(t *testing.T) {
		t.Parallel()
		theme := validTheme()
		theme.Palette.Families["SUCCESS"] = Family{
			Shades: &ShadeSet{Light: "#3EFF9D", Mid: "#34E683", Dark: "#2CC36F"},
		}
		err := ValidateTheme(theme)
		require.Error(t, err)
	})

	t.Run("invalid family name is rejected", func(t *testing.T) {
		t.Parallel()
		theme := validTheme()
		theme.Palette.Families["2-bad name"] = Family{Base: "#2D6CDF"}
		err := ValidateTheme(theme)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid family name")
	})

	t.Run("missing required size is rejected", func(t *testing.T) {
		t.Parallel()
		theme := validTheme()
		delete(theme.Typography.Sizes, "BODY")
		err := ValidateTheme(theme)
		require.Error(t, err)
		require.Contains(t, err.Error(), "BODY")
	})

	t.Run("size names are matched case-insensitively", func(t *testing.T) {
		t.Parallel()
		theme := validTheme()
		delete(theme.Typography.Sizes, "BODY")
		theme.Typography.Sizes["body"] = 11
		require.NoError(t, ValidateTheme(theme))
	})
}

func TestSpacingDefaultUnit(t *testing.T) {
	t.Parallel()

	theme, err := ParseTheme(writeTempTheme(t, `version: "1.0"
name: "Grid"
palette:
  families:
    PRIMARY:
      base: "#2D6CDF"
typography:
  family: ["Inter"]
  sizes:
    DISPLAY: 20
    HEADING: 16
    TITLE: 14
    BODY: 11
    SMALL: 10
spacing: {}
`))
	require.NoError(t, err)
	require.Equal(t, DefaultSpacingUnit, theme.Spacing.Unit)
}

func TestFamilyUnknownKeyRejected(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme(writeTempTheme(t, `version: "1.0"
name: "Typo"
palette:
  families:
    PRIMARY:
      bsae: "#2D6CDF"
typography:
  family: ["Inter"]
  sizes:
    DISPLAY: 20
    HEADING: 16
    TITLE: 14
    BODY: 11
    SMALL: 10
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown family key")
}
