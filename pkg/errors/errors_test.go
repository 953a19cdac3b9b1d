package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palette.families[primary].base", "not a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palette.families[primary].base", validationErr.Field)
	require.Contains(t, validationErr.Message, "not a hex colour")
}

func TestUnknownTokenErrorNamesTheMiss(t *testing.T) {
	t.Parallel()

	err := NewUnknownTokenError("shade", "ULTRA")

	var tokenErr *UnknownTokenError
	require.ErrorAs(t, err, &tokenErr)
	require.Equal(t, "shade", tokenErr.Kind)
	require.Equal(t, "ULTRA", tokenErr.Name)
	require.Contains(t, err.Error(), `"ULTRA"`)
}

func TestInvalidColorErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("odd length hex string")
	err := NewInvalidColorError("#12XYZ", underlying)

	var colorErr *InvalidColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "#12XYZ", colorErr.Value)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestStyleRegistrationErrorIncludesStyleName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("duplicate registration")
	err := NewStyleRegistrationError("control;BUTTON;bg=PRIMARY:MID", underlying)

	var regErr *StyleRegistrationError
	require.ErrorAs(t, err, &regErr)
	require.Equal(t, "control;BUTTON;bg=PRIMARY:MID", regErr.Name)
	require.True(t, stdErrors.Is(err, underlying))
}
