package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

func TestRegisterReturnsHandleAndStoresStyle(t *testing.T) {
	t.Parallel()

	reg := New(nil)

	handle, err := reg.Register("control;BUTTON;bg=PRIMARY:MID", Spec{
		Foreground:  "#FFFFFF",
		Background:  "#00A3FE",
		Bold:        true,
		BorderWidth: 1,
		BorderColor: "#0082CB",
		PaddingX:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, Handle("control;BUTTON;bg=PRIMARY:MID"), handle)

	_, ok := reg.Style(handle)
	assert.True(t, ok)
	assert.Equal(t, 1, reg.Registrations())
}

func TestRegisterRejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	reg := New(nil)

	_, err := reg.Register("text;body", Spec{Foreground: "#000000"})
	require.NoError(t, err)

	_, err = reg.Register("text;body", Spec{Foreground: "#111111"})
	require.Error(t, err)

	var regErr *veneererrors.StyleRegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "text;body", regErr.Name)
	assert.Equal(t, 1, reg.Registrations())
}

func TestRegisterRejectsMalformedSpecs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		spec Spec
	}{
		{"bad foreground", Spec{Foreground: "blue"}},
		{"bad background", Spec{Background: "#12"}},
		{"negative padding", Spec{Foreground: "#000000", PaddingX: -1}},
		{"border without colour", Spec{BorderWidth: 2}},
		{"border width out of range", Spec{BorderWidth: 9, BorderColor: "#000000"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reg := New(nil)
			_, err := reg.Register("bad", tc.spec)
			require.Error(t, err)

			var regErr *veneererrors.StyleRegistrationError
			require.ErrorAs(t, err, &regErr)
			assert.Zero(t, reg.Registrations())
		})
	}
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	t.Parallel()

	reg := New(nil)
	_, err := reg.Register("", Spec{})
	require.Error(t, err)
}

func TestStyleUnknownHandle(t *testing.T) {
	t.Parallel()

	reg := New(nil)
	_, ok := reg.Style(Handle("missing"))
	assert.False(t, ok)
}
