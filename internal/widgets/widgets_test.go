package widgets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veneer-ui/veneer/internal/config"
	"github.com/veneer-ui/veneer/internal/engine"
	"github.com/veneer-ui/veneer/internal/logger"
	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/tokens"
	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

func newTestFactory(t *testing.T) *Factory {
	t.Helper()

	store, err := tokens.NewStore(config.Default(), logger.Discard())
	require.NoError(t, err)
	return NewFactory(engine.New(store, registry.New(logger.Discard()), logger.Discard()))
}

func TestPresetsRender(t *testing.T) {
	t.Parallel()

	f := newTestFactory(t)

	renders := []struct {
		name   string
		render func() (string, error)
	}{
		{"heading", func() (string, error) { return f.Heading("Settings") }},
		{"body", func() (string, error) { return f.Body("plain text") }},
		{"small", func() (string, error) { return f.Small("hint") }},
		{"error text", func() (string, error) { return f.ErrorText("failed") }},
		{"success text", func() (string, error) { return f.SuccessText("saved") }},
		{"warning text", func() (string, error) { return f.WarningText("careful") }},
		{"primary button", func() (string, error) { return f.PrimaryButton("Submit") }},
		{"badge", func() (string, error) { return f.Badge("NEW", "SUCCESS") }},
		{"default entry", func() (string, error) { return f.DefaultEntry("name") }},
		{"error entry", func() (string, error) { return f.ErrorEntry("bad@") }},
		{"card", func() (string, error) { return f.Card("content", engine.ContainerParams{}) }},
		{"panel", func() (string, error) { return f.Panel("content") }},
	}

	for _, tc := range renders {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.render()
			require.NoError(t, err)
			require.NotEmpty(t, out)
		})
	}
}

func TestRepeatedRendersShareStyles(t *testing.T) {
	t.Parallel()

	f := newTestFactory(t)

	for i := 0; i < 5; i++ {
		_, err := f.Heading("Dashboard")
		require.NoError(t, err)
	}

	require.Equal(t, 1, f.Engine().Registry().Registrations())
	stats := f.Engine().CacheStats()
	require.Equal(t, 1, stats.Entries)
	require.Equal(t, 4, stats.Hits)
}

func TestBadgeUnknownVariantPropagates(t *testing.T) {
	t.Parallel()

	f := newTestFactory(t)

	_, err := f.Badge("NEW", "TERTIARY")
	require.Error(t, err)
	var unknownErr *veneererrors.UnknownTokenError
	require.ErrorAs(t, err, &unknownErr)
}
