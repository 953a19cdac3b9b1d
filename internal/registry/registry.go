// Package registry is the boundary to the native style toolkit. It owns the
// process-wide table of registered lipgloss styles, keyed by the canonical
// names the cache hands it. Registering the same name twice is an error: the
// style cache is the only component allowed to decide whether a name has
// been seen before, and the registry enforcing uniqueness keeps that
// contract observable.
package registry

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/veneer-ui/veneer/internal/logger"
	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

// Handle is the opaque identifier returned by a successful registration.
// The widget factory layer attaches it to concrete widgets and uses it to
// look the style back up at render time.
type Handle string

// Spec carries the fully resolved visual attributes for one style. All
// colour values are "#RRGGBB"; empty strings mean the attribute is left to
// inherit from the surrounding surface.
type Spec struct {
	Foreground  string
	Background  string
	Bold        bool
	Italic      bool
	Underline   bool
	BorderWidth int
	BorderColor string
	PaddingX    int
	PaddingY    int
}

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func (s Spec) validate() error {
	for field, value := range map[string]string{
		"foreground":   s.Foreground,
		"background":   s.Background,
		"border_color": s.BorderColor,
	} {
		if value != "" && !hexPattern.MatchString(value) {
			return fmt.Errorf("%s %q is not a #RRGGBB colour", field, value)
		}
	}
	if s.BorderWidth < 0 || s.BorderWidth > 3 {
		return fmt.Errorf("border width %d outside supported range 0-3", s.BorderWidth)
	}
	if s.PaddingX < 0 || s.PaddingY < 0 {
		return fmt.Errorf("negative padding (%d, %d)", s.PaddingX, s.PaddingY)
	}
	if s.BorderWidth > 0 && s.BorderColor == "" {
		return fmt.Errorf("border width %d requires a border colour", s.BorderWidth)
	}
	return nil
}

// Registry holds every registered style for the lifetime of the process.
// Entries are never evicted; tokens are immutable once loaded, so a
// registered style can never become stale.
type Registry struct {
	mu            sync.RWMutex
	styles        map[Handle]lipgloss.Style
	registrations int
	log           *logger.Logger
}

// New creates an empty Registry.
func New(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry{
		styles: make(map[Handle]lipgloss.Style),
		log:    log.WithComponent("registry"),
	}
}

// Register composes a lipgloss style from spec and stores it under name.
// It fails with StyleRegistrationError on a malformed spec or a duplicate
// name; nothing is stored on failure.
func (r *Registry) Register(name string, spec Spec) (Handle, error) {
	if name == "" {
		return "", veneererrors.NewStyleRegistrationError(name, fmt.Errorf("empty style name"))
	}
	if err := spec.validate(); err != nil {
		return "", veneererrors.NewStyleRegistrationError(name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	handle := Handle(name)
	if _, exists := r.styles[handle]; exists {
		return "", veneererrors.NewStyleRegistrationError(name, fmt.Errorf("style already registered"))
	}

	r.styles[handle] = compose(spec)
	r.registrations++
	r.log.WithFields(map[string]any{"style": name, "total": r.registrations}).Debug("registered native style")

	return handle, nil
}

// Style returns the registered lipgloss style for a handle.
func (r *Registry) Style(h Handle) (lipgloss.Style, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	style, ok := r.styles[h]
	return style, ok
}

// Registrations reports how many styles have been registered since startup.
// The at-most-one-registration guarantee is asserted against this counter.
func (r *Registry) Registrations() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.registrations
}

func compose(spec Spec) lipgloss.Style {
	style := lipgloss.NewStyle()

	if spec.Foreground != "" {
		style = style.Foreground(lipgloss.Color(spec.Foreground))
	}
	if spec.Background != "" {
		style = style.Background(lipgloss.Color(spec.Background))
	}
	if spec.Bold {
		style = style.Bold(true)
	}
	if spec.Italic {
		style = style.Italic(true)
	}
	if spec.Underline {
		style = style.Underline(true)
	}
	if spec.PaddingX > 0 || spec.PaddingY > 0 {
		style = style.Padding(spec.PaddingY, spec.PaddingX)
	}
	if spec.BorderWidth > 0 {
		style = style.
			BorderStyle(borderFor(spec.BorderWidth)).
			BorderForeground(lipgloss.Color(spec.BorderColor))
	}

	return style
}

// borderFor maps the numeric border weight onto progressively heavier
// lipgloss border glyph sets.
func borderFor(width int) lipgloss.Border {
	switch width {
	case 1:
		return lipgloss.NormalBorder()
	case 2:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.DoubleBorder()
	}
}
