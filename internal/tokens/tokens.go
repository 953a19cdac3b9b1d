package tokens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/veneer-ui/veneer/internal/config"
	"github.com/veneer-ui/veneer/internal/logger"
	"github.com/veneer-ui/veneer/internal/shade"
	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

// FontSpec pairs a font cascade with a point size.
type FontSpec struct {
	Cascade []string
	Size    int
}

// String formats the font the way token listings display it.
func (f FontSpec) String() string {
	return fmt.Sprintf("%s %dpt", strings.Join(f.Cascade, ", "), f.Size)
}

// Spacing multipliers applied to the theme grid unit.
var spacingMultipliers = map[string]int{
	"XS":  1,
	"SM":  2,
	"MD":  4,
	"LG":  6,
	"XL":  8,
	"XXL": 12,
}

// Border weights in pixels.
var borderWeights = map[string]int{
	"NONE":   0,
	"THIN":   1,
	"MEDIUM": 2,
	"THICK":  3,
}

const (
	textBlack = "#000000"
	textWhite = "#FFFFFF"
	textGrey  = "#999999"
)

// minContrastRatio is the WCAG AA threshold for normal text. Shades that
// cannot carry readable black or white text are reported, not rejected.
const minContrastRatio = 4.5

// Store resolves semantic token names to concrete values. It is built once
// from a validated theme and is read-only afterwards.
type Store struct {
	families map[string]shade.Scale
	sizes    map[string]int
	cascade  []string
	spacing  map[string]int
	borders  map[string]int
	text     map[string]string
	unit     int
	log      *logger.Logger
}

// NewStore derives every colour family of the theme and indexes the
// remaining token axes. A family with a base colour gets its four shades
// computed; a family with explicit shades is taken verbatim.
func NewStore(theme *config.Theme, log *logger.Logger) (*Store, error) {
	if theme == nil {
		return nil, veneererrors.NewValidationError("theme", "theme is nil", nil)
	}
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithComponent("tokens")

	store := &Store{
		families: make(map[string]shade.Scale, len(theme.Palette.Families)),
		sizes:    make(map[string]int, len(theme.Typography.Sizes)),
		cascade:  append([]string(nil), theme.Typography.Family...),
		spacing:  make(map[string]int, len(spacingMultipliers)),
		borders:  borderWeights,
		text:     make(map[string]string, 5),
		log:      log,
	}

	for name, family := range theme.Palette.Families {
		scale, err := scaleFor(family)
		if err != nil {
			return nil, err
		}
		store.families[strings.ToUpper(name)] = scale
	}

	for name, size := range theme.Typography.Sizes {
		store.sizes[strings.ToUpper(name)] = size
	}

	unit := theme.Spacing.Unit
	if unit == 0 {
		unit = config.DefaultSpacingUnit
	}
	store.unit = unit
	for name, multiplier := range spacingMultipliers {
		store.spacing[name] = unit * multiplier
	}

	store.text["BLACK"] = textBlack
	store.text["WHITE"] = textWhite
	store.text["GREY"] = textGrey
	if primary, ok := store.families["PRIMARY"]; ok {
		store.text["PRIMARY"] = primary.Mid
	}
	if secondary, ok := store.families["SECONDARY"]; ok {
		store.text["SECONDARY"] = secondary.Mid
	}

	store.reportContrast()

	return store, nil
}

func scaleFor(family config.Family) (shade.Scale, error) {
	if family.Shades != nil {
		return shade.Scale{
			Light: strings.ToUpper(family.Shades.Light),
			Mid:   strings.ToUpper(family.Shades.Mid),
			Dark:  strings.ToUpper(family.Shades.Dark),
			XDark: strings.ToUpper(family.Shades.XDark),
		}, nil
	}
	return shade.Derive(family.Base)
}

// reportContrast warns about shades on which neither black nor white text
// reaches the AA contrast ratio.
func (s *Store) reportContrast() {
	for _, name := range s.FamilyNames() {
		scale := s.families[name]
		for _, sh := range shade.Names() {
			hex, err := scale.Get(sh)
			if err != nil {
				continue
			}
			black, errB := shade.ContrastRatio(hex, textBlack)
			white, errW := shade.ContrastRatio(hex, textWhite)
			if errB != nil || errW != nil {
				continue
			}
			best := black
			if white > best {
				best = white
			}
			if best < minContrastRatio {
				s.log.WithFields(map[string]any{
					"family":   name,
					"shade":    string(sh),
					"colour":   hex,
					"contrast": fmt.Sprintf("%.2f", best),
				}).Warn("shade fails AA contrast for both black and white text")
			}
		}
	}
}

// ColorFamily returns the full scale of a family.
func (s *Store) ColorFamily(name string) (shade.Scale, error) {
	scale, ok := s.families[strings.ToUpper(name)]
	if !ok {
		return shade.Scale{}, veneererrors.NewUnknownTokenError("family", name)
	}
	return scale, nil
}

// Color resolves one shade of a family.
func (s *Store) Color(family string, sh shade.Name) (string, error) {
	scale, err := s.ColorFamily(family)
	if err != nil {
		return "", err
	}
	return scale.Get(sh)
}

// TextColor resolves a named text colour.
func (s *Store) TextColor(name string) (string, error) {
	hex, ok := s.text[strings.ToUpper(name)]
	if !ok {
		return "", veneererrors.NewUnknownTokenError("text", name)
	}
	return hex, nil
}

// FontSpec resolves a named size to a spec carrying the theme cascade.
func (s *Store) FontSpec(name string) (FontSpec, error) {
	size, ok := s.sizes[strings.ToUpper(name)]
	if !ok {
		return FontSpec{}, veneererrors.NewUnknownTokenError("size", name)
	}
	return FontSpec{Cascade: s.cascade, Size: size}, nil
}

// Spacing resolves a named step of the spacing scale to pixels.
func (s *Store) Spacing(name string) (int, error) {
	px, ok := s.spacing[strings.ToUpper(name)]
	if !ok {
		return 0, veneererrors.NewUnknownTokenError("spacing", name)
	}
	return px, nil
}

// GridUnit returns the theme grid unit in pixels.
func (s *Store) GridUnit() int {
	return s.unit
}

// BorderWeight resolves a named border weight to pixels.
func (s *Store) BorderWeight(name string) (int, error) {
	px, ok := s.borders[strings.ToUpper(name)]
	if !ok {
		return 0, veneererrors.NewUnknownTokenError("border", name)
	}
	return px, nil
}

// FamilyNames lists the known families in sorted order.
func (s *Store) FamilyNames() []string {
	names := make([]string, 0, len(s.families))
	for name := range s.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SizeNames lists the known font sizes in sorted order.
func (s *Store) SizeNames() []string {
	names := make([]string, 0, len(s.sizes))
	for name := range s.sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SpacingNames lists the spacing steps from smallest to largest.
func (s *Store) SpacingNames() []string {
	return []string{"XS", "SM", "MD", "LG", "XL", "XXL"}
}

// BorderNames lists the border weights from none to thickest.
func (s *Store) BorderNames() []string {
	return []string{"NONE", "THIN", "MEDIUM", "THICK"}
}

// TextColorNames lists the named text colours in sorted order.
func (s *Store) TextColorNames() []string {
	names := make([]string, 0, len(s.text))
	for name := range s.text {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
