package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Theme represents a full theme document.
type Theme struct {
	Version     string     `yaml:"version" validate:"required,semver"`
	Name        string     `yaml:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty"`
	Palette     Palette    `yaml:"palette" validate:"required"`
	Typography  Typography `yaml:"typography" validate:"required"`
	Spacing     Spacing    `yaml:"spacing,omitempty"`
}

// Palette holds the named colour families of a theme.
type Palette struct {
	Families map[string]Family `yaml:"families" validate:"required,min=1,dive"`
}

// Family declares the colours of one semantic family. A family is either
// derived from a single base colour or lists its four shades explicitly;
// setting both (or neither) is a validation error.
type Family struct {
	Base   string    `yaml:"base,omitempty" validate:"omitempty,hexcolor"`
	Shades *ShadeSet `yaml:"shades,omitempty"`
}

// UnmarshalYAML rejects unknown family keys so a typo like "bsae" fails
// loudly instead of producing an empty family.
func (f *Family) UnmarshalYAML(value *yaml.Node) error {
	type rawFamily Family
	var temp rawFamily
	if err := value.Decode(&temp); err != nil {
		return err
	}

	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			if key != "base" && key != "shades" {
				return fmt.Errorf("line %d: unknown family key %q", value.Content[i].Line, key)
			}
		}
	}

	*f = Family(temp)
	return nil
}

// ShadeSet lists the four shades of a hand-tuned family.
type ShadeSet struct {
	Light string `yaml:"light" validate:"required,hexcolor"`
	Mid   string `yaml:"mid" validate:"required,hexcolor"`
	Dark  string `yaml:"dark" validate:"required,hexcolor"`
	XDark string `yaml:"xdark" validate:"required,hexcolor"`
}

// Typography declares the font cascade and the named sizes.
type Typography struct {
	Family []string       `yaml:"family" validate:"required,min=1,dive,min=1"`
	Sizes  map[string]int `yaml:"sizes" validate:"required,min=1,dive,min=1,max=128"`
}

// Spacing configures the geometric grid.
type Spacing struct {
	Unit int `yaml:"unit,omitempty" validate:"omitempty,min=1,max=16"`
}

// UnmarshalYAML applies the default grid unit when spacing is present but
// the unit is omitted.
func (s *Spacing) UnmarshalYAML(value *yaml.Node) error {
	type rawSpacing Spacing
	var temp rawSpacing
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*s = Spacing(temp)
	if s.Unit == 0 {
		s.Unit = DefaultSpacingUnit
	}
	return nil
}
