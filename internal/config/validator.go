package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	veneererrors "github.com/veneer-ui/veneer/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	familyNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// requiredSizes are the size names every theme must define.
var requiredSizes = []string{"DISPLAY", "HEADING", "TITLE", "BODY", "SMALL"}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateTheme performs schema and cross-field validation on the theme.
func ValidateTheme(theme *Theme) error {
	if theme == nil {
		return veneererrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(theme); err != nil {
		return convertValidationError(err)
	}

	for name, family := range theme.Palette.Families {
		if !familyNamePattern.MatchString(name) {
			return veneererrors.NewValidationError(fieldForFamily(name), fmt.Sprintf("invalid family name %q", name), nil)
		}
		if err := validateFamily(name, family); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(theme.Typography.Sizes))
	for name := range theme.Typography.Sizes {
		seen[strings.ToUpper(name)] = struct{}{}
	}
	for _, required := range requiredSizes {
		if _, ok := seen[required]; !ok {
			return veneererrors.NewValidationError("typography.sizes", fmt.Sprintf("missing required size %q", required), nil)
		}
	}

	return nil
}

func validateFamily(name string, family Family) error {
	hasBase := family.Base != ""
	hasShades := family.Shades != nil

	switch {
	case hasBase && hasShades:
		return veneererrors.NewValidationError(fieldForFamily(name), "base and shades are mutually exclusive", nil)
	case !hasBase && !hasShades:
		return veneererrors.NewValidationError(fieldForFamily(name), "either base or shades is required", nil)
	case hasShades:
		if err := validatorInstance().Struct(family.Shades); err != nil {
			return convertValidationError(err)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return veneererrors.NewValidationError(field, msg, err)
	}

	return veneererrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForFamily(name string) string {
	return fmt.Sprintf("palette.families.%s", name)
}
