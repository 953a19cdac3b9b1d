package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownTokenError indicates a semantic parameter (colour role, shade,
// spacing name, size, border weight, or widget variant) has no entry in the
// token store. Resolvers raise it before any cache interaction; callers never
// receive a silently substituted default instead.
type UnknownTokenError struct {
	Kind string
	Name string
}

// NewUnknownTokenError constructs an UnknownTokenError for a token kind
// ("colour family", "shade", "spacing", ...) and the name that missed.
func NewUnknownTokenError(kind, name string) error {
	return &UnknownTokenError{Kind: kind, Name: name}
}

func (e *UnknownTokenError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown %s token: %q", e.Kind, e.Name)
}

// InvalidColorError indicates a malformed colour value reached the shade
// deriver. Raised before any derivation occurs.
type InvalidColorError struct {
	Value string
	Err   error
}

// NewInvalidColorError constructs an InvalidColorError.
func NewInvalidColorError(value string, err error) error {
	return &InvalidColorError{Value: value, Err: err}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid colour value %q", e.Value)
}

// Unwrap exposes the underlying error.
func (e *InvalidColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StyleRegistrationError indicates the native style registry rejected a
// composed style. The cache guarantees no entry is stored when this is
// returned, so a corrected retry with the same key builds again.
type StyleRegistrationError struct {
	Name    string
	Message string
	Err     error
}

// NewStyleRegistrationError constructs a StyleRegistrationError for the
// style name that failed to register.
func NewStyleRegistrationError(name string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StyleRegistrationError{Name: name, Message: message, Err: err}
}

func (e *StyleRegistrationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("style registration failed [%s]: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("style registration failed: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *StyleRegistrationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
