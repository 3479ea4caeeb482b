package jsondata

import (
	"fmt"
	"strings"

	"github.com/hrytsenko/json-data/ir"
)

// PathError is the panic value for a malformed path string.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// TypeError is the panic value for a type narrowing failure: the value
// at Path exists but has the wrong kind.
type TypeError struct {
	Path string
	Want ir.Type
	Got  ir.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value at %q is %s, not %s", e.Path, e.Got, e.Want)
}

// ConstructError is the panic value for a factory that could not build
// an instance, either because no constructor is bound or because the
// constructor itself failed.
type ConstructError struct {
	Err error
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("construction failed: %v", e.Err)
}

func (e *ConstructError) Unwrap() error {
	return e.Err
}

// ParseError reports a de/serialization failure.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("deserialization failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports a malformed schema or transformation spec
// supplied at setup time.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError reports a transformation failure.
type TransformError struct {
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transformation failed: %v", e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// ValidateError reports a validation failure with every violation
// found.
type ValidateError struct {
	Violations []string
}

func (e *ValidateError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
