// Package convert provides binding value converters: small two-way adapters
// applied between a view-model property and the bound view attribute.
package convert

import (
	"errors"
	"reflect"
	"strconv"
)

// Converter adapts a value on its way into a binding (Convert) and back out
// of it (ConvertBack).
type Converter interface {
	Convert(value any) (any, error)
	ConvertBack(value any) (any, error)
}

// ErrUnmappedValue is returned by ConvertBack when a value matches neither
// branch of a two-branch converter.
var ErrUnmappedValue = errors.New("convert: value maps to neither branch")

// WrongTypeError is returned when a converter is handed a value of a type
// it does not handle.
type WrongTypeError struct {
	Want string
	Got  string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: convert: want "bool", got "string"
	return "convert: want " + strconv.Quote(e.Want) + ", got " + strconv.Quote(e.Got)
}

// InvertBool negates a boolean in both directions. The classic use is
// binding an "enabled" control attribute to an IsBusy property.
type InvertBool struct{}

// Convert implements Converter.
func (InvertBool) Convert(value any) (any, error) { return invert(value) }

// ConvertBack implements Converter.
func (InvertBool) ConvertBack(value any) (any, error) { return invert(value) }

func invert(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, WrongTypeError{Want: "bool", Got: typeName(value)}
	}
	return !b, nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
