package convert

// BoolTo maps a boolean onto one of two fixed values, such as colors,
// opacities or label texts.
type BoolTo[T comparable] struct {
	True  T
	False T
}

// Convert implements Converter: true yields c.True, false yields c.False.
func (c BoolTo[T]) Convert(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, WrongTypeError{Want: "bool", Got: typeName(value)}
	}
	if b {
		return c.True, nil
	}
	return c.False, nil
}

// ConvertBack implements Converter by comparing against both branches.
// When c.True and c.False are equal, the value maps back to true.
func (c BoolTo[T]) ConvertBack(value any) (any, error) {
	v, ok := value.(T)
	if !ok {
		return nil, WrongTypeError{Want: typeName(c.True), Got: typeName(value)}
	}
	switch v {
	case c.True:
		return true, nil
	case c.False:
		return false, nil
	default:
		return nil, ErrUnmappedValue
	}
}
