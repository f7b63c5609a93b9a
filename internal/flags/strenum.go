package flags

import (
	"fmt"
	"strings"
)

// StringEnum is a pflag.Value restricted to a fixed set of strings. The
// first allowed value is the default.
type StringEnum[T ~string] struct {
	Value   T
	Allowed []T
}

func NewStringEnum[T ~string](allowed ...T) *StringEnum[T] {
	return &StringEnum[T]{
		Value:   allowed[0],
		Allowed: allowed,
	}
}

func (e *StringEnum[T]) Set(s string) error {
	for _, v := range e.Allowed {
		if v == T(s) {
			e.Value = v
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, must be one of %s", s, e.allowed())
}

func (e *StringEnum[T]) String() string {
	return string(e.Value)
}

func (e *StringEnum[T]) Type() string {
	return e.allowed()
}

func (e *StringEnum[T]) allowed() string {
	strs := make([]string, len(e.Allowed))
	for i, v := range e.Allowed {
		strs[i] = string(v)
	}
	return strings.Join(strs, "|")
}
