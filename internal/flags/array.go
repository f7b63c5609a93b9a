package flags

import (
	"reflect"
	"strings"

	"github.com/spf13/pflag"
)

// Array is a repeatable pflag.Value. The defaults are replaced by the first
// value given on the command line.
type Array[T pflag.Value] struct {
	Values []T
	IsSet  bool
}

var _ pflag.Value = (*Array[*ColorNRGBA])(nil)

func NewArray[T pflag.Value](values ...T) *Array[T] {
	return &Array[T]{Values: values}
}

func (a *Array[T]) Set(s string) error {
	if !a.IsSet {
		a.Values = nil
		a.IsSet = true
	}

	v := reflect.New(reflect.TypeFor[T]().Elem()).Interface().(pflag.Value)
	if err := v.Set(s); err != nil {
		return err
	}

	a.Values = append(a.Values, v.(T))
	return nil
}

// Cycle returns a function yielding the values in order, wrapping around
// after the last one. It panics if the array is empty.
func (a *Array[T]) Cycle() func() T {
	if len(a.Values) == 0 {
		panic("flags: Cycle on empty Array")
	}

	values := append([]T(nil), a.Values...)
	i := 0

	return func() T {
		v := values[i%len(values)]
		i++
		return v
	}
}

func (a *Array[T]) String() string {
	strs := make([]string, len(a.Values))
	for i, v := range a.Values {
		strs[i] = v.String()
	}
	return "[" + strings.Join(strs, ",") + "]"
}

func (a *Array[T]) Type() string {
	return "array"
}
