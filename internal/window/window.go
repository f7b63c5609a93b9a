// Package window implements the fixed-width point buffer that feeds one
// chart line.
package window

// Size is the number of samples held by every chart window.
const Size = 30

// Sample is one plotted point.
type Sample struct {
	Index int
	Value float64
}

// Window is the most recent samples of one channel, ordered by index. Its
// indices are always 0..len-1; the window re-indexes on every shift instead
// of carrying absolute time.
type Window []Sample

// New creates a window of n zero-valued samples at indices 0..n-1.
func New(n int) Window {
	w := make(Window, n)
	for i := range w {
		w[i].Index = i
	}
	return w
}

// Shift ages the window by one sample and appends v at index len(w)-1.
// Values at positions 1..len-2 move one position left. The value at
// position 0 is never evicted.
//
// Shift mutates w in place and returns it. w must hold at least 2 samples.
func Shift(w Window, v float64) Window {
	values := w.Values()

	for i := 1; i < len(values)-1; i++ {
		w[i] = Sample{Index: w[i].Index, Value: values[i+1]}
	}

	w = w[:len(w)-1]
	w = append(w, Sample{Index: len(values) - 1, Value: v})

	return w
}

// Values returns a copy of the value column of w.
func (w Window) Values() []float64 {
	values := make([]float64, len(w))
	for i, s := range w {
		values[i] = s.Value
	}
	return values
}

// Last returns the newest value in the window.
func (w Window) Last() float64 {
	if len(w) == 0 {
		return 0
	}
	return w[len(w)-1].Value
}
