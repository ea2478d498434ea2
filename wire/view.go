package wire

import (
	"encoding/binary"
	"fmt"
	"iter"
)

// View is a zero-copy, bounded, random-access sequence of wire elements over
// memory owned by someone else (a reply Buffer or a caller's struct). A View
// must not outlive that memory.
type View[T any] struct {
	data []byte
	n    int
	size int
	at   func([]byte) T
}

// NewView builds a view of n elements of size bytes each, decoded by at. The
// count is clamped to what data can hold.
func NewView[T any](data []byte, n, size int, at func([]byte) T) View[T] {
	if n < 0 || size <= 0 {
		n = 0
	}
	if size > 0 && n*size > len(data) {
		n = len(data) / size
	}
	end := n * size
	return View[T]{data: data[:end:end], n: n, size: size, at: at}
}

// Scalar is an element type that Scalars decodes by value.
type Scalar interface {
	~uint8 | ~uint16 | ~uint32 | ~int8 | ~int16 | ~int32
}

// Scalars returns a view whose elements are copied out as values.
func Scalars[T Scalar](data []byte, n int) View[T] {
	var zero T
	size := binary.Size(zero)
	return NewView(data, n, size, scalarAt[T](size))
}

func scalarAt[T Scalar](size int) func([]byte) T {
	switch size {
	case 1:
		return func(b []byte) T { return T(b[0]) }
	case 2:
		return func(b []byte) T { return T(byteOrder.Uint16(b)) }
	default:
		return func(b []byte) T { return T(byteOrder.Uint32(b)) }
	}
}

func (v View[T]) Len() int { return v.n }

// ElemSize is the wire size of one element.
func (v View[T]) ElemSize() int { return v.size }

// At returns element i. It panics when i is out of range.
func (v View[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("wire: view index %d out of range [0:%d]", i, v.n))
	}
	off := i * v.size
	return v.at(v.data[off : off+v.size : off+v.size])
}

// Bytes returns the backing region covered by the view, without copying.
func (v View[T]) Bytes() []byte { return v.data }

func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// Collect copies the elements into a new slice.
func (v View[T]) Collect() []T {
	out := make([]T, 0, v.n)
	for e := range v.Values() {
		out = append(out, e)
	}
	return out
}

func (v View[T]) Begin() Iterator[T] { return Iterator[T]{v: v} }

func (v View[T]) End() Iterator[T] { return Iterator[T]{v: v, i: v.n} }

// Iterator is a random-access position within a View. Comparisons are only
// meaningful between iterators of the same view.
type Iterator[T any] struct {
	v View[T]
	i int
}

// Value dereferences the iterator. It panics at End.
func (it Iterator[T]) Value() T { return it.v.At(it.i) }

func (it Iterator[T]) Index() int { return it.i }

func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

func (it Iterator[T]) Add(n int) Iterator[T] {
	it.i += n
	return it
}

// Distance returns it - other in elements.
func (it Iterator[T]) Distance(other Iterator[T]) int { return it.i - other.i }

func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.i == other.i }

func (it Iterator[T]) Less(other Iterator[T]) bool { return it.i < other.i }

// String8 is a view over a counted, unterminated 8-bit string.
type String8 struct {
	View[byte]
}

func NewString8(data []byte, n int) String8 {
	return String8{View: Scalars[byte](data, n)}
}

// String copies the bytes into a Go string.
func (s String8) String() string { return string(s.Bytes()) }
