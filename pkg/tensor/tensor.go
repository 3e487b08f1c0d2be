// Package tensor implements dense float64 tensors in row-major strided
// storage, with element access, element-wise arithmetic, and dot products.
package tensor

import (
	"errors"
	"fmt"
)

// Errors returned by tensor operations.
var (
	ErrEmptyShape    = errors.New("tensor: shape must have at least one dimension")
	ErrBadDimension  = errors.New("tensor: dimensions must be positive")
	ErrShapeMismatch = errors.New("tensor: shape mismatch")
	ErrIndexRank     = errors.New("tensor: wrong number of indices")
	ErrIndexRange    = errors.New("tensor: index out of range")
	ErrBadDot        = errors.New("tensor: dot supports 1-D vectors and 2-D matrices with matching inner dimensions")
)

// Tensor is a dense row-major array of float64 values.
type Tensor struct {
	shape []int
	data  []float64
}

// New creates a zero-filled tensor with the given shape.
func New(shape ...int) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyShape
	}
	size := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrBadDimension, dim)
		}
		size *= dim
	}
	t := &Tensor{
		shape: append([]int(nil), shape...),
		data:  make([]float64, size),
	}
	return t, nil
}

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return len(t.data)
}

// offset computes the row-major flat offset for a multi-index.
func (t *Tensor) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("%w: got %d indices for rank %d", ErrIndexRank, len(idx), len(t.shape))
	}
	off := 0
	stride := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		if idx[i] < 0 || idx[i] >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of [0, %d) in dimension %d", ErrIndexRange, idx[i], t.shape[i], i)
		}
		off += idx[i] * stride
		stride *= t.shape[i]
	}
	return off, nil
}

// At returns the element at the given multi-index.
func (t *Tensor) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, err
	}
	return t.data[off], nil
}

// Set stores value at the given multi-index.
func (t *Tensor) Set(value float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return err
	}
	t.data[off] = value
	return nil
}

// Fill sets every element to value.
func (t *Tensor) Fill(value float64) {
	for i := range t.data {
		t.data[i] = value
	}
}

// sameShape reports whether both tensors have identical shapes.
func sameShape(a, b *Tensor) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	return true
}

// Add returns the element-wise sum. Shapes must be identical.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if !sameShape(t, other) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, t.shape, other.shape)
	}
	r, _ := New(t.shape...)
	for i := range t.data {
		r.data[i] = t.data[i] + other.data[i]
	}
	return r, nil
}

// Mul returns the element-wise product. Shapes must be identical.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	if !sameShape(t, other) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, t.shape, other.shape)
	}
	r, _ := New(t.shape...)
	for i := range t.data {
		r.data[i] = t.data[i] * other.data[i]
	}
	return r, nil
}

// Dot computes the inner product. Supported forms: two equal-length 1-D
// vectors (result is a 1-element tensor) and two 2-D matrices with matching
// inner dimensions (result is the matrix product).
func (t *Tensor) Dot(other *Tensor) (*Tensor, error) {
	if t.Rank() == 1 && other.Rank() == 1 && t.shape[0] == other.shape[0] {
		sum := 0.0
		for i := range t.data {
			sum += t.data[i] * other.data[i]
		}
		r, _ := New(1)
		r.data[0] = sum
		return r, nil
	}

	if t.Rank() == 2 && other.Rank() == 2 && t.shape[1] == other.shape[0] {
		m, n, p := t.shape[0], t.shape[1], other.shape[1]
		r, _ := New(m, p)
		for i := 0; i < m; i++ {
			for j := 0; j < p; j++ {
				sum := 0.0
				for k := 0; k < n; k++ {
					sum += t.data[i*n+k] * other.data[k*p+j]
				}
				r.data[i*p+j] = sum
			}
		}
		return r, nil
	}

	return nil, fmt.Errorf("%w: %v vs %v", ErrBadDot, t.shape, other.shape)
}
