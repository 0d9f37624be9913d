// Package hilbert converts between points of an n-dimensional integer grid and
// their index along a Hilbert curve, following John Skilling, "Programming the
// Hilbert curve" (2004). The transforms work in place on caller buffers.
package hilbert

import (
	"errors"
	"fmt"
)

// Axes are a point's ordinary per-dimension coordinates, each holding a
// fixed number of significant bits.
type Axes []uint32

// Transpose is the bit-transposed layout of a Hilbert index. For n
// dimensions, bit k of element j is bit k*n + (n-1-j) of the index, so
// element 0 carries the most significant bit of every n-bit group.
type Transpose []uint32

const (
	// MaxBits is the largest number of bits per axis.
	MaxBits = 32
	// MaxDims is the largest number of dimensions.
	MaxDims = 64
	// CodeBits is the width of a packed Hilbert index.
	CodeBits = 64
)

var (
	ErrBits         = errors.New("bits per axis out of range")
	ErrDims         = errors.New("dimension count out of range")
	ErrAxisRange    = errors.New("axis value does not fit in bits")
	ErrCodeOverflow = errors.New("hilbert index does not fit in 64 bits")
	ErrCodeRange    = errors.New("hilbert index has bits beyond dims*bits")
)

func checkShape(n int, bits uint) error {
	if bits < 1 || bits > MaxBits {
		return fmt.Errorf("%w: bits=%d, want 1..%d", ErrBits, bits, MaxBits)
	}
	if n < 1 || n > MaxDims {
		return fmt.Errorf("%w: dims=%d, want 1..%d", ErrDims, n, MaxDims)
	}
	return nil
}

func checkValues(vals []uint32, bits uint) error {
	if bits == MaxBits {
		return nil
	}
	limit := uint32(1) << bits
	for i, v := range vals {
		if v >= limit {
			return fmt.Errorf("%w: axis %d = %d, bits=%d", ErrAxisRange, i, v, bits)
		}
	}
	return nil
}

// checkCode rejects shapes whose index would not fit a uint64.
func checkCode(n int, bits uint) error {
	if uint(n)*bits > CodeBits {
		return fmt.Errorf("%w: dims=%d bits=%d", ErrCodeOverflow, n, bits)
	}
	return nil
}
