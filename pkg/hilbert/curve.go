package hilbert

import "fmt"

// Curve is an n-dimensional Hilbert curve with a fixed number of bits per
// axis. Unlike the in-place transforms it never modifies its arguments.
type Curve struct {
	Dims uint `yaml:"dims"`
	Bits uint `yaml:"bits"`
}

// NewCurve returns a curve whose indices fit in a uint64.
func NewCurve(dims, bits uint) (Curve, error) {
	c := Curve{Dims: dims, Bits: bits}
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}
	return c, nil
}

// Validate reports whether points on c can be encoded into a uint64.
func (c Curve) Validate() error {
	if c.Dims > MaxDims {
		return fmt.Errorf("%w: dims=%d, want 1..%d", ErrDims, c.Dims, MaxDims)
	}
	if err := checkShape(int(c.Dims), c.Bits); err != nil {
		return err
	}
	return checkCode(int(c.Dims), c.Bits)
}

// Cells returns the number of grid cells covered by the curve. It is zero
// when the count does not fit in a uint64 (dims*bits == 64).
func (c Curve) Cells() uint64 {
	total := c.Dims * c.Bits
	if total >= CodeBits {
		return 0
	}
	return uint64(1) << total
}

// Encode returns the Hilbert index of point.
func (c Curve) Encode(point []uint32) (uint64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if uint(len(point)) != c.Dims {
		return 0, fmt.Errorf("%w: got %d coordinates for %s", ErrDims, len(point), c)
	}
	var buf [MaxDims]uint32
	axes := Axes(buf[:c.Dims])
	copy(axes, point)
	t, err := AxesToTranspose(axes, c.Bits)
	if err != nil {
		return 0, err
	}
	return InterleaveBits(t, c.Bits)
}

// Decode returns the point at Hilbert index h.
func (c Curve) Decode(h uint64) (Axes, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	t := make(Transpose, c.Dims)
	if err := UninterleaveBits(t, c.Bits, h); err != nil {
		return nil, err
	}
	return TransposeToAxes(t, c.Bits)
}

func (c Curve) String() string {
	return fmt.Sprintf("%dD/%db", c.Dims, c.Bits)
}
