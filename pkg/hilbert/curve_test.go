package hilbert

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveReference(t *testing.T) {
	c, err := NewCurve(3, 5)
	require.NoError(t, err)
	point := []uint32{5, 10, 20}
	h, err := c.Encode(point)
	require.NoError(t, err)
	assert.Equal(t, uint64(7865), h)
	assert.Equal(t, []uint32{5, 10, 20}, point, "encode must not modify its argument")

	axes, err := c.Decode(h)
	require.NoError(t, err)
	assert.Equal(t, Axes{5, 10, 20}, axes)
	assert.Equal(t, "3D/5b", c.String())
}

func TestCurve2DOrder(t *testing.T) {
	c, err := NewCurve(2, 2)
	require.NoError(t, err)
	exp := []Axes{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0, 2}, {0, 3}, {1, 3}, {1, 2},
		{2, 2}, {2, 3}, {3, 3}, {3, 2},
		{3, 1}, {2, 1}, {2, 0}, {3, 0},
	}
	for h, p := range exp {
		axes, err := c.Decode(uint64(h))
		require.NoError(t, err)
		assert.Equal(t, p, axes, "index %d", h)
	}
}

// Every cell is visited once and consecutive cells are grid neighbours.
func TestCurveBijectionAndAdjacency(t *testing.T) {
	shapes := []struct{ dims, bits uint }{
		{1, 6}, {2, 1}, {2, 4}, {3, 1}, {3, 3}, {4, 2}, {5, 2}, {8, 1},
	}
	for _, s := range shapes {
		c, err := NewCurve(s.dims, s.bits)
		require.NoError(t, err)
		seen := make(map[uint64]bool, c.Cells())
		var prev Axes
		for h := uint64(0); h < c.Cells(); h++ {
			axes, err := c.Decode(h)
			require.NoError(t, err)
			back, err := c.Encode(axes)
			require.NoError(t, err)
			require.Equal(t, h, back, "%s index %d", c, h)
			key, err := InterleaveBits(Transpose(axes), c.Bits)
			require.NoError(t, err)
			require.False(t, seen[key], "%s visits %v twice", c, axes)
			seen[key] = true
			if prev != nil {
				require.Equal(t, uint64(1), manhattan(prev, axes), "%s step %d", c, h)
			}
			prev = axes
		}
		assert.Len(t, seen, int(c.Cells()))
	}
}

func TestCurveDeterministic(t *testing.T) {
	c, err := NewCurve(4, 16)
	require.NoError(t, err)
	f := func(a, b, x, y uint16) bool {
		p := []uint32{uint32(a), uint32(b), uint32(x), uint32(y)}
		h1, err := c.Encode(p)
		if err != nil {
			panic(err)
		}
		h2, err := c.Encode(p)
		if err != nil {
			panic(err)
		}
		back, err := c.Decode(h1)
		if err != nil {
			panic(err)
		}
		return h1 == h2 && assert.ObjectsAreEqual(Axes(p), back)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}

func TestCurveLocality(t *testing.T) {
	// neighbouring cells are usually much closer on the curve than a
	// random pair
	c, err := NewCurve(2, 16)
	require.NoError(t, err)
	near := 0
	const samples = 1000
	for i := uint32(0); i < samples; i++ {
		x, y := (i*7919)%65535, (i*104729)%65535
		h1, err := c.Encode([]uint32{x, y})
		require.NoError(t, err)
		h2, err := c.Encode([]uint32{x + 1, y})
		require.NoError(t, err)
		d := h1 - h2
		if h2 > h1 {
			d = h2 - h1
		}
		if d < 1<<16 {
			near++
		}
	}
	assert.Greater(t, near, samples*3/4)
}

func TestCurveValidate(t *testing.T) {
	_, err := NewCurve(0, 4)
	assert.ErrorIs(t, err, ErrDims)
	_, err = NewCurve(3, 0)
	assert.ErrorIs(t, err, ErrBits)
	_, err = NewCurve(3, 22)
	assert.ErrorIs(t, err, ErrCodeOverflow)
	_, err = NewCurve(1<<20, 1)
	assert.ErrorIs(t, err, ErrDims)

	c, err := NewCurve(2, 32)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), c.Cells())

	_, err = c.Encode([]uint32{1})
	assert.ErrorIs(t, err, ErrDims)
	_, err = (Curve{Dims: 2, Bits: 4}).Encode([]uint32{1, 16})
	assert.ErrorIs(t, err, ErrAxisRange)
	_, err = (Curve{Dims: 2, Bits: 4}).Decode(256)
	assert.ErrorIs(t, err, ErrCodeRange)
}
