package pack

import (
	"fmt"

	"github.com/tilezen/hilbert/pkg/coord"
)

// ToU64 will pack a coordinate into a u64 as its zoom followed by its Hilbert
// index, so packed values sort in zoom-major Hilbert order. The maximum zoom
// handled is 29. Coordinates with a higher zoom will result in an error.
func ToU64(c coord.Coord) (uint64, error) {
	if c.Z > 29 {
		return 0, fmt.Errorf("cannot pack coordinate into u64, z=%d > 29", c.Z)
	}
	h, err := c.Hilbert()
	if err != nil {
		return 0, err
	}
	return (uint64(c.Z) << 58) | h, nil
}

// FromU64 will take a u64 and return a coordinate from that representation.
// It's expected that the u64 was created from a call to ToU64.
func FromU64(val uint64) (coord.Coord, error) {
	z := uint(val >> 58)
	return coord.FromHilbert(z, val&((1<<58)-1))
}
