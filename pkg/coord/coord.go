package coord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tilezen/hilbert/pkg/hilbert"
)

// MaxZoom is the deepest zoom whose tiles have a Hilbert index.
const MaxZoom = hilbert.MaxBits

// Coord contains the Z, X, Y coordinate for a particular tile.
type Coord struct {
	Z, X, Y uint
}

// ZoomTo returns a new coordinate with the new zoom.
func (c Coord) ZoomTo(z uint) Coord {
	switch {
	case c.Z == z:
		return c
	case c.Z < z:
		delta := z - c.Z
		return Coord{z, c.X << delta, c.Y << delta}
	default:
		delta := c.Z - z
		return Coord{z, c.X >> delta, c.Y >> delta}
	}
}

// String is the Coord Stringer implementation.
// It returns the coordinate in z/x/y.
func (c Coord) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Z, c.X, c.Y)
}

// Valid reports whether x and y lie inside the zoom's grid.
func (c Coord) Valid() bool {
	if c.Z > MaxZoom {
		return false
	}
	dim := uint64(1) << c.Z
	return uint64(c.X) < dim && uint64(c.Y) < dim
}

// Hilbert returns the position of the tile along the 2D Hilbert curve
// covering its zoom, with x as axis 0 and y as axis 1. Zoom 0 has a single
// tile at index 0.
func (c Coord) Hilbert() (uint64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("tile %s is outside its zoom grid", c)
	}
	if c.Z == 0 {
		return 0, nil
	}
	t, err := hilbert.AxesToTranspose(hilbert.Axes{uint32(c.X), uint32(c.Y)}, c.Z)
	if err != nil {
		return 0, err
	}
	return hilbert.InterleaveBits(t, c.Z)
}

// MustHilbert is Hilbert for coordinates known to be valid.
func (c Coord) MustHilbert() uint64 {
	h, err := c.Hilbert()
	if err != nil {
		panic(err)
	}
	return h
}

// FromHilbert returns the tile at position h along the curve for zoom z.
func FromHilbert(z uint, h uint64) (Coord, error) {
	if z > MaxZoom {
		return Coord{}, fmt.Errorf("zoom %d > %d", z, MaxZoom)
	}
	if z == 0 {
		if h != 0 {
			return Coord{}, fmt.Errorf("hilbert index %d out of range at zoom 0", h)
		}
		return Coord{}, nil
	}
	var t [2]uint32
	if err := hilbert.UninterleaveBits(t[:], z, h); err != nil {
		return Coord{}, err
	}
	axes, err := hilbert.TransposeToAxes(t[:], z)
	if err != nil {
		return Coord{}, err
	}
	return Coord{Z: z, X: uint(axes[0]), Y: uint(axes[1])}, nil
}

// LessHilbert returns true if the coordinate is "less than" the argument.
// First z is considered, then the position along the zoom's Hilbert curve.
func (c Coord) LessHilbert(o Coord) bool {
	if c.Z != o.Z {
		return c.Z < o.Z
	}
	return c.MustHilbert() < o.MustHilbert()
}

// ByHilbert is a wrapper type used for sorting tiles in zoom-major Hilbert
// order. Every coordinate must be Valid.
type ByHilbert []Coord

func (a ByHilbert) Len() int      { return len(a) }
func (a ByHilbert) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByHilbert) Less(i, j int) bool {
	return a[i].LessHilbert(a[j])
}

// Decode parses a coordinate from a string.
// It expects the string to be in the form z/x/y.
func Decode(coordSpec string) (*Coord, error) {
	fields := strings.Split(coordSpec, "/")
	if len(fields) != 3 {
		return nil, errors.New("Invalid number of fields")
	}
	z, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("Invalid z: %#v %s", fields[0], err)
	}
	x, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("Invalid x: %#v %s", fields[1], err)
	}
	y, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("Invalid y: %#v %s", fields[2], err)
	}
	c := Coord{uint(z), uint(x), uint(y)}
	if !c.Valid() {
		return nil, fmt.Errorf("Invalid tile %s: x and y must be below 2^z", c)
	}
	return &c, nil
}
