package gen

import (
	"github.com/tilezen/hilbert/pkg/coord"
)

// Generator provides an interface for yielding successive coordinates.
type Generator interface {
	Next() *coord.Coord
}

type zoomRangeState struct {
	zoom  uint
	end   uint
	index uint64
}

// NewZoomRange returns a Generator that yields all coordinates from begin zoom
// to end zoom, in zoom-major Hilbert order. The end zoom is inclusive and is
// clamped to coord.MaxZoom-1 so the per-zoom tile count fits a uint64.
func NewZoomRange(zoomBegin uint, zoomEndInclusive uint) Generator {
	if zoomEndInclusive >= coord.MaxZoom {
		zoomEndInclusive = coord.MaxZoom - 1
	}
	return &zoomRangeState{zoom: zoomBegin, end: zoomEndInclusive}
}

func (g *zoomRangeState) Next() *coord.Coord {
	if g.zoom > g.end {
		return nil
	}
	result, err := coord.FromHilbert(g.zoom, g.index)
	if err != nil {
		panic(err)
	}
	g.index++
	if g.index == uint64(1)<<(2*g.zoom) {
		g.index = 0
		g.zoom++
	}
	return &result
}

type sliceState struct {
	idx    uint
	coords []coord.Coord
}

// NewSlice returns a Generator that yields all coordinates in the slice.
func NewSlice(coords []coord.Coord) Generator {
	return &sliceState{0, coords}
}

func (g *sliceState) Next() *coord.Coord {
	if g.idx >= uint(len(g.coords)) {
		return nil
	}
	result := g.coords[g.idx]
	g.idx++
	return &result
}
