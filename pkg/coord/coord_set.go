package coord

import (
	"fmt"
	"math/bits"
)

// MaxSetZoom is the deepest zoom a CoordSet can hold. 4^16 bits is 512MiB.
const MaxSetZoom = 16

const bitsPerWord = 64

type bitset struct {
	words []uint64
}

func newBitset(zoom uint) *bitset {
	numBits := uint64(1) << (2 * zoom)
	numWords := (numBits + bitsPerWord - 1) / bitsPerWord
	return &bitset{make([]uint64, numWords)}
}

func (b *bitset) Get(idx uint64) bool {
	return (b.words[idx/bitsPerWord]>>(idx%bitsPerWord))&1 == 1
}

func (b *bitset) Set(idx uint64, val bool) {
	w := &b.words[idx/bitsPerWord]
	mask := uint64(1) << (idx % bitsPerWord)
	if val {
		*w |= mask
	} else {
		*w &^= mask
	}
}

// CoordSet is a set of tiles, one bitset per zoom. Bits are addressed by
// the tile's Hilbert index, so a spatially compact area touches few words.
type CoordSet struct {
	zooms map[uint]*bitset
}

func NewCoordSet() *CoordSet {
	return &CoordSet{make(map[uint]*bitset)}
}

func (s *CoordSet) Get(c Coord) bool {
	b, ok := s.zooms[c.Z]
	if !ok || !c.Valid() {
		return false
	}
	return b.Get(c.MustHilbert())
}

// Set adds or removes c. It panics for tiles deeper than MaxSetZoom or
// outside their zoom grid.
func (s *CoordSet) Set(c Coord, val bool) {
	if c.Z > MaxSetZoom {
		panic(fmt.Sprintf("zoom %d > %d is not supported by CoordSet", c.Z, MaxSetZoom))
	}
	h, err := c.Hilbert()
	if err != nil {
		panic(err)
	}
	b, ok := s.zooms[c.Z]
	if !ok {
		if !val {
			return
		}
		b = newBitset(c.Z)
		s.zooms[c.Z] = b
	}
	b.Set(h, val)
}

// Each calls fn for every tile in the set in zoom-major Hilbert order.
func (s *CoordSet) Each(minZoom, maxZoom uint, fn func(Coord)) {
	for z := minZoom; z <= maxZoom && z <= MaxSetZoom; z++ {
		b, ok := s.zooms[z]
		if !ok {
			continue
		}
		for wi, w := range b.words {
			for w != 0 {
				bit := uint64(bits.TrailingZeros64(w))
				w &^= 1 << bit
				c, err := FromHilbert(z, uint64(wi)*bitsPerWord+bit)
				if err != nil {
					panic(err)
				}
				fn(c)
			}
		}
	}
}
