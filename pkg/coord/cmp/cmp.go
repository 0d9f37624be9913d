package cmp

import (
	"github.com/tilezen/hilbert/pkg/coord"
	"github.com/tilezen/hilbert/pkg/coord/gen"
)

// FindMissingTiles compares two coordinate generators to find the missing tiles.
// It assumes that the first generator is the exhaustive list of what's
// expected, and reports the coordinates that are missing from the second
// generator. Both generators must yield tiles in zoom-major Hilbert order;
// tiles only present in the second generator are ignored.
func FindMissingTiles(exp gen.Generator, act gen.Generator) []coord.Coord {
	var result []coord.Coord
	expC := exp.Next()
	actC := act.Next()
	for expC != nil {
		switch {
		case actC == nil || expC.LessHilbert(*actC):
			result = append(result, *expC)
			expC = exp.Next()
		case actC.LessHilbert(*expC):
			actC = act.Next()
		default:
			expC = exp.Next()
			actC = act.Next()
		}
	}
	return result
}
