package pack

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing/quick"

	"github.com/tilezen/hilbert/pkg/coord"
)

// This contains test utility functions for testing in the pack package

func newValidCoordGenerator(maxZoomInclusive uint) func([]reflect.Value, *rand.Rand) {
	return func(values []reflect.Value, rand *rand.Rand) {
		if len(values) != 1 {
			panic(fmt.Errorf("unexpected number of values to gen: %d", len(values)))
		}
		zoom := uint(rand.Intn(int(maxZoomInclusive) + 1))
		dim := int64(1) << zoom
		c := coord.Coord{
			Z: zoom,
			X: uint(rand.Int63n(dim)),
			Y: uint(rand.Int63n(dim)),
		}
		values[0] = reflect.ValueOf(&c)
	}
}

func checkSymmetric(maxZoom uint, roundTrip func(coord.Coord) (coord.Coord, error)) error {
	cfg := quick.Config{
		MaxCount: 1000,
		Values:   newValidCoordGenerator(maxZoom),
	}
	f := func(c *coord.Coord) bool {
		unpacked, err := roundTrip(*c)
		if err != nil {
			panic(err)
		}
		return unpacked == *c
	}
	return quick.Check(f, &cfg)
}
