package hilbert

import (
	"fmt"
	"math/rand"
	"reflect"
)

// This contains test utility functions for testing in the hilbert package

type shapedAxes struct {
	bits uint
	axes Axes
}

func newShapedAxesGenerator(maxDims int, maxBits uint, maxTotal uint) func([]reflect.Value, *rand.Rand) {
	return func(values []reflect.Value, rand *rand.Rand) {
		if len(values) != 1 {
			panic(fmt.Errorf("unexpected number of values to gen: %d", len(values)))
		}
		n := rand.Intn(maxDims) + 1
		bits := uint(rand.Intn(int(maxBits))) + 1
		for uint(n)*bits > maxTotal {
			bits--
		}
		axes := make(Axes, n)
		for i := range axes {
			axes[i] = uint32(rand.Uint64() & (uint64(1)<<bits - 1))
		}
		values[0] = reflect.ValueOf(&shapedAxes{bits: bits, axes: axes})
	}
}

func manhattan(a, b Axes) uint64 {
	var d uint64
	for i := range a {
		if a[i] > b[i] {
			d += uint64(a[i] - b[i])
		} else {
			d += uint64(b[i] - a[i])
		}
	}
	return d
}
