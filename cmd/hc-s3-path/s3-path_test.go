package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilezen/hilbert/pkg/coord"
)

func TestTilePath(t *testing.T) {
	c := coord.Coord{Z: 10, X: 941, Y: 1011}

	p, err := tilePath("20240101", c, false, false)
	require.NoError(t, err)
	assert.Equal(t, "00018/20240101/10/941/1011.zip", p)

	p, err = tilePath("20240101", c, true, true)
	require.NoError(t, err)
	assert.Equal(t, "2aa67/20240101/10/941/1011.zip", p)

	_, err = tilePath("20240101", coord.Coord{Z: 31}, false, true)
	assert.Error(t, err)
}
