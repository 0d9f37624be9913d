package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilezen/hilbert/pkg/hilbert"
)

const curvesYaml = `
curves:
  - name: cube
    dims: 3
    bits: 5
    points:
      - [5, 10, 20]
      - [0, 0, 0]
    codes: [7865]
  - name: plane
    dims: 2
    bits: 16
`

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(curvesYaml))
	require.NoError(t, err)
	require.Len(t, cfg.Curves, 2)

	cube := cfg.Curves[0]
	assert.Equal(t, "cube", cube.Name)
	assert.Equal(t, hilbert.Curve{Dims: 3, Bits: 5}, cube.Curve)
	assert.Equal(t, [][]uint32{{5, 10, 20}, {0, 0, 0}}, cube.Points)
	assert.Equal(t, []uint64{7865}, cube.Codes)

	assert.Equal(t, hilbert.Curve{Dims: 2, Bits: 16}, cfg.Curves[1].Curve)
	assert.Empty(t, cfg.Curves[1].Points)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"empty":         "curves: []\n",
		"unknown key":   "curves:\n  - name: a\n    dims: 2\n    bits: 2\n    colour: red\n",
		"no name":       "curves:\n  - dims: 2\n    bits: 2\n",
		"too wide":      "curves:\n  - name: a\n    dims: 3\n    bits: 22\n",
		"no bits":       "curves:\n  - name: a\n    dims: 3\n",
		"short point":   "curves:\n  - name: a\n    dims: 3\n    bits: 2\n    points: [[1, 2]]\n",
		"not yaml list": "curves: 3\n",
	}
	for name, doc := range cases {
		_, err := Decode(strings.NewReader(doc))
		assert.Error(t, err, name)
	}

	_, err := Decode(strings.NewReader("curves:\n  - name: a\n    dims: 3\n    bits: 22\n"))
	assert.ErrorIs(t, err, hilbert.ErrCodeOverflow)
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "curves")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "curves.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(curvesYaml), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Curves, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
