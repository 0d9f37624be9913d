package s3

import (
	"crypto/md5"
	"errors"
	"fmt"
	"strings"

	tzc "github.com/tilezen/hilbert/pkg/coord"
)

// specific logic around s3, eg understanding our tile paths and
// prefixes for different types of buckets

// PrefixLength is the number of characters in a key's leading hash or
// Hilbert prefix.
const PrefixLength = 5

// ParseCoordFromKey parses a coordinate from an s3 path. The last three
// path segments before the extension are taken as z/x/y.
func ParseCoordFromKey(key string) (*tzc.Coord, error) {
	if len(key) < 4 {
		return nil, errors.New("Too few characters")
	}
	extIdx := strings.LastIndexByte(key, '.')
	if extIdx < 0 {
		return nil, errors.New("Missing extension")
	}
	fields := strings.Split(key[:extIdx], "/")
	if len(fields) < 3 {
		return nil, errors.New("Missing fields")
	}
	return tzc.Decode(strings.Join(fields[len(fields)-3:], "/"))
}

// HashString returns the first PrefixLength characters of the md5 hash.
func HashString(s string) string {
	md5Hash := md5.Sum([]byte(s))
	return fmt.Sprintf("%x", md5Hash)[:PrefixLength]
}

func tilePath(coord tzc.Coord) string {
	return fmt.Sprintf("%d/%d/%d.zip", coord.Z, coord.X, coord.Y)
}

// MetaTileHashPathForCoord returns the hashed s3 path for metatiles. The md5
// prefix spreads tiles evenly over the bucket's key space.
func MetaTileHashPathForCoord(datePrefix string, coord tzc.Coord) string {
	pathToHash := tilePath(coord)
	return fmt.Sprintf("%s/%s/%s", HashString(pathToHash), datePrefix, pathToHash)
}

// RawrTileHashPathForCoord returns the hashed s3 path for rawr tiles.
func RawrTileHashPathForCoord(datePrefix string, coord tzc.Coord) string {
	return MetaTileHashPathForCoord(datePrefix, coord)
}

// HilbertPrefix returns the leading hex digits of the tile's zoom followed by
// its Hilbert index aligned to the top of the remaining 58 bits. The prefix
// is shared by every tile of the same zoom under one z7 ancestor, so listing
// a prefix returns a spatially compact block of tiles.
func HilbertPrefix(coord tzc.Coord) (string, error) {
	if coord.Z > 29 {
		return "", fmt.Errorf("cannot build hilbert prefix, z=%d > 29", coord.Z)
	}
	h, err := coord.Hilbert()
	if err != nil {
		return "", err
	}
	key := uint64(coord.Z)<<58 | h<<(58-2*coord.Z)
	return fmt.Sprintf("%016x", key)[:PrefixLength], nil
}

// HilbertPathForCoord returns the s3 path for a tile keyed by its Hilbert
// prefix instead of its md5 hash.
func HilbertPathForCoord(datePrefix string, coord tzc.Coord) (string, error) {
	prefix, err := HilbertPrefix(coord)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", prefix, datePrefix, tilePath(coord)), nil
}
