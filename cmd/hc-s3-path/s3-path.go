package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tilezen/hilbert/pkg/cmd"
	"github.com/tilezen/hilbert/pkg/coord"
	"github.com/tilezen/hilbert/pkg/s3"
)

func tilePath(prefix string, c coord.Coord, rawr, useHilbert bool) (string, error) {
	switch {
	case useHilbert:
		return s3.HilbertPathForCoord(prefix, c)
	case rawr:
		return s3.RawrTileHashPathForCoord(prefix, c), nil
	default:
		return s3.MetaTileHashPathForCoord(prefix, c), nil
	}
}

func main() {
	var bucket string
	var prefix string
	var rawr, useHilbert bool
	var tileStr string

	flag.StringVar(&bucket, "bucket", "", "s3 bucket")
	flag.StringVar(&prefix, "prefix", "", "s3 bucket prefix")
	flag.StringVar(&tileStr, "tile", "", "tile coordinate")
	flag.BoolVar(&rawr, "rawr", false, "generate rawr path")
	flag.BoolVar(&useHilbert, "hilbert", false, "key the path by the tile's Hilbert prefix instead of its md5 hash")

	flag.Parse()

	if prefix == "" || tileStr == "" {
		cmd.DieWithUsage()
	}

	c, err := coord.Decode(tileStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid tile %s: %s\n", tileStr, err)
		cmd.DieWithUsage()
	}

	path, err := tilePath(prefix, *c, rawr, useHilbert)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot build path for %s: %s\n", c, err)
		os.Exit(1)
	}

	if bucket != "" {
		fmt.Printf("s3://%s/%s\n", bucket, path)
	} else {
		fmt.Printf("%s\n", path)
	}
}
