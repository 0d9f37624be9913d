package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tilezen/hilbert/pkg/cmd"
	"github.com/tilezen/hilbert/pkg/coord/gen"
	"github.com/tilezen/hilbert/pkg/coord/pack"
)

// writeTiles prints every tile yielded by g, one per line. With withIndex set
// each line also carries the tile's Hilbert index and packed u64 key.
func writeTiles(w io.Writer, g gen.Generator, withIndex bool) error {
	buf := bufio.NewWriter(w)
	for c := g.Next(); c != nil; c = g.Next() {
		var err error
		if withIndex {
			var packed uint64
			packed, err = pack.ToU64(*c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(buf, "%s\t%d\t%016x\n", c, c.MustHilbert(), packed)
		} else {
			_, err = fmt.Fprintln(buf, c)
		}
		if err != nil {
			return err
		}
	}
	return buf.Flush()
}

func main() {
	var minZoom, maxZoom uint
	var withIndex, verbose bool

	flag.UintVar(&minZoom, "min-zoom", 0, "Minimum zoom to list (inclusive).")
	flag.UintVar(&maxZoom, "max-zoom", 4, "Maximum zoom to list (inclusive).")
	flag.BoolVar(&withIndex, "index", false, "Also print the Hilbert index and packed u64 key of each tile.")
	flag.BoolVar(&verbose, "v", false, "verbose logging")

	flag.Parse()
	cmd.SetupLogging(verbose)

	if maxZoom < minZoom {
		fmt.Fprintf(os.Stderr, "Max zoom must be >= min zoom.\n")
		cmd.DieWithUsage()
	}
	if maxZoom > 29 {
		fmt.Fprintf(os.Stderr, "Max zoom must be <= 29.\n")
		cmd.DieWithUsage()
	}

	log.Debug().Uint("min_zoom", minZoom).Uint("max_zoom", maxZoom).Msg("listing tiles in hilbert order")
	if err := writeTiles(os.Stdout, gen.NewZoomRange(minZoom, maxZoom), withIndex); err != nil {
		log.Fatal().Err(err).Msg("cannot write tiles")
	}
}
