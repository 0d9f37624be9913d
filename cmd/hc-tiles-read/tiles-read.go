package main

import (
	"bufio"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/rs/zerolog/log"

	"github.com/tilezen/hilbert/pkg/cmd"
	"github.com/tilezen/hilbert/pkg/coord"
	"github.com/tilezen/hilbert/pkg/coord/cmp"
	"github.com/tilezen/hilbert/pkg/coord/gen"
	"github.com/tilezen/hilbert/pkg/util"
)

func listObjects(keysChan chan<- string, svc s3iface.S3API, bucket string, datePrefix string) error {
	defer close(keysChan)
	return svc.ListObjectsPages(&s3.ListObjectsInput{
		Bucket: &bucket,
		Prefix: &datePrefix,
	}, func(output *s3.ListObjectsOutput, lastPage bool) bool {
		for _, obj := range output.Contents {
			keysChan <- *obj.Key
		}
		return true
	})
}

// readCoords parses one z/x/y coordinate per line. Lines that don't parse
// are logged and skipped.
func readCoords(r io.Reader, key string) ([]coord.Coord, error) {
	var coords []coord.Coord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		c, err := coord.Decode(line)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Str("line", line).Msg("failed to parse tile coordinate")
			continue
		}
		coords = append(coords, *c)
	}
	return coords, scanner.Err()
}

func readKeys(keysChan <-chan string, coordsChan chan<- []coord.Coord, svc s3iface.S3API, bucket string, concurrency uint) {
	util.Concurrently(concurrency, func(worker uint) {
		for key := range keysChan {
			obj, err := svc.GetObject(&s3.GetObjectInput{
				Bucket: &bucket,
				Key:    aws.String(key),
			})
			if err != nil {
				log.Fatal().Err(err).Str("key", key).Msg("cannot get object")
			}
			coords, err := readCoords(obj.Body, key)
			if closeErr := obj.Body.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				log.Fatal().Err(err).Str("key", key).Msg("cannot read object")
			}
			log.Debug().Uint("worker", worker).Str("key", key).Int("coords", len(coords)).Msg("read listing")
			coordsChan <- coords
		}
	})
	close(coordsChan)
}

// collectCoords gathers the tiles within the zoom range into a set, which also
// drops duplicates across listings, and returns them in Hilbert order.
func collectCoords(coordsChan <-chan []coord.Coord, minZoom, maxZoom uint) []coord.Coord {
	cs := coord.NewCoordSet()
	skipped := 0
	for coords := range coordsChan {
		for _, c := range coords {
			if c.Z < minZoom || c.Z > maxZoom {
				skipped++
				continue
			}
			cs.Set(c, true)
		}
	}
	if skipped > 0 {
		log.Info().Int("skipped", skipped).Msg("ignored tiles outside the zoom range")
	}
	var result []coord.Coord
	cs.Each(minZoom, maxZoom, func(c coord.Coord) {
		result = append(result, c)
	})
	return result
}

func printCoords(w io.Writer, coords []coord.Coord, compressOutput bool) error {
	var output io.Writer = w
	var gz *gzip.Writer
	if compressOutput {
		gz = gzip.NewWriter(w)
		output = gz
	}

	// buffer output so we make fewer system calls.
	buf := bufio.NewWriter(output)
	for _, c := range coords {
		if _, err := fmt.Fprintln(buf, c); err != nil {
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if gz != nil {
		return gz.Close()
	}
	return nil
}

// run lists every listing object under datePrefix, and returns the tiles
// found in them, or with missing set, the tiles of the zoom range that were
// not found. Both are in zoom-major Hilbert order.
func run(svc s3iface.S3API, bucket, datePrefix string, concurrency, minZoom, maxZoom uint, missing bool) ([]coord.Coord, error) {
	keysChan := make(chan string, concurrency)
	coordsChan := make(chan []coord.Coord, concurrency)
	listErr := make(chan error, 1)

	go func() {
		listErr <- listObjects(keysChan, svc, bucket, datePrefix)
	}()
	go readKeys(keysChan, coordsChan, svc, bucket, concurrency)

	present := collectCoords(coordsChan, minZoom, maxZoom)
	if err := <-listErr; err != nil {
		return nil, fmt.Errorf("listing s3://%s/%s: %w", bucket, datePrefix, err)
	}
	log.Info().Int("present", len(present)).Msg("collected tiles")
	if !missing {
		return present, nil
	}
	return cmp.FindMissingTiles(gen.NewZoomRange(minZoom, maxZoom), gen.NewSlice(present)), nil
}

func main() {
	var bucket string
	var datePrefix string
	var concurrency, minZoom, maxZoom uint
	var region string
	var present, compressOutput, verbose bool

	flag.StringVar(&bucket, "bucket", "", "s3 bucket containing tile listings, one z/x/y per line")
	flag.StringVar(&datePrefix, "date-prefix", "", "date prefix")
	flag.UintVar(&concurrency, "concurrency", 16, "number of goroutines reading listings")
	flag.StringVar(&region, "region", "us-east-1", "region")
	flag.BoolVar(&present, "present", false, "If set, return tiles which are present rather than missing. The default (false) is to return tiles which are missing within the zoom range.")
	flag.UintVar(&minZoom, "min-zoom", 0, "Minimum zoom to check for missing tiles (inclusive). (default 0)")
	flag.UintVar(&maxZoom, "max-zoom", 14, "Maximum zoom to check for missing tiles (inclusive).")
	flag.BoolVar(&compressOutput, "compress-output", false, "If set, compress the output file with gzip.")
	flag.BoolVar(&verbose, "v", false, "verbose logging")

	flag.Parse()
	cmd.SetupLogging(verbose)

	if bucket == "" || datePrefix == "" || concurrency == 0 {
		cmd.DieWithUsage()
	}
	if maxZoom < minZoom {
		fmt.Fprintf(os.Stderr, "Max zoom must be >= min zoom.\n")
		cmd.DieWithUsage()
	}
	if maxZoom > coord.MaxSetZoom {
		fmt.Fprintf(os.Stderr, "Max zoom must be <= %d.\n", coord.MaxSetZoom)
		cmd.DieWithUsage()
	}

	sess := session.Must(session.NewSession(&aws.Config{
		Region:     &region,
		MaxRetries: aws.Int(10),
	}))
	svc := s3.New(sess)

	coords, err := run(svc, bucket, datePrefix, concurrency, minZoom, maxZoom, !present)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read tiles")
	}
	if err := printCoords(os.Stdout, coords, compressOutput); err != nil {
		log.Fatal().Err(err).Msg("cannot write tiles")
	}
}
