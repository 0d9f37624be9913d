package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tilezen/hilbert/pkg/cmd"
	"github.com/tilezen/hilbert/pkg/config"
	"github.com/tilezen/hilbert/pkg/hilbert"
)

func parsePoint(s string) ([]uint32, error) {
	fields := strings.Split(s, ",")
	point := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %#v: %s", f, err)
		}
		point[i] = uint32(v)
	}
	return point, nil
}

func joinValues(vals []uint32) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(s, ",")
}

// bitExpansion lists the bits of a transpose from most to least
// significant, one group of dims bits per plane.
func bitExpansion(t hilbert.Transpose, bits uint) string {
	groups := make([]string, 0, bits)
	for k := int(bits) - 1; k >= 0; k-- {
		var sb strings.Builder
		for _, v := range t {
			sb.WriteByte('0' + byte(v>>uint(k)&1))
		}
		groups = append(groups, sb.String())
	}
	return strings.Join(groups, " ")
}

// demo runs point through the full encode and decode path, printing every
// intermediate value.
func demo(w io.Writer, c hilbert.Curve, point []uint32) error {
	fmt.Fprintf(w, "Input coords = %s\n", joinValues(point))

	buf := append(hilbert.Axes(nil), point...)
	t, err := hilbert.AxesToTranspose(buf, c.Bits)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Hilbert coords = %s\n", joinValues(t))

	code, err := hilbert.InterleaveBits(t, c.Bits)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Hilbert integer = %d = %s\n", code, bitExpansion(t, c.Bits))

	if err := hilbert.UninterleaveBits(t, c.Bits, code); err != nil {
		return err
	}
	fmt.Fprintf(w, "Reconstructed Hilbert coords = %s\n", joinValues(t))

	axes, err := hilbert.TransposeToAxes(t, c.Bits)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Orig coords = %s\n", joinValues(axes))
	return nil
}

func runConfig(w io.Writer, cfg *config.Config) error {
	for _, cc := range cfg.Curves {
		fmt.Fprintf(w, "# %s (%s)\n", cc.Name, cc.Curve)
		for _, p := range cc.Points {
			if err := demo(w, cc.Curve, p); err != nil {
				return fmt.Errorf("curve %q point %v: %w", cc.Name, p, err)
			}
		}
		for _, code := range cc.Codes {
			axes, err := cc.Curve.Decode(code)
			if err != nil {
				return fmt.Errorf("curve %q code %d: %w", cc.Name, code, err)
			}
			fmt.Fprintf(w, "Hilbert integer %d = coords %s\n", code, joinValues(axes))
		}
	}
	return nil
}

func main() {
	var bits, dims uint
	var coords, yamlPath string
	var verbose bool

	flag.UintVar(&bits, "bits", 5, "bits per axis")
	flag.UintVar(&dims, "dims", 3, "number of dimensions")
	flag.StringVar(&coords, "coords", "5,10,20", "comma separated axis coordinates")
	flag.StringVar(&yamlPath, "yaml", "", "path to a curves yaml file; overrides the other flags")
	flag.BoolVar(&verbose, "v", false, "verbose logging")

	flag.Parse()
	cmd.SetupLogging(verbose)

	if yamlPath != "" {
		cfg, err := config.Load(yamlPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", yamlPath).Msg("cannot load curves")
		}
		log.Debug().Int("curves", len(cfg.Curves)).Msg("loaded config")
		if err := runConfig(os.Stdout, cfg); err != nil {
			log.Fatal().Err(err).Msg("demo failed")
		}
		return
	}

	c, err := hilbert.NewCurve(dims, bits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid curve: %s\n", err)
		cmd.DieWithUsage()
	}
	point, err := parsePoint(coords)
	if err != nil || uint(len(point)) != dims {
		fmt.Fprintf(os.Stderr, "Invalid coords %#v for %s\n", coords, c)
		cmd.DieWithUsage()
	}
	if err := demo(os.Stdout, c, point); err != nil {
		log.Fatal().Err(err).Stringer("curve", c).Msg("demo failed")
	}
}
