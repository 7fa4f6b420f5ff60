package options

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"kml2gpx/pkg/types"
)

const (
	MinWidth  = 1
	MaxWidth  = 24
	MaxSplit  = 100.0
	NoSplit   = "no_split"
	SplitDist = "distance"
)

var (
	Layers        bool    = false
	Width         int     = 14
	Transparency  string  = "80"
	Split         float64 = 0.0
	SplitPerTrack bool    = false
	IconMap       string
	Ignore        string = "Untitled layer"
)

func Usage() {
	flag.Usage()
}

// IgnoreList is the set of layer names dropped during parsing.
func IgnoreList() []string {
	var l []string
	for _, s := range strings.Split(Ignore, ",") {
		if s != "" {
			l = append(l, s)
		}
	}
	return l
}

// envDefaults applies KML2GPX_OPTS before the command line is parsed, so
// the environment supplies defaults and flags still win. Every option is
// mirrored here.
func envDefaults(defs string) {
	var parts []string
	for _, p := range strings.Split(defs, " ") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	envflags := flag.NewFlagSet("$KML2GPX_OPTS", flag.ExitOnError)
	layers := envflags.Bool("layers", Layers, "layers")
	width := envflags.Int("width", Width, "width")
	transp := envflags.String("transparency", Transparency, "transparency")
	split := envflags.Float64("split", Split, "split")
	splitpt := envflags.Bool("split-per-track", SplitPerTrack, "split-per-track")
	iconmap := envflags.String("icon-map", IconMap, "icon-map")
	ignore := envflags.String("ignore", Ignore, "ignore")
	envflags.Parse(parts)
	Layers = *layers
	Width = *width
	Transparency = *transp
	Split = *split
	SplitPerTrack = *splitpt
	IconMap = *iconmap
	Ignore = *ignore
}

func ParseCLI(gv func() string) []string {
	app := filepath.Base(os.Args[0])

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s [options] input.kml output.gpx\n", app)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nOSMAnd applies width and transparency to the whole imported file,\nnot per track; import the output with \"import as one track\".\n\n")
		fmt.Fprintln(os.Stderr, gv())
	}

	envDefaults(os.Getenv("KML2GPX_OPTS"))

	flag.BoolVar(&Layers, "layers", Layers, "Write one GPX file per KML layer (vice a single file)")
	flag.IntVar(&Width, "width", Width, "Track width for all tracks (1-24)")
	flag.StringVar(&Transparency, "transparency", Transparency, "Track transparency for all tracks, 2 hex digits (00 transparent, FF opaque)")
	flag.Float64Var(&Split, "split", Split, "Display distance splits along tracks, miles (0.0-100.0, 0 disables)")
	flag.BoolVar(&SplitPerTrack, "split-per-track", false, "Restart split mileage at each track start (vice cumulative per file)")
	flag.StringVar(&IconMap, "icon-map", "", "Optional YAML file overriding the builtin icon mapping")
	flag.StringVar(&Ignore, "ignore", Ignore, "Comma separated layer names to skip")

	flag.Parse()

	return flag.Args()
}

// Validate rejects out of range settings before any output is written.
func Validate() error {
	if Width < MinWidth || Width > MaxWidth {
		return &types.InvalidConfigurationError{
			Param: "width", Value: strconv.Itoa(Width),
			Reason: fmt.Sprintf("must be %d-%d", MinWidth, MaxWidth),
		}
	}
	if len(Transparency) != 2 {
		return &types.InvalidConfigurationError{
			Param: "transparency", Value: Transparency,
			Reason: "must be exactly 2 hex digits",
		}
	}
	if _, err := strconv.ParseUint(Transparency, 16, 8); err != nil {
		return &types.InvalidConfigurationError{
			Param: "transparency", Value: Transparency,
			Reason: "must be a hex byte (00-FF)",
		}
	}
	if Split < 0.0 || Split > MaxSplit {
		return &types.InvalidConfigurationError{
			Param: "split", Value: strconv.FormatFloat(Split, 'f', -1, 64),
			Reason: fmt.Sprintf("must be 0.0-%.1f miles", MaxSplit),
		}
	}
	return nil
}
