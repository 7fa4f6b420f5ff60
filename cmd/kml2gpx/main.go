package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/yookoala/realpath"

	"kml2gpx/pkg/gpxgen"
	"kml2gpx/pkg/icons"
	"kml2gpx/pkg/kmlreader"
	"kml2gpx/pkg/options"
	"kml2gpx/pkg/styles"
)

var GitCommit = "local"
var GitTag = "0.0.0"

func GetVersion() string {
	return fmt.Sprintf("%s %s commit:%s", filepath.Base(os.Args[0]), GitTag, GitCommit)
}

func main() {
	files := options.ParseCLI(GetVersion)
	if len(files) != 2 {
		options.Usage()
		os.Exit(1)
	}

	if err := options.Validate(); err != nil {
		log.Fatalf("kml2gpx: %v\n", err)
	}

	tbl := icons.Builtin()
	if options.IconMap != "" {
		var err error
		tbl, err = icons.Load(options.IconMap)
		if err != nil {
			log.Fatalf("kml2gpx: icon map: %v\n", err)
		}
	}

	doc, err := kmlreader.NewDocument(files[0])
	if err != nil {
		log.Fatalf("kml2gpx: %v\n", err)
	}

	styles.Resolve(doc, tbl)

	nf, nt, nw := doc.Counts()
	fmt.Printf("%-8.8s : %s\n", "Input", files[0])
	fmt.Printf("%-8.8s : %d\n", "Layers", nf)
	fmt.Printf("%-8.8s : %d\n", "Tracks", nt)
	fmt.Printf("%-8.8s : %d\n", "Waypts", nw)

	outs, err := gpxgen.Generate(doc, files[1])
	for _, o := range outs {
		show_output(o)
	}
	if err != nil {
		log.Fatalf("kml2gpx: %v\n", err)
	}
}

func show_output(outfn string) {
	if outfn != "" {
		rp, err := realpath.Realpath(outfn)
		if err != nil || rp == "" {
			rp = outfn
		}
		fmt.Printf("%-8.8s : %s\n", "Output", rp)
	}
}
