package styles

import (
	"fmt"

	"github.com/Compufreak345/dbg"
	"github.com/mazznoer/colorgrad"
	"github.com/mazznoer/csscolorparser"

	"kml2gpx/pkg/icons"
	"kml2gpx/pkg/types"
)

const sTag = "kml2gpx/styles"

const (
	// Colours OSMAnd shows for tracks and icons that carry none in the KML.
	DefaultTrackColor = "3AE63A" // kelly green
	DefaultIconColor  = "DB4436" // rusty red

	paletteSize = 10
)

// palette holds RGB hex values sampled once from a rainbow gradient, so
// track n always gets the same colour on every run.
var palette []string

func init() {
	grad := colorgrad.Rainbow()
	for i := 0; i < paletteSize; i++ {
		c := grad.At(float64(i) / float64(paletteSize))
		r, g, b, _ := c.RGBA()
		palette = append(palette, fmt.Sprintf("%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8)))
	}
}

// TrackColor returns the palette colour for the n-th track of an output.
func TrackColor(n int) string {
	return palette[n%paletteSize]
}

func validColor(c string) bool {
	if c == "" {
		return false
	}
	_, err := csscolorparser.Parse("#" + c)
	return err == nil
}

// Resolve attaches the output styling to every track and waypoint: a
// per-track colour (source value when usable, palette otherwise) and the
// mapped OSMAnd icon assignment for waypoints. Width and transparency stay
// file level and are applied by the writer; OSMAnd does not honour them
// per track.
func Resolve(doc *types.Document, tbl icons.Table) {
	nt := 0
	for fi := range doc.Folders {
		f := &doc.Folders[fi]
		for ti := range f.Tracks {
			t := &f.Tracks[ti]
			if !validColor(t.Color) {
				t.Color = TrackColor(nt)
			}
			nt++
		}
		for wi := range f.Waypoints {
			w := &f.Waypoints[wi]
			wp, ok := tbl.Lookup(w.IconID)
			if !ok {
				dbg.W(sTag, "no icon mapping for", w.IconID, "falling back to", wp.Icon, "for waypoint", w.Name)
			}
			w.Icon = wp.Icon
			w.Shape = wp.Shape
			if wp.Color == icons.KMLColor {
				if validColor(w.Color) {
					w.IconColor = w.Color
				} else {
					w.IconColor = DefaultIconColor
				}
			} else {
				w.IconColor = wp.Color
			}
		}
	}
}
