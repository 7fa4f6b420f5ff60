package geo

import (
	gogeo "github.com/kellydunn/golang-geo"

	"kml2gpx/pkg/types"
)

const (
	// MileMetres converts the split interval for OSMAnd, which wants metres.
	MileMetres = 1609.34
	kmPerMile  = 1.60934
)

// SplitMark is one cumulative-distance marker along an output file's
// tracks.
type SplitMark struct {
	Miles float64
	Lat   float64
	Lon   float64
}

// DistanceMiles is the great-circle distance between two points.
func DistanceMiles(a, b types.Point) float64 {
	pa := gogeo.NewPoint(a.Lat, a.Lon)
	pb := gogeo.NewPoint(b.Lat, b.Lon)
	return pa.GreatCircleDistance(pb) / kmPerMile
}

// SplitMarks walks the tracks in output order and emits a marker each time
// the cumulative distance crosses a multiple of interval, interpolating
// the position along the crossing segment.
//
// By default mileage accumulates across every track in the file and never
// resets, which is exactly how OSMAnd treats a multi-track file's split
// interval. perTrack restarts the count at each track for consumers that
// want the corrected behaviour.
func SplitMarks(tracks []types.Track, interval float64, perTrack bool) []SplitMark {
	if interval <= 0 {
		return nil
	}
	var marks []SplitMark
	total := 0.0
	next := interval
	for _, t := range tracks {
		if perTrack {
			total = 0.0
			next = interval
		}
		for i := 1; i < len(t.Points); i++ {
			a := t.Points[i-1]
			b := t.Points[i]
			d := DistanceMiles(a, b)
			if d == 0 {
				continue
			}
			for total+d >= next {
				f := (next - total) / d
				marks = append(marks, SplitMark{
					Miles: next,
					Lat:   a.Lat + (b.Lat-a.Lat)*f,
					Lon:   a.Lon + (b.Lon-a.Lon)*f,
				})
				next += interval
			}
			total += d
		}
	}
	return marks
}
