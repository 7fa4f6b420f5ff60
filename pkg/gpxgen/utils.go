package gpxgen

import (
	"path/filepath"
	"strings"
)

// GenGpxName derives a layer output file name from the base output path
// plus the folder name, e.g. trip.gpx + "Day 1" => trip-Day_1.gpx.
func GenGpxName(out string, layer string) string {
	dir := filepath.Dir(out)
	base := filepath.Base(out)
	ext := filepath.Ext(base)
	if len(ext) < len(base) {
		base = base[0 : len(base)-len(ext)]
	}
	return filepath.Join(dir, base+"-"+sanitize(layer)+".gpx")
}

// sanitize keeps file names portable; anything outside letters, digits,
// dot, dash and underscore becomes an underscore. Collisions introduced
// here are caught by Generate.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
