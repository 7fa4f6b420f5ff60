package types

// Point is a single geographic position. Ele is metres above sea level,
// zero when the source KML omits it.
type Point struct {
	Lat float64
	Lon float64
	Ele float64
}

// Track is an ordered run of points from one KML LineString placemark.
// Color is a 6 hex digit RGB value without the leading '#'; it is empty
// until the style resolver has run.
type Track struct {
	Name   string
	Desc   string
	Color  string
	Points []Point
}

// Waypoint is one KML Point placemark. IconID and Color hold whatever the
// source styleUrl carried (Color may be empty). Icon, IconColor and Shape
// are filled in by the style resolver.
type Waypoint struct {
	Name      string
	Desc      string
	IconID    string
	Color     string
	Icon      string
	IconColor string
	Shape     string
	Pos       Point
}

// Folder is a named KML folder ("layer" in Google My Maps terms).
type Folder struct {
	Name      string
	Tracks    []Track
	Waypoints []Waypoint
}

// Document is the parsed source file.
type Document struct {
	Name    string
	Desc    string
	Folders []Folder
}

func (d *Document) Counts() (nf, nt, nw int) {
	nf = len(d.Folders)
	for _, f := range d.Folders {
		nt += len(f.Tracks)
		nw += len(f.Waypoints)
	}
	return nf, nt, nw
}
