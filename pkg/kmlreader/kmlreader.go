package kmlreader

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Compufreak345/dbg"
	"github.com/carlmjohnson/requests"
	"golang.org/x/net/html/charset"

	"kml2gpx/pkg/icons"
	"kml2gpx/pkg/options"
	"kml2gpx/pkg/types"
)

const rTag = "kml2gpx/kmlreader"

type kmlRoot struct {
	XMLName  xml.Name    `xml:"kml"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name        string         `xml:"name"`
	Description string         `xml:"description"`
	Styles      []kmlStyle     `xml:"Style"`
	StyleMaps   []kmlStyleMap  `xml:"StyleMap"`
	Folders     []kmlFolder    `xml:"Folder"`
	Placemarks  []kmlPlacemark `xml:"Placemark"`
}

type kmlStyle struct {
	ID        string  `xml:"id,attr"`
	IconHref  string  `xml:"IconStyle>Icon>href"`
	LineColor string  `xml:"LineStyle>color"`
	LineWidth float64 `xml:"LineStyle>width"`
}

type kmlStyleMap struct {
	ID    string    `xml:"id,attr"`
	Pairs []kmlPair `xml:"Pair"`
}

type kmlPair struct {
	Key      string `xml:"key"`
	StyleURL string `xml:"styleUrl"`
}

type kmlFolder struct {
	Name       string         `xml:"name"`
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string       `xml:"name"`
	Description string       `xml:"description"`
	StyleURL    string       `xml:"styleUrl"`
	LineString  *kmlGeometry `xml:"LineString"`
	Point       *kmlGeometry `xml:"Point"`
}

type kmlGeometry struct {
	Coordinates string `xml:"coordinates"`
}

// styleIndex resolves styleUrl indirection declared in the document's
// style section (StyleMap normal pair -> Style).
type styleIndex struct {
	styles map[string]kmlStyle
	maps   map[string]string
}

func newStyleIndex(d *kmlDocument) *styleIndex {
	si := &styleIndex{
		styles: make(map[string]kmlStyle),
		maps:   make(map[string]string),
	}
	for _, s := range d.Styles {
		si.styles[s.ID] = s
	}
	for _, m := range d.StyleMaps {
		for _, p := range m.Pairs {
			if p.Key == "normal" {
				si.maps[m.ID] = strings.TrimPrefix(p.StyleURL, "#")
			}
		}
	}
	return si
}

func (si *styleIndex) style(ref string) (kmlStyle, bool) {
	ref = strings.TrimPrefix(ref, "#")
	if id, ok := si.maps[ref]; ok {
		ref = id
	}
	s, ok := si.styles[ref]
	return s, ok
}

// NewDocument parses a KML file into the pipeline model. path may also be
// an http(s) URL, e.g. a shared My Maps export link.
func NewDocument(path string) (*types.Document, error) {
	var rdr io.Reader
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		buf := &bytes.Buffer{}
		if err := requests.URL(path).ToBytesBuffer(buf).Fetch(context.Background()); err != nil {
			return nil, &types.MalformedInputError{Path: path, Err: err}
		}
		rdr = buf
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rdr = f
	}

	var root kmlRoot
	dec := xml.NewDecoder(rdr)
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&root); err != nil {
		return nil, &types.MalformedInputError{Path: path, Err: err}
	}

	si := newStyleIndex(&root.Document)
	doc := &types.Document{
		Name: root.Document.Name,
		Desc: strings.TrimSpace(root.Document.Description),
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	ignored := options.IgnoreList()
	addFolders(doc, root.Document.Folders, si, ignored)

	if len(doc.Folders) == 0 && len(root.Document.Placemarks) > 0 {
		// Single layer maps export without any <Folder>; treat the root
		// placemarks as one implicit layer.
		doc.Folders = append(doc.Folders, makeFolder(doc.Name, root.Document.Placemarks, si))
	}

	if len(doc.Folders) == 0 {
		return nil, &types.MalformedInputError{Path: path}
	}
	return doc, nil
}

func addFolders(doc *types.Document, folders []kmlFolder, si *styleIndex, ignored []string) {
	for _, kf := range folders {
		name := strings.TrimSpace(kf.Name)
		if skipLayer(name, ignored) {
			dbg.I(rTag, "skipping layer", name)
			continue
		}
		// A folder with no convertible geometry stays in the document;
		// layer mode writes an empty GPX for it rather than changing the
		// file count.
		doc.Folders = append(doc.Folders, makeFolder(name, kf.Placemarks, si))
		// Nested folders become layers of their own; a skipped folder
		// drops its children with it.
		addFolders(doc, kf.Folders, si, ignored)
	}
}

func skipLayer(name string, ignored []string) bool {
	for _, s := range ignored {
		if name == s {
			return true
		}
	}
	return false
}

func makeFolder(name string, pms []kmlPlacemark, si *styleIndex) types.Folder {
	f := types.Folder{Name: name}
	for _, pm := range pms {
		switch {
		case pm.Point != nil:
			pts := parseCoordinates(pm.Point.Coordinates)
			if len(pts) == 0 {
				continue
			}
			id, col := iconStyle(pm.StyleURL, si)
			f.Waypoints = append(f.Waypoints, types.Waypoint{
				Name:   strings.TrimSpace(pm.Name),
				Desc:   strings.TrimSpace(pm.Description),
				IconID: id,
				Color:  col,
				Pos:    pts[0],
			})
		case pm.LineString != nil:
			pts := parseCoordinates(pm.LineString.Coordinates)
			if len(pts) == 0 {
				continue
			}
			f.Tracks = append(f.Tracks, types.Track{
				Name:   strings.TrimSpace(pm.Name),
				Desc:   strings.TrimSpace(pm.Description),
				Color:  lineStyle(pm.StyleURL, si),
				Points: pts,
			})
		default:
			// polygons, overlays etc. are not convertible
		}
	}
	return f
}

// parseCoordinates splits a KML coordinate block, "lon,lat[,ele]" tuples
// separated by whitespace.
func parseCoordinates(s string) []types.Point {
	var pts []types.Point
	for _, tuple := range strings.Fields(s) {
		v := strings.Split(tuple, ",")
		if len(v) < 2 {
			continue
		}
		lon, err := strconv.ParseFloat(v[0], 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(v[1], 64)
		if err != nil {
			continue
		}
		p := types.Point{Lat: lat, Lon: lon}
		if len(v) > 2 {
			p.Ele, _ = strconv.ParseFloat(v[2], 64)
		}
		pts = append(pts, p)
	}
	return pts
}

// iconStyle extracts the icon ID and optional colour for a waypoint.
// My Maps encodes both in the styleUrl itself:
//
//	#icon-1577-DB4436-labelson   new style, with colour
//	#icon-1369                   old style, no colour
//
// Anything else goes through the declared style section, taking the icon
// ID from the Icon href.
func iconStyle(styleURL string, si *styleIndex) (id string, color string) {
	s := strings.TrimPrefix(styleURL, "#")
	parts := strings.Split(s, "-")
	if len(parts) > 1 && parts[0] == "icon" {
		id = parts[1]
		if len(parts) > 2 && isHexColor(parts[2]) {
			color = parts[2]
		}
		return id, color
	}
	if st, ok := si.style(s); ok {
		if hid := hrefIconID(st.IconHref); hid != "" {
			return hid, ""
		}
	}
	return icons.Unknown, ""
}

// lineStyle extracts a track colour, either from the My Maps token form
// (#line-0F9D58-1000, colour then KML width 1000-32000) or from a declared
// LineStyle colour.
func lineStyle(styleURL string, si *styleIndex) string {
	s := strings.TrimPrefix(styleURL, "#")
	parts := strings.Split(s, "-")
	if len(parts) > 1 && parts[0] == "line" && isHexColor(parts[1]) {
		return parts[1]
	}
	if st, ok := si.style(s); ok && st.LineColor != "" {
		return kmlColorToRGB(st.LineColor)
	}
	return ""
}

func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

// kmlColorToRGB converts KML's aabbggrr ordering to plain RRGGBB.
func kmlColorToRGB(s string) string {
	s = strings.TrimSpace(s)
	if len(s) != 8 {
		return ""
	}
	rgb := s[6:8] + s[4:6] + s[2:4]
	if !isHexColor(rgb) {
		return ""
	}
	return rgb
}

// hrefIconID pulls the icon number out of a raw icon URL; both
// .../stock/503-wht-blank.png and .../icon-61.png yield their number.
func hrefIconID(href string) string {
	base := href
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	i := strings.IndexFunc(base, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return ""
	}
	j := i
	for j < len(base) && base[j] >= '0' && base[j] <= '9' {
		j++
	}
	return base[i:j]
}
