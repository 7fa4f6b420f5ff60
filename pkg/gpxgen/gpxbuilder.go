package gpxgen

import (
	"encoding/xml"
	"fmt"
	"os"

	"kml2gpx/pkg/geo"
	"kml2gpx/pkg/options"
	"kml2gpx/pkg/styles"
	"kml2gpx/pkg/types"
)

// GPX is the output document, GPX 1.1 plus the OSMAnd extension tags.
// OSMAnd reads width, transparency, split and arrow settings from the
// file level <extensions> block only; per-track it honours just the
// colour. Track <desc> is ignored by the app but emitted anyway so the
// file stays self describing.
type GPX struct {
	XMLName  xml.Name  `xml:"gpx"`
	Version  string    `xml:"version,attr"`
	Creator  string    `xml:"creator,attr"`
	Xmlns    string    `xml:"xmlns,attr"`
	Metadata *Metadata `xml:"metadata,omitempty"`
	Wpts     []Wpt     `xml:"wpt"`
	Trks     []Trk     `xml:"trk"`
	Ext      *FileExt  `xml:"extensions,omitempty"`
}

type Metadata struct {
	Name string   `xml:"name,omitempty"`
	Desc string   `xml:"desc,omitempty"`
	Ext  *MetaExt `xml:"extensions,omitempty"`
}

// MetaExt carries the only description OSMAnd actually displays for an
// imported file.
type MetaExt struct {
	Desc string `xml:"desc,omitempty"`
}

type Wpt struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Ele  float64 `xml:"ele"`
	Name string  `xml:"name,omitempty"`
	Desc string  `xml:"desc,omitempty"`
	Ext  WptExt  `xml:"extensions"`
}

type WptExt struct {
	Icon       string `xml:"icon"`
	Background string `xml:"background"`
	Color      string `xml:"color"`
}

type Trk struct {
	Name string   `xml:"name,omitempty"`
	Desc string   `xml:"desc,omitempty"`
	Ext  TrkExt   `xml:"extensions"`
	Segs []TrkSeg `xml:"trkseg"`
}

// TrkExt colour is #TTRRGGBB, transparency byte first. The desc here is
// ignored by OSMAnd just like the track level one, but both stay in the
// file for anyone reading it.
type TrkExt struct {
	Desc  string `xml:"desc,omitempty"`
	Color string `xml:"color"`
}

type TrkSeg struct {
	Pts []TrkPt `xml:"trkpt"`
}

type TrkPt struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
	Ele float64 `xml:"ele"`
}

type FileExt struct {
	Width           int    `xml:"width"`
	ShowArrows      bool   `xml:"show_arrows"`
	ShowStartFinish bool   `xml:"show_start_finish"`
	SplitType       string `xml:"split_type"`
	SplitInterval   int    `xml:"split_interval,omitempty"`
}

// Generate writes the styled document, one GPX file by default or one per
// folder in layer mode, and returns the file names written. In layer mode
// a sanitised name collision aborts before the colliding file; earlier
// files stay on disk.
func Generate(doc *types.Document, outfn string) ([]string, error) {
	if !options.Layers {
		g := build(doc.Name, doc.Desc, doc.Folders)
		if err := writeGPX(g, outfn); err != nil {
			return nil, err
		}
		return []string{outfn}, nil
	}

	var written []string
	seen := make(map[string]string)
	for _, f := range doc.Folders {
		fn := GenGpxName(outfn, f.Name)
		if _, ok := seen[fn]; ok {
			return written, &types.DuplicateOutputNameError{Name: fn, Folder: f.Name}
		}
		seen[fn] = f.Name
		g := build(f.Name, doc.Desc, []types.Folder{f})
		if err := writeGPX(g, fn); err != nil {
			return written, err
		}
		written = append(written, fn)
	}
	return written, nil
}

func build(name, desc string, folders []types.Folder) *GPX {
	g := &GPX{
		Version: "1.1",
		Creator: "kml2gpx",
		Xmlns:   "http://www.topografix.com/GPX/1/1",
		Metadata: &Metadata{
			Name: name,
			Desc: desc,
		},
	}
	if desc != "" {
		g.Metadata.Ext = &MetaExt{Desc: desc}
	}

	var tracks []types.Track
	for _, f := range folders {
		for _, w := range f.Waypoints {
			g.Wpts = append(g.Wpts, Wpt{
				Lat:  w.Pos.Lat,
				Lon:  w.Pos.Lon,
				Ele:  w.Pos.Ele,
				Name: w.Name,
				Desc: w.Desc,
				Ext: WptExt{
					Icon:       w.Icon,
					Background: w.Shape,
					Color:      "#" + w.IconColor,
				},
			})
		}
		for _, t := range f.Tracks {
			trk := Trk{
				Name: t.Name,
				Desc: t.Desc,
				Ext: TrkExt{
					Desc:  t.Desc,
					Color: "#" + options.Transparency + t.Color,
				},
			}
			seg := TrkSeg{}
			for _, p := range t.Points {
				seg.Pts = append(seg.Pts, TrkPt{Lat: p.Lat, Lon: p.Lon, Ele: p.Ele})
			}
			trk.Segs = append(trk.Segs, seg)
			g.Trks = append(g.Trks, trk)
			tracks = append(tracks, t)
		}
	}

	ext := &FileExt{
		Width:     options.Width,
		SplitType: options.NoSplit,
	}
	if options.Split > 0 {
		ext.SplitType = options.SplitDist
		ext.SplitInterval = int(options.Split * geo.MileMetres)
		for _, m := range geo.SplitMarks(tracks, options.Split, options.SplitPerTrack) {
			g.Wpts = append(g.Wpts, Wpt{
				Lat:  m.Lat,
				Lon:  m.Lon,
				Name: fmt.Sprintf("%g mi", m.Miles),
				Ext: WptExt{
					Icon:       "special_number_0",
					Background: "circle",
					Color:      "#" + styles.DefaultIconColor,
				},
			})
		}
	}
	g.Ext = ext
	return g
}

func writeGPX(g *GPX, outfn string) error {
	out, err := xml.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	f, err := os.Create(outfn)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err = f.WriteString(xml.Header); err != nil {
		return err
	}
	if _, err = f.Write(out); err != nil {
		return err
	}
	_, err = f.WriteString("\n")
	return err
}
