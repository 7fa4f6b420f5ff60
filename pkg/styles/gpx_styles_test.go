package styles_test

import (
	"regexp"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"kml2gpx/pkg/icons"
	"kml2gpx/pkg/styles"
	"kml2gpx/pkg/types"
)

var hexRGB = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

func testDoc() *types.Document {
	return &types.Document{
		Name: "Trip",
		Folders: []types.Folder{
			{
				Name: "Day 1",
				Tracks: []types.Track{
					{Name: "keeps colour", Color: "0F9D58"},
					{Name: "needs colour"},
					{Name: "bad colour", Color: "not-hex"},
				},
				Waypoints: []types.Waypoint{
					{Name: "camp", IconID: "1765", Color: "0288D1"},
					{Name: "camp plain", IconID: "1765"},
					{Name: "picnic", IconID: "1650", Color: "0288D1"},
					{Name: "mystery", IconID: "31337"},
				},
			},
		},
	}
}

var _ = Describe("TrackColor", func() {
	It("is deterministic", func() {
		for i := 0; i < 20; i++ {
			Expect(styles.TrackColor(i)).To(Equal(styles.TrackColor(i)))
		}
	})

	It("yields valid RGB hex values", func() {
		for i := 0; i < 10; i++ {
			Expect(styles.TrackColor(i)).To(MatchRegexp(hexRGB.String()))
		}
	})

	It("varies across adjacent tracks", func() {
		Expect(styles.TrackColor(0)).ToNot(Equal(styles.TrackColor(1)))
	})
})

var _ = Describe("Resolve", func() {
	var doc *types.Document

	BeforeEach(func() {
		doc = testDoc()
		styles.Resolve(doc, icons.Builtin())
	})

	Context("tracks", func() {
		It("preserves a usable source colour", func() {
			Expect(doc.Folders[0].Tracks[0].Color).To(Equal("0F9D58"))
		})

		It("assigns palette colours where the source has none", func() {
			Expect(doc.Folders[0].Tracks[1].Color).To(Equal(styles.TrackColor(1)))
		})

		It("replaces unusable source colours", func() {
			Expect(doc.Folders[0].Tracks[2].Color).To(Equal(styles.TrackColor(2)))
		})
	})

	Context("waypoints", func() {
		It("maps the icon ID", func() {
			w := doc.Folders[0].Waypoints[0]
			Expect(w.Icon).To(Equal("tourism_camp_site"))
			Expect(w.Shape).To(Equal("circle"))
		})

		It("uses the KML colour for KMLCOLOR entries", func() {
			Expect(doc.Folders[0].Waypoints[0].IconColor).To(Equal("0288D1"))
		})

		It("falls back to the default icon colour without a KML colour", func() {
			Expect(doc.Folders[0].Waypoints[1].IconColor).To(Equal(styles.DefaultIconColor))
		})

		It("keeps table colours for fixed entries", func() {
			Expect(doc.Folders[0].Waypoints[2].IconColor).To(Equal("eecc22"))
		})

		It("resolves unmapped icons to the fallback without aborting", func() {
			w := doc.Folders[0].Waypoints[3]
			Expect(w.Icon).To(Equal("special_symbol_question_mark"))
			Expect(w.IconColor).To(Equal("e044bb"))
			Expect(w.Shape).To(Equal("octagon"))
		})
	})
})
