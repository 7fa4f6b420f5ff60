package icons_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"kml2gpx/pkg/icons"
)

var _ = Describe("Table", func() {

	Describe("Lookup", func() {
		Context("known icon ID", func() {
			It("maps to the OSMAnd assignment", func() {
				w, ok := icons.Builtin().Lookup("1765")
				Expect(ok).To(BeTrue())
				Expect(w.Icon).To(Equal("tourism_camp_site"))
				Expect(w.Color).To(Equal(icons.KMLColor))
				Expect(w.Shape).To(Equal("circle"))
			})
		})

		Context("unmapped icon ID", func() {
			It("falls back to the unknown entry without error", func() {
				w, ok := icons.Builtin().Lookup("31337")
				Expect(ok).To(BeFalse())
				Expect(w.Icon).To(Equal("special_symbol_question_mark"))
				Expect(w.Shape).To(Equal("octagon"))
			})
		})
	})

	Describe("Builtin", func() {
		It("returns an isolated copy", func() {
			a := icons.Builtin()
			a["1765"] = icons.Waypt{Icon: "mutated"}
			b := icons.Builtin()
			Expect(b["1765"].Icon).To(Equal("tourism_camp_site"))
		})
	})

	Describe("Load", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "icons")
			Expect(err).ToNot(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(dir)
		})

		It("merges overrides over the builtin table", func() {
			fn := filepath.Join(dir, "over.yaml")
			y := `"31337":
  icon: special_star
  color: KMLCOLOR
  shape: circle
"1765":
  icon: tourism_camp_pitch
  color: "10c0f0"
  shape: square
`
			Expect(os.WriteFile(fn, []byte(y), 0644)).To(Succeed())
			t, err := icons.Load(fn)
			Expect(err).ToNot(HaveOccurred())

			w, ok := t.Lookup("31337")
			Expect(ok).To(BeTrue())
			Expect(w.Icon).To(Equal("special_star"))

			w, _ = t.Lookup("1765")
			Expect(w.Icon).To(Equal("tourism_camp_pitch"))
			Expect(w.Shape).To(Equal("square"))

			// untouched entries survive the merge
			w, ok = t.Lookup("1739")
			Expect(ok).To(BeTrue())
			Expect(w.Icon).To(Equal("special_number_0"))
		})

		It("rejects unreadable files", func() {
			_, err := icons.Load(filepath.Join(dir, "absent.yaml"))
			Expect(err).To(HaveOccurred())
		})

		It("rejects invalid YAML", func() {
			fn := filepath.Join(dir, "bad.yaml")
			Expect(os.WriteFile(fn, []byte(":\n\t- nope"), 0644)).To(Succeed())
			_, err := icons.Load(fn)
			Expect(err).To(HaveOccurred())
		})
	})
})
