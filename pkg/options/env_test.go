package options

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("KML2GPX_OPTS defaults", func() {
	AfterEach(func() {
		Layers = false
		Width = 14
		Transparency = "80"
		Split = 0.0
		SplitPerTrack = false
		IconMap = ""
		Ignore = "Untitled layer"
	})

	It("applies every option from the environment", func() {
		envDefaults("-layers -width 7 -transparency C0 -split 2.5 -split-per-track -icon-map icons.yml -ignore Scratch")
		Expect(Layers).To(BeTrue())
		Expect(Width).To(Equal(7))
		Expect(Transparency).To(Equal("C0"))
		Expect(Split).To(Equal(2.5))
		Expect(SplitPerTrack).To(BeTrue())
		Expect(IconMap).To(Equal("icons.yml"))
		Expect(Ignore).To(Equal("Scratch"))
	})

	It("leaves defaults alone when unset", func() {
		envDefaults("")
		Expect(Width).To(Equal(14))
		Expect(Split).To(BeZero())
		Expect(SplitPerTrack).To(BeFalse())
	})
})
