package options_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"kml2gpx/pkg/options"
	"kml2gpx/pkg/types"
)

var _ = Describe("Validate", func() {

	BeforeEach(func() {
		options.Width = 14
		options.Transparency = "80"
		options.Split = 0.0
	})

	It("accepts the defaults", func() {
		Expect(options.Validate()).To(Succeed())
	})

	It("accepts the range limits", func() {
		options.Width = 1
		Expect(options.Validate()).To(Succeed())
		options.Width = 24
		Expect(options.Validate()).To(Succeed())
		options.Transparency = "FF"
		Expect(options.Validate()).To(Succeed())
		options.Split = 100.0
		Expect(options.Validate()).To(Succeed())
	})

	Context("width out of range", func() {
		It("fails with InvalidConfiguration", func() {
			var ice *types.InvalidConfigurationError
			options.Width = 0
			err := options.Validate()
			Expect(errors.As(err, &ice)).To(BeTrue())
			Expect(ice.Param).To(Equal("width"))

			options.Width = 25
			Expect(options.Validate()).To(HaveOccurred())
		})
	})

	Context("transparency not a hex byte", func() {
		It("fails with InvalidConfiguration", func() {
			var ice *types.InvalidConfigurationError
			for _, t := range []string{"8", "080", "zz", ""} {
				options.Transparency = t
				err := options.Validate()
				Expect(errors.As(err, &ice)).To(BeTrue(), "transparency %q", t)
				Expect(ice.Param).To(Equal("transparency"))
			}
		})
	})

	Context("split interval out of range", func() {
		It("fails with InvalidConfiguration", func() {
			var ice *types.InvalidConfigurationError
			options.Split = 100.5
			err := options.Validate()
			Expect(errors.As(err, &ice)).To(BeTrue())
			Expect(ice.Param).To(Equal("split"))

			options.Split = -1.0
			Expect(options.Validate()).To(HaveOccurred())
		})
	})
})

var _ = Describe("IgnoreList", func() {
	It("defaults to the Untitled layer", func() {
		Expect(options.IgnoreList()).To(ConsistOf("Untitled layer"))
	})

	It("splits comma separated names", func() {
		options.Ignore = "Scratch,Untitled layer"
		defer func() { options.Ignore = "Untitled layer" }()
		Expect(options.IgnoreList()).To(ConsistOf("Scratch", "Untitled layer"))
	})
})
