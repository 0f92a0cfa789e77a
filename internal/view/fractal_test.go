package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stewi1014/fracview/internal/view"
)

var _ = Describe("Fractal", func() {
	DescribeTable("cycles through all three fractals from any entry point",
		func(start view.Fractal) {
			f := start
			seen := map[string]bool{}
			for i := 0; i < len(view.Fractals); i++ {
				f = f.Next()
				seen[f.String()] = true
			}
			Expect(f).To(Equal(start))
			Expect(seen).To(HaveLen(3))
		},
		Entry("mandelbrot1", view.Fractal(view.Mandelbrot{Class: 1})),
		Entry("mandelbrot2", view.Fractal(view.Mandelbrot{Class: 2})),
		Entry("julia", view.Fractal(view.Julia{})),
	)

	It("follows mandelbrot1, mandelbrot2, julia", func() {
		Expect(view.Mandelbrot{Class: 1}.Next()).To(Equal(view.Mandelbrot{Class: 2}))
		Expect(view.Mandelbrot{Class: 2}.Next()).To(Equal(view.Julia{}))
		Expect(view.Julia{}.Next()).To(Equal(view.Mandelbrot{Class: 1}))
	})

	It("re-enters the cycle from an unknown power class", func() {
		Expect(view.Mandelbrot{Class: 7}.Next()).To(Equal(view.Mandelbrot{Class: 1}))
	})

	It("tags each fractal for the shader", func() {
		Expect(view.Mandelbrot{Class: 1}.AlgType()).To(BeEquivalentTo(1))
		Expect(view.Mandelbrot{Class: 2}.AlgType()).To(BeEquivalentTo(2))
		Expect(view.Julia{}.AlgType()).To(BeEquivalentTo(3))
	})

	It("parses names", func() {
		f, err := view.ParseFractal("Julia")
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(view.Julia{}))

		f, err = view.ParseFractal("mandelbrot1")
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(view.Mandelbrot{Class: 1}))

		_, err = view.ParseFractal("burning-ship")
		Expect(err).To(HaveOccurred())
	})
})
