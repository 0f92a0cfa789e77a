package view_test

import (
	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stewi1014/fracview/internal/view"
)

var _ = Describe("State", func() {
	var s *view.State

	BeforeEach(func() {
		s = view.New(view.DefaultOptions())
	})

	It("starts at the defaults", func() {
		Expect(s.Zoom).To(Equal(1.0))
		Expect(s.Offset).To(Equal(mgl64.Vec2{}))
		Expect(s.Precision).To(BeEquivalentTo(50))
		Expect(s.Color).To(BeEquivalentTo(1))
		Expect(s.Fractal).To(Equal(view.Mandelbrot{Class: 2}))
		Expect(s.Automate).To(BeTrue())
		Expect(s.Compute).To(Equal(view.GPU))
		Expect(s.Power).To(BeEquivalentTo(view.MinPower))
	})

	Describe("zoom", func() {
		It("doubles on every zoom in", func() {
			for i := 0; i < 20; i++ {
				before := s.Zoom
				Expect(s.Apply(view.ZoomIn)).To(BeTrue())
				Expect(s.Zoom).To(Equal(before * 2))
			}
		})

		It("never drops below 1", func() {
			for i := 0; i < 5; i++ {
				s.ZoomIn()
			}
			for i := 0; i < 50; i++ {
				s.Apply(view.ZoomOut)
				Expect(s.Zoom).To(BeNumerically(">=", 1.0))
			}
			Expect(s.Zoom).To(Equal(1.0))
		})

		It("is a no-op at the floor", func() {
			Expect(s.Apply(view.ZoomOut)).To(BeFalse())
			Expect(s.Apply(view.ZoomOut)).To(BeFalse())
			Expect(s.Zoom).To(Equal(1.0))
		})

		It("removes a third of the zoom by default", func() {
			s.ZoomIn()
			s.ZoomIn()
			Expect(s.Apply(view.ZoomOut)).To(BeTrue())
			Expect(s.Zoom).To(BeNumerically("~", 4-4.0/3, 1e-12))
		})

		It("honours a configured divisor", func() {
			opts := view.DefaultOptions()
			opts.ZoomOutDivisor = 2
			s = view.New(opts)
			s.ZoomIn()
			s.ZoomIn()
			s.ZoomOut()
			Expect(s.Zoom).To(Equal(2.0))
		})
	})

	Describe("pan", func() {
		DescribeTable("step shrinks as 1/zoom",
			func(zoom float64) {
				s.Zoom = zoom
				Expect(s.PanStep()).To(BeNumerically("~", 1/zoom, 1e-12))

				s.Apply(view.PanRight)
				s.Apply(view.PanUp)
				Expect(s.Offset.X()).To(BeNumerically("~", 1/zoom, 1e-12))
				Expect(s.Offset.Y()).To(BeNumerically("~", 1/zoom, 1e-12))

				s.Apply(view.PanLeft)
				s.Apply(view.PanDown)
				Expect(s.Offset.X()).To(BeNumerically("~", 0, 1e-12))
				Expect(s.Offset.Y()).To(BeNumerically("~", 0, 1e-12))
			},
			Entry("zoom 1", 1.0),
			Entry("zoom 2", 2.0),
			Entry("zoom 4", 4.0),
			Entry("zoom 100", 100.0),
		)

		DescribeTable("step shrinks as step/zoom² when configured",
			func(zoom float64) {
				opts := view.DefaultOptions()
				opts.PanScaling = view.InverseSquare
				opts.PanStep = 0.1
				s = view.New(opts)
				s.Zoom = zoom
				Expect(s.PanStep()).To(BeNumerically("~", 0.1/(zoom*zoom), 1e-15))
			},
			Entry("zoom 1", 1.0),
			Entry("zoom 2", 2.0),
			Entry("zoom 4", 4.0),
			Entry("zoom 100", 100.0),
		)

		It("takes smaller steps at higher zoom", func() {
			steps := []float64{}
			for _, z := range []float64{1, 2, 4, 100} {
				s.Zoom = z
				steps = append(steps, s.PanStep())
			}
			for i := 1; i < len(steps); i++ {
				Expect(steps[i]).To(BeNumerically("<", steps[i-1]))
			}
		})
	})

	Describe("precision", func() {
		It("moves in steps of 10 and stops at the lower bound", func() {
			expected := []int32{40, 30, 20, 20, 20}
			for _, want := range expected {
				s.Apply(view.PrecisionDown)
				Expect(s.Precision).To(Equal(want))
			}
			Expect(s.Apply(view.PrecisionDown)).To(BeFalse())
		})

		It("stops at the upper bound", func() {
			for i := 0; i < 1000; i++ {
				s.Apply(view.PrecisionUp)
				Expect(s.Precision).To(BeNumerically("<=", 5000))
				Expect(s.Precision).To(BeNumerically(">=", 20))
			}
			Expect(s.Precision).To(BeEquivalentTo(5000))
			Expect(s.Apply(view.PrecisionUp)).To(BeFalse())
		})

		It("clamps to a lower configured ceiling", func() {
			opts := view.DefaultOptions()
			opts.PrecisionMax = 1000
			s = view.New(opts)
			for i := 0; i < 200; i++ {
				s.IncreasePrecision()
			}
			Expect(s.Precision).To(BeEquivalentTo(1000))
		})
	})

	Describe("colour", func() {
		It("cycles through every scheme from any start", func() {
			for start := int32(1); start <= view.Colors; start++ {
				s.Color = start
				seen := []int32{}
				for i := 0; i < view.Colors; i++ {
					s.Apply(view.NextColor)
					seen = append(seen, s.Color)
				}
				Expect(s.Color).To(Equal(start))
				Expect(seen).To(ConsistOf(int32(1), int32(2), int32(3), int32(4), int32(5), int32(6)))
			}
		})

		It("wraps 6 to 1", func() {
			s.Color = 6
			s.NextColor()
			Expect(s.Color).To(BeEquivalentTo(1))
		})
	})

	It("returns to the same time feed after toggling automation twice", func() {
		before := s.Automate
		s.Apply(view.ToggleAutomation)
		Expect(s.Automate).NotTo(Equal(before))
		s.Apply(view.ToggleAutomation)
		Expect(s.Automate).To(Equal(before))
	})

	It("flips the compute mode", func() {
		s.Apply(view.ToggleCompute)
		Expect(s.Compute).To(Equal(view.CPU))
		s.Apply(view.ToggleCompute)
		Expect(s.Compute).To(Equal(view.GPU))
	})

	It("keeps the power parameter at or above 3", func() {
		Expect(s.Apply(view.PowerDown)).To(BeFalse())
		Expect(s.Apply(view.PowerUp)).To(BeTrue())
		Expect(s.Power).To(BeEquivalentTo(4))
		for i := 0; i < 100; i++ {
			s.Apply(view.PowerUp)
		}
		Expect(s.Power).To(BeEquivalentTo(view.MaxPower))
	})

	It("resets to the startup values", func() {
		s.ZoomIn()
		s.Pan(1, 1)
		s.NextColor()
		s.NextFractal()
		Expect(s.Apply(view.Reset)).To(BeTrue())
		Expect(s.Zoom).To(Equal(1.0))
		Expect(s.Offset).To(Equal(mgl64.Vec2{}))
		Expect(s.Color).To(BeEquivalentTo(1))
		Expect(s.Fractal).To(Equal(view.Mandelbrot{Class: 2}))
		Expect(s.Apply(view.Reset)).To(BeFalse())
	})

	It("runs the start-to-finish scenario", func() {
		s.Apply(view.ZoomIn)
		s.Apply(view.ZoomIn)
		Expect(s.Zoom).To(Equal(4.0))

		for i := 0; i < 5; i++ {
			s.Apply(view.PrecisionDown)
		}
		Expect(s.Precision).To(BeEquivalentTo(20))

		for i := 0; i < 6; i++ {
			s.Apply(view.NextColor)
		}
		Expect(s.Color).To(BeEquivalentTo(1))
	})

	It("ignores actions it does not own", func() {
		Expect(s.Apply(view.None)).To(BeFalse())
		Expect(s.Apply(view.Quit)).To(BeFalse())
	})
})
