package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/interact"
	"github.com/san-kum/orrery/internal/sim"
)

const frame = 1.0 / 60

var _ = Describe("Simulation", func() {
	var s *sim.Simulation

	BeforeEach(func() {
		s = sim.New(config.DefaultSettings(), nil)
	})

	It("starts centered, running at 1x with no follow target", func() {
		Expect(s.Camera.PanX).To(Equal(600.0))
		Expect(s.Camera.PanY).To(Equal(400.0))
		Expect(s.Clock.TimeScale).To(Equal(1.0))
		Expect(s.Clock.Paused).To(BeFalse())
		Expect(s.Followed()).To(BeNil())
		Expect(s.Stars).To(HaveLen(config.DefaultStars))
		Expect(s.Status()).To(Equal([]string{"Speed: 1.0x", "Scale: 1.00", "Running", "Free view"}))
	})

	It("advances every body by its angular speed times the time scale", func() {
		s.Update(frame, []interact.Event{interact.Key(interact.KeyUp)})
		for _, b := range s.System.Bodies {
			start := float64(s.System.Index(b.Name)) * 2 * math.Pi / float64(s.System.Len())
			Expect(b.Angle).To(BeNumerically("~", start+b.AngularSpeed*2*frame, 1e-12))
		}
		Expect(s.Time).To(BeNumerically("~", 2*frame, 1e-12))
		Expect(s.Frames).To(Equal(1))
	})

	Context("while paused", func() {
		BeforeEach(func() {
			s.Update(frame, []interact.Event{interact.Key(interact.KeySpace), interact.Key(interact.KeyPlus)})
		})

		It("freezes the bodies but keeps animating the zoom", func() {
			angles := s.System.Angles()
			scale := s.Camera.Scale
			for i := 0; i < 30; i++ {
				s.Update(frame, nil)
			}
			Expect(s.System.Angles()).To(Equal(angles))
			Expect(s.Camera.Scale).To(BeNumerically(">", scale))
			Expect(s.Camera.Scale).To(BeNumerically("<=", s.Camera.Target))
			Expect(s.Status()[2]).To(Equal("Paused"))
		})

		It("keeps the followed body centered", func() {
			s.Update(frame, []interact.Event{interact.Key(interact.KeyE)})
			for i := 0; i < 10; i++ {
				s.Update(frame, nil)
				x, y := s.Camera.WorldToScreen(s.Followed().Position())
				Expect(x).To(BeNumerically("~", 600, 1e-9))
				Expect(y).To(BeNumerically("~", 400, 1e-9))
			}
		})
	})

	It("keeps a followed body centered during the zoom animation", func() {
		s.Update(frame, []interact.Event{interact.Key(interact.KeyE)})
		Expect(s.Followed().Name).To(Equal("Earth"))
		Expect(s.Camera.Target).To(Equal(camera.FollowScale))
		for i := 0; i < 120; i++ {
			s.Update(frame, nil)
			x, y := s.Camera.WorldToScreen(s.Followed().Position())
			Expect(x).To(BeNumerically("~", 600, 1e-9))
			Expect(y).To(BeNumerically("~", 400, 1e-9))
		}
		Expect(s.Camera.Scale).To(Equal(camera.FollowScale))
		Expect(s.Status()[3]).To(Equal("Following: Earth"))
	})

	It("returns to the reset view when follow is toggled twice", func() {
		s.Update(frame, []interact.Event{interact.Key(interact.KeyE)})
		s.Update(frame, nil)
		s.Update(frame, []interact.Event{interact.Key(interact.KeyE)})
		Expect(s.Followed()).To(BeNil())
		Expect(s.Camera.PanX).To(Equal(600.0))
		Expect(s.Camera.PanY).To(Equal(400.0))
		Expect(s.Camera.Target).To(Equal(1.0))
	})

	It("drops a follow target that does not name a body", func() {
		s.Camera.Follow(42)
		s.Update(frame, nil)
		_, ok := s.Camera.Following()
		Expect(ok).To(BeFalse())
	})

	It("uses time-normalized smoothing when configured", func() {
		cfg := config.DefaultSettings()
		cfg.Smoothing = config.SmoothingTime
		s = sim.New(cfg, nil)
		Expect(s.Camera.Smoothing).To(Equal(camera.SmoothPerSecond))
	})
})
