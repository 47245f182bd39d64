package interact_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/interact"
	"github.com/san-kum/orrery/internal/orbit"
)

var _ = Describe("Controller", func() {
	var (
		clk  *clock.Clock
		cam  *camera.Camera
		sys  *orbit.System
		ctrl *interact.Controller
	)

	clickOn := func(a interact.Action) interact.Event {
		b := ctrl.Button(a)
		Expect(b).NotTo(BeNil())
		return interact.Click(b.Rect.Center())
	}

	BeforeEach(func() {
		clk = clock.New()
		cam = camera.New(600, 400)
		sys = orbit.NewSystem(config.DefaultSettings())
		ctrl = interact.New(clk, cam, sys, "Earth", nil)
	})

	Describe("resolving events", func() {
		It("maps every button to its action", func() {
			for _, b := range ctrl.Buttons {
				a, ok := ctrl.Resolve(interact.Click(b.Rect.Center()))
				Expect(ok).To(BeTrue())
				Expect(a).To(Equal(b.Action))
			}
		})

		It("ignores clicks outside the toolbar", func() {
			_, ok := ctrl.Handle(interact.Click(600, 400))
			Expect(ok).To(BeFalse())
			_, ok = ctrl.Handle(interact.Click(115, 30))
			Expect(ok).To(BeFalse())
		})

		It("ignores unbound keys", func() {
			a, ok := ctrl.Handle(interact.Key("x"))
			Expect(ok).To(BeFalse())
			Expect(a).To(Equal(interact.ActionNone))
		})

		DescribeTable("binds keys",
			func(key string, want interact.Action) {
				a, ok := ctrl.Resolve(interact.Key(key))
				Expect(ok).To(BeTrue())
				Expect(a).To(Equal(want))
			},
			Entry("space pauses", interact.KeySpace, interact.ActionTogglePause),
			Entry("plus zooms in", interact.KeyPlus, interact.ActionZoomIn),
			Entry("equals zooms in", interact.KeyEqual, interact.ActionZoomIn),
			Entry("minus zooms out", interact.KeyMinus, interact.ActionZoomOut),
			Entry("up speeds up", interact.KeyUp, interact.ActionSpeedUp),
			Entry("down slows down", interact.KeyDown, interact.ActionSpeedDown),
			Entry("r resets", interact.KeyR, interact.ActionResetView),
			Entry("e follows", interact.KeyE, interact.ActionFollow),
		)
	})

	Describe("pause", func() {
		It("toggles and relabels the pause button", func() {
			ctrl.Handle(clickOn(interact.ActionTogglePause))
			Expect(clk.Paused).To(BeTrue())
			Expect(ctrl.Button(interact.ActionTogglePause).Label).To(Equal("Start"))

			ctrl.Handle(interact.Key(interact.KeySpace))
			Expect(clk.Paused).To(BeFalse())
			Expect(ctrl.Button(interact.ActionTogglePause).Label).To(Equal("Pause"))
		})
	})

	Describe("speed", func() {
		It("steps from 1 to 2", func() {
			ctrl.Handle(interact.Key(interact.KeyUp))
			Expect(clk.TimeScale).To(Equal(2.0))
		})

		It("holds at the slowest level", func() {
			for i := 0; i < 5; i++ {
				ctrl.Handle(clickOn(interact.ActionSpeedDown))
			}
			Expect(clk.TimeScale).To(Equal(0.1))
		})
	})

	Describe("zoom", func() {
		It("zooms out once and then holds", func() {
			ctrl.Handle(clickOn(interact.ActionZoomOut))
			Expect(cam.Target).To(Equal(0.5))
			ctrl.Handle(clickOn(interact.ActionZoomOut))
			Expect(cam.Target).To(Equal(0.5))
		})

		It("zooms in to the largest level and holds", func() {
			for i := 0; i < 8; i++ {
				ctrl.Handle(interact.Key(interact.KeyEqual))
			}
			Expect(cam.Target).To(Equal(8.0))
		})
	})

	Describe("follow", func() {
		It("follows Earth at double zoom, then releases on the second press", func() {
			earth := sys.Index("Earth")
			ctrl.Handle(clickOn(interact.ActionFollow))
			i, ok := cam.Following()
			Expect(ok).To(BeTrue())
			Expect(i).To(Equal(earth))
			Expect(cam.Target).To(Equal(camera.FollowScale))

			cam.Track(sys.Body(earth).Position())
			ctrl.Handle(interact.Key(interact.KeyE))
			_, ok = cam.Following()
			Expect(ok).To(BeFalse())
			Expect(cam.Target).To(Equal(1.0))
			Expect(cam.PanX).To(Equal(600.0))
			Expect(cam.PanY).To(Equal(400.0))
		})

		It("toggles an arbitrary body index", func() {
			ctrl.ToggleFollowIndex(2)
			i, ok := cam.Following()
			Expect(ok).To(BeTrue())
			Expect(i).To(Equal(2))
			Expect(cam.Target).To(Equal(2.0))

			ctrl.ToggleFollowIndex(2)
			_, ok = cam.Following()
			Expect(ok).To(BeFalse())
			Expect(cam.Target).To(Equal(1.0))
		})

		It("switches targets instead of releasing when another body is followed", func() {
			ctrl.ToggleFollowIndex(0)
			ctrl.Handle(interact.Key(interact.KeyE))
			i, ok := cam.Following()
			Expect(ok).To(BeTrue())
			Expect(i).To(Equal(sys.Index("Earth")))
		})

		It("does nothing when the follow body does not exist", func() {
			ctrl = interact.New(clk, cam, sys, "Pluto", nil)
			Expect(ctrl.Button(interact.ActionFollow).Label).To(Equal("Follow Pluto"))
			_, ok := ctrl.Handle(interact.Key(interact.KeyE))
			Expect(ok).To(BeFalse())
			_, following := cam.Following()
			Expect(following).To(BeFalse())
			Expect(cam.Target).To(Equal(1.0))
		})
	})

	Describe("reset", func() {
		It("restores pan, target scale and follow", func() {
			ctrl.Handle(interact.Key(interact.KeyE))
			ctrl.Handle(interact.Key(interact.KeyPlus))
			cam.Track(100, 100)

			ctrl.Handle(clickOn(interact.ActionResetView))
			_, ok := cam.Following()
			Expect(ok).To(BeFalse())
			Expect(cam.Target).To(Equal(1.0))
			Expect(cam.PanX).To(Equal(600.0))
			Expect(cam.PanY).To(Equal(400.0))
		})
	})

	It("applies one transition per event", func() {
		n := ctrl.HandleAll([]interact.Event{
			interact.Key(interact.KeyUp),
			interact.Key(interact.KeyUp),
			interact.Key("q"),
			interact.Click(1000, 700),
			interact.Key(interact.KeyMinus),
		})
		Expect(n).To(Equal(3))
		Expect(clk.TimeScale).To(Equal(5.0))
		Expect(cam.Target).To(Equal(0.5))
	})
})

var _ = Describe("Rect", func() {
	It("includes its top-left edges and excludes its bottom-right edges", func() {
		r := interact.Rect{X: 10, Y: 10, W: 100, H: 40}
		Expect(r.Contains(10, 10)).To(BeTrue())
		Expect(r.Contains(109.5, 49.5)).To(BeTrue())
		Expect(r.Contains(110, 30)).To(BeFalse())
		Expect(r.Contains(50, 50)).To(BeFalse())
		Expect(r.Contains(110, 50)).To(BeFalse())
		Expect(r.Contains(50, 9)).To(BeFalse())
	})

	It("does not hit a button on its right edge", func() {
		buttons := interact.Layout("Earth")
		Expect(interact.Hit(buttons, 110, 30)).To(BeNil())
		Expect(interact.Hit(buttons, 120, 30).Action).To(Equal(interact.ActionSpeedDown))
	})
})

var _ = Describe("Action", func() {
	It("has readable names", func() {
		Expect(interact.ActionFollow.String()).To(Equal("follow"))
		Expect(interact.Action(99).String()).To(Equal("unknown"))
	})
})
