// Package interact maps discrete user input onto state transitions of the
// simulation clock and camera.
//
// Every event resolves to at most one [Action] and every action is total:
// speed and zoom clamp at their ladder ends and a missing follow body is a
// no-op.
package interact

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/levels"
	"github.com/san-kum/orrery/internal/orbit"
)

// Action is a single state transition triggered by input.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionSpeedDown
	ActionSpeedUp
	ActionZoomIn
	ActionZoomOut
	ActionResetView
	ActionFollow
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionTogglePause: "toggle_pause",
	ActionSpeedDown:   "speed_down",
	ActionSpeedUp:     "speed_up",
	ActionZoomIn:      "zoom_in",
	ActionZoomOut:     "zoom_out",
	ActionResetView:   "reset_view",
	ActionFollow:      "follow",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// Controller resolves input events to actions and applies them to the
// clock and camera.
type Controller struct {
	Buttons []*Button
	Keys    map[string]Action

	clock      *clock.Clock
	camera     *camera.Camera
	system     *orbit.System
	followName string
	logger     log.Logger
}

// New wires a controller to the state it mutates. followName is the body
// the follow action toggles. A nil logger discards output.
func New(clk *clock.Clock, cam *camera.Camera, sys *orbit.System, followName string, logger log.Logger) *Controller {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Controller{
		Buttons:    Layout(followName),
		Keys:       DefaultKeys,
		clock:      clk,
		camera:     cam,
		system:     sys,
		followName: followName,
		logger:     log.With(logger, "component", "interact"),
	}
}

func (c *Controller) FollowName() string { return c.followName }

// Button returns the button bound to a, or nil.
func (c *Controller) Button(a Action) *Button {
	for _, b := range c.Buttons {
		if b.Action == a {
			return b
		}
	}
	return nil
}

// Resolve finds the action an event maps to without applying it.
func (c *Controller) Resolve(ev Event) (Action, bool) {
	switch ev.Kind {
	case EventClick:
		if b := Hit(c.Buttons, ev.X, ev.Y); b != nil {
			return b.Action, true
		}
	case EventKey:
		if a, ok := c.Keys[ev.Key]; ok {
			return a, true
		}
	}
	return ActionNone, false
}

// Handle resolves and applies one event. It reports the action taken and
// whether any state changed.
func (c *Controller) Handle(ev Event) (Action, bool) {
	a, ok := c.Resolve(ev)
	if !ok {
		return ActionNone, false
	}
	return a, c.Apply(a)
}

// HandleAll drains a frame's event queue in order and returns the number
// of transitions applied.
func (c *Controller) HandleAll(events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := c.Handle(ev); ok {
			n++
		}
	}
	return n
}

// Apply performs the transition for a. It returns false only for
// ActionNone and for following a body that does not exist.
func (c *Controller) Apply(a Action) bool {
	switch a {
	case ActionTogglePause:
		c.clock.TogglePause()
		c.relabelPause()
	case ActionSpeedDown:
		c.clock.StepSpeed(levels.Decrease)
	case ActionSpeedUp:
		c.clock.StepSpeed(levels.Increase)
	case ActionZoomIn:
		c.camera.StepZoom(levels.Increase)
	case ActionZoomOut:
		c.camera.StepZoom(levels.Decrease)
	case ActionResetView:
		c.camera.Reset()
	case ActionFollow:
		if !c.toggleFollow() {
			level.Debug(c.logger).Log("msg", "follow target not found", "body", c.followName)
			return false
		}
	default:
		return false
	}

	level.Debug(c.logger).Log(
		"action", a,
		"paused", c.clock.Paused,
		"time_scale", c.clock.TimeScale,
		"target_scale", c.camera.Target,
	)
	return true
}

// ToggleFollowIndex follows body i, or resets the view if i is already
// followed.
func (c *Controller) ToggleFollowIndex(i int) {
	if cur, ok := c.camera.Following(); ok && cur == i {
		c.camera.Reset()
		return
	}
	c.camera.Follow(i)
	c.camera.SetTargetScale(camera.FollowScale)
}

func (c *Controller) toggleFollow() bool {
	i := c.system.Index(c.followName)
	if i < 0 {
		return false
	}
	c.ToggleFollowIndex(i)
	return true
}

func (c *Controller) relabelPause() {
	b := c.Button(ActionTogglePause)
	if b == nil {
		return
	}
	if c.clock.Paused {
		b.Label = labelStart
	} else {
		b.Label = labelPause
	}
}
