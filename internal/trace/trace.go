// Package trace runs the simulation without a window and records the
// path of one body.
package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/orrery/internal/interact"
	"github.com/san-kum/orrery/internal/levels"
	"github.com/san-kum/orrery/internal/sim"
)

var (
	ErrUnknownBody = errors.New("trace: unknown body")
	ErrBadSpeed    = errors.New("trace: speed is not a permitted level")
	ErrBadFrames   = errors.New("trace: frames and dt must be positive")
)

// Sample is the traced body's state after one frame.
type Sample struct {
	Frame int
	Time  float64
	X, Y  float64
	Angle float64
}

type Options struct {
	Body   string
	Frames int
	Dt     float64
	Speed  float64
}

// SpeedEvents returns the key presses that move the clock from speed
// from to speed to.
func SpeedEvents(from, to float64) ([]interact.Event, error) {
	if !levels.Speeds.Contains(to) {
		return nil, fmt.Errorf("%w: %v", ErrBadSpeed, to)
	}
	var events []interact.Event
	for v := from; v < to; v = levels.Speeds.Up(v) {
		events = append(events, interact.Key(interact.KeyUp))
	}
	for v := from; v > to; v = levels.Speeds.Down(v) {
		events = append(events, interact.Key(interact.KeyDown))
	}
	return events, nil
}

// Run steps s for opts.Frames frames of opts.Dt seconds and samples the
// body after every frame. The first sample is the starting position.
func Run(s *sim.Simulation, opts Options) ([]Sample, error) {
	if opts.Frames <= 0 || opts.Dt <= 0 {
		return nil, ErrBadFrames
	}
	b := s.System.Body(s.System.Index(opts.Body))
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBody, opts.Body)
	}
	events, err := SpeedEvents(s.Clock.TimeScale, opts.Speed)
	if err != nil {
		return nil, err
	}
	s.Controller.HandleAll(events)
	if s.Clock.TimeScale != opts.Speed {
		return nil, fmt.Errorf("%w: clock at %v, want %v", ErrBadSpeed, s.Clock.TimeScale, opts.Speed)
	}

	samples := make([]Sample, 0, opts.Frames+1)
	record := func() {
		x, y := b.Position()
		samples = append(samples, Sample{Frame: s.Frames, Time: s.Time, X: x, Y: y, Angle: b.DisplayAngle()})
	}
	record()
	for i := 0; i < opts.Frames; i++ {
		s.Update(opts.Dt, nil)
		record()
	}
	return samples, nil
}

// Column extracts one series for plotting.
func Column(samples []Sample, f func(Sample) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = f(s)
	}
	return out
}

// WriteCSV writes samples with a header row.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "time", "x", "y", "angle"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Frame),
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
			strconv.FormatFloat(s.Angle, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
