// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package watch runs the watch face: it owns the redraw scheduler,
// renders frames and pushes them to the displays.
//
// Timer ticks, settings changes and redraws are all handled by the
// single goroutine running Run, so none of the face state is shared.
package watch

import (
	"context"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/aamcrae/watchface/decor"
	"github.com/aamcrae/watchface/face"
	"github.com/aamcrae/watchface/sched"
	"github.com/aamcrae/watchface/settings"
)

// Frame is the size of the watch display.
var Frame = image.Rect(0, 0, 144, 168)

const queueSize = 10

// Display shows a rendered frame.
type Display interface {
	Show(image.Image) error
}

// Config holds the parts of the face that are fixed at startup.
type Config struct {
	Geometry   face.Geometry
	Background image.Image             // Clock face image, may be nil
	Font       font.Face               // Face for the date and digital windows
	Battery    func() (float64, error) // Battery charge, may be nil
	Now        func() time.Time        // Wall clock, time.Now if nil
}

// Watch is a running watch face.
type Watch struct {
	Frames   int // Number of frames rendered
	conf     Config
	displays []Display
	sched    *sched.Scheduler
	ticks    chan time.Time
	updates  chan func(settings.Settings) settings.Settings
	done     chan struct{} // Closed when Run returns
}

// New creates a Watch that ticks from timer and shows frames on the displays.
func New(conf Config, timer sched.Timer, displays ...Display) *Watch {
	w := new(Watch)
	w.conf = conf
	if w.conf.Now == nil {
		w.conf.Now = time.Now
	}
	w.displays = displays
	w.ticks = make(chan time.Time, queueSize)
	w.updates = make(chan func(settings.Settings) settings.Settings, queueSize)
	w.done = make(chan struct{})
	w.sched = sched.New(timer, w.tick, w.redraw)
	return w
}

// OnHour sets a function called on the event goroutine each time
// the hour changes.
func (w *Watch) OnHour(f func(hour int)) {
	w.sched.OnHour(f)
}

// Update queues a new settings snapshot.
func (w *Watch) Update(s settings.Settings) {
	w.Modify(func(settings.Settings) settings.Settings { return s })
}

// Modify queues a change to the current settings. f is called on the
// event goroutine with the current snapshot and returns the new one.
// Changes made after Run has returned are discarded.
func (w *Watch) Modify(f func(settings.Settings) settings.Settings) {
	select {
	case w.updates <- f:
	case <-w.done:
	}
}

// ToggleSeconds switches the second hand on or off.
func (w *Watch) ToggleSeconds() {
	w.Modify(func(s settings.Settings) settings.Settings {
		s.SecondsAlwaysOn = !s.SecondsAlwaysOn
		return s
	})
}

// tick is called from the timer's goroutine. If the queue is full the
// tick is dropped, since a redraw is already pending.
func (w *Watch) tick(t time.Time) {
	select {
	case w.ticks <- t:
	default:
		log.Printf("watch: tick at %s dropped", t.Format("15:04:05"))
	}
}

// Run starts the scheduler with the initial settings and handles
// events until ctx is done. It must only be called once.
func (w *Watch) Run(ctx context.Context, initial settings.Settings) error {
	defer close(w.done)
	if err := w.sched.Start(w.conf.Now(), initial); err != nil {
		return err
	}
	defer w.sched.Stop()
	log.Printf("watch: started, %s, %s", w.sched.Cadence(), initial)
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-w.ticks:
			w.sched.Tick(t)
		case f := <-w.updates:
			s := f(w.sched.Settings())
			log.Printf("watch: settings %s", s)
			w.sched.Update(w.conf.Now(), s)
		}
	}
}

// redraw is called by the scheduler after every event.
// The time is sampled here, once, for the whole frame.
func (w *Watch) redraw(_ time.Time, seconds bool) {
	now := w.conf.Now()
	img := w.Render(now, w.sched.Settings(), seconds)
	w.Frames++
	for _, d := range w.displays {
		if err := d.Show(img); err != nil {
			log.Printf("watch: display: %v", err)
		}
	}
}

// Render draws the complete face for the time and settings.
// Layers are drawn in order: background, windows, hour, minute, second.
func (w *Watch) Render(now time.Time, s settings.Settings, seconds bool) image.Image {
	c := gg.NewContext(Frame.Dx(), Frame.Dy())
	palette := face.DefaultPalette()
	var bg color.Color = face.Black
	if s.LightTheme {
		palette = face.LightPalette()
		bg = face.White
	}
	palette.Second.Fill = s.SecondHandColor
	palette.Second.Stroke = s.SecondOutlineColor
	decor.Background(c, w.conf.Background, bg)
	win := decor.Window{Fill: s.WindowColor, Border: s.WindowBorderColor, Text: s.WindowTextColor, Face: w.conf.Font}
	if s.ShowBattery && w.conf.Battery != nil {
		if level, err := w.conf.Battery(); err == nil {
			decor.Battery(c, level, Frame, s.WindowColor, s.WindowBorderColor)
		} else {
			log.Printf("watch: battery: %v", err)
		}
	}
	if s.ShowDate {
		decor.Date(c, win, now.Day(), Frame)
	}
	if s.ShowDigital {
		decor.Digital(c, win, now, Frame)
	}
	face.DrawHands(c, w.conf.Geometry, palette, face.TimeOf(now), Frame, seconds)
	return c.Image()
}
