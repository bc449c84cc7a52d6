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

package watch

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/aamcrae/watchface/face"
	"github.com/aamcrae/watchface/sched"
	"github.com/aamcrae/watchface/settings"
)

type fakeDisplay struct {
	shown chan image.Image
	fail  bool
}

func newDisplay() *fakeDisplay {
	return &fakeDisplay{shown: make(chan image.Image, 20)}
}

func (d *fakeDisplay) Show(img image.Image) error {
	d.shown <- img
	if d.fail {
		return errors.New("display broken")
	}
	return nil
}

func (d *fakeDisplay) next(t *testing.T) image.Image {
	t.Helper()
	select {
	case img := <-d.shown:
		return img
	case <-time.After(2 * time.Second):
		t.Fatalf("no frame shown")
	}
	return nil
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func at(hour, minute, second int) time.Time {
	return time.Date(2021, 6, 15, hour, minute, second, 0, time.Local)
}

func workday() settings.Settings {
	s := settings.Default()
	s.ActiveStart, s.ActiveEnd = 9, 17
	return s
}

func same(c color.Color, want color.RGBA) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 == uint32(want.R) && g>>8 == uint32(want.G) && b>>8 == uint32(want.B)
}

// Below center, clear of the date window, where only the second
// hand is drawn at 30 seconds.
const secX, secY = 73, 124

func TestRender(t *testing.T) {
	w := New(Config{}, new(sched.Fake))
	now := at(10, 8, 30)
	light := settings.Default()
	light.LightTheme = true
	blue := settings.Default()
	blue.SecondHandColor = settings.RGB(0x0000ff)
	tests := []struct {
		name    string
		s       settings.Settings
		seconds bool
		x, y    int
		want    color.RGBA
	}{
		{"second hand", settings.Default(), true, secX, secY, face.Red},
		{"no second hand", settings.Default(), false, secX, secY, face.Black},
		{"light background", light, false, 20, 20, face.White},
		{"second hand colour", blue, true, secX, secY, settings.RGB(0x0000ff)},
	}
	for _, tc := range tests {
		img := w.Render(now, tc.s, tc.seconds)
		if img.Bounds() != Frame {
			t.Fatalf("%s: bounds %v", tc.name, img.Bounds())
		}
		if got := img.At(tc.x, tc.y); !same(got, tc.want) {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRenderBattery(t *testing.T) {
	level := 0.25
	w := New(Config{Battery: func() (float64, error) { return level, nil }}, new(sched.Fake))
	s := settings.Default()
	s.ShowBattery = true
	img := w.Render(at(10, 0, 0), s, false)
	if got := img.At(10, 1); !same(got, s.WindowColor) {
		t.Errorf("charged part = %v", got)
	}
	if got := img.At(100, 1); !same(got, s.WindowBorderColor) {
		t.Errorf("empty part = %v", got)
	}
}

func TestRun(t *testing.T) {
	clk := &clock{now: at(10, 0, 30)}
	timer := new(sched.Fake)
	d := newDisplay()
	w := New(Config{Now: clk.Now}, timer, d)
	hours := make(chan int, 5)
	w.OnHour(func(h int) { hours <- h })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- w.Run(ctx, workday()) }()

	// Initial frame, with the second hand.
	img := d.next(t)
	if c, active, _ := timer.State(); c != sched.PerSecond || !active {
		t.Errorf("10:00: cadence %s, active %v", c, active)
	}
	if !same(img.At(secX, secY), face.Red) {
		t.Errorf("10:00: second hand missing")
	}

	// Evening: per minute, second hand hidden.
	clk.Set(at(20, 0, 30))
	timer.Fire(at(20, 0, 0))
	img = d.next(t)
	if c, _, n := timer.State(); c != sched.PerMinute || n != 2 {
		t.Errorf("20:00: cadence %s, %d subscribes", c, n)
	}
	if !same(img.At(secX, secY), face.Black) {
		t.Errorf("20:00: second hand shown")
	}
	if h := <-hours; h != 20 {
		t.Errorf("hour hook called with %d", h)
	}

	// Widen the window; the change applies immediately.
	late := workday()
	late.ActiveEnd = 22
	w.Update(late)
	img = d.next(t)
	if c, _, _ := timer.State(); c != sched.PerSecond {
		t.Errorf("after update: cadence %s", c)
	}
	if !same(img.At(secX, secY), face.Red) {
		t.Errorf("after update: second hand missing")
	}

	w.ToggleSeconds()
	img = d.next(t)
	if c, _, _ := timer.State(); c != sched.PerMinute {
		t.Errorf("after toggle: cadence %s", c)
	}
	if !same(img.At(secX, secY), face.Black) {
		t.Errorf("after toggle: second hand shown")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return")
	}
	if _, active, _ := timer.State(); active {
		t.Errorf("timer still subscribed after Run")
	}
	if w.Frames != 4 {
		t.Errorf("%d frames, want 4", w.Frames)
	}
}

func TestModifyAfterRun(t *testing.T) {
	w := New(Config{Now: func() time.Time { return at(10, 0, 0) }}, new(sched.Fake))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx, workday()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	sent := make(chan struct{})
	go func() {
		for i := 0; i < 2*queueSize; i++ {
			w.ToggleSeconds()
		}
		close(sent)
	}()
	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatalf("Modify blocked after Run returned")
	}
}

func TestRunStartFailure(t *testing.T) {
	w := New(Config{Now: func() time.Time { return at(10, 0, 0) }}, &sched.Fake{Fail: 1})
	if err := w.Run(context.Background(), workday()); err == nil {
		t.Errorf("Run succeeded without a timer")
	}
}

func TestDisplayErrors(t *testing.T) {
	clk := &clock{now: at(10, 0, 0)}
	timer := new(sched.Fake)
	bad := newDisplay()
	bad.fail = true
	good := newDisplay()
	w := New(Config{Now: clk.Now}, timer, bad, good)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx, workday())
	bad.next(t)
	good.next(t)
	timer.Fire(at(10, 0, 1))
	bad.next(t)
	good.next(t)
}
