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

// Package sched decides how often the watch face is redrawn.
//
// The face is redrawn every second while the second hand is showing,
// and every minute otherwise. Whether the second hand shows depends on
// the settings and the hour, so the decision is revisited each time
// the hour changes and whenever the settings change.
package sched

import (
	"fmt"
	"log"
	"time"

	"github.com/aamcrae/watchface/settings"
)

// Cadence is the rate at which the timer ticks.
type Cadence int

const (
	PerMinute Cadence = iota
	PerSecond
)

func (c Cadence) String() string {
	switch c {
	case PerMinute:
		return "per-minute"
	case PerSecond:
		return "per-second"
	}
	return fmt.Sprintf("cadence(%d)", int(c))
}

// Interval is the time between ticks, or 0 if the cadence is unknown.
func (c Cadence) Interval() time.Duration {
	switch c {
	case PerMinute:
		return time.Minute
	case PerSecond:
		return time.Second
	}
	return 0
}

// Timer delivers ticks at a cadence. Subscribe replaces any current
// subscription; if it fails the current subscription is left running.
type Timer interface {
	Subscribe(Cadence, func(time.Time)) error
	Unsubscribe()
}

// Scheduler owns the cadence state. All methods must be called from
// the same goroutine that handles the ticks.
type Scheduler struct {
	timer      Timer
	onTick     func(time.Time)       // Given to the timer
	redraw     func(time.Time, bool) // Marks the face dirty
	hourly     func(int)             // Optional hour change hook
	settings   settings.Settings
	cadence    Cadence // Cadence currently subscribed
	subscribed bool
	lastHour   int
	retry      bool // Retry a failed subscribe on the next tick
	Changes    int  // Number of cadence changes
	Failures   int  // Number of failed subscribes
}

// New creates a Scheduler. onTick is handed to the timer and must
// arrange for Tick to be called; redraw is called after every tick
// or update with whether the second hand is showing.
func New(t Timer, onTick func(time.Time), redraw func(now time.Time, seconds bool)) *Scheduler {
	s := new(Scheduler)
	s.timer = t
	s.onTick = onTick
	s.redraw = redraw
	s.lastHour = -1
	return s
}

// OnHour sets a function to be called when a tick crosses an hour boundary.
func (s *Scheduler) OnHour(f func(hour int)) {
	s.hourly = f
}

// Start picks the initial cadence and subscribes to the timer.
func (s *Scheduler) Start(now time.Time, st settings.Settings) error {
	s.settings = st
	s.lastHour = now.Hour()
	s.evaluate(s.lastHour, false)
	if !s.subscribed {
		return fmt.Errorf("sched: unable to start timer")
	}
	s.redraw(now, s.SecondsVisible())
	return nil
}

// Tick handles a timer event.
func (s *Scheduler) Tick(now time.Time) {
	hour := now.Hour()
	if hour != s.lastHour {
		s.lastHour = hour
		if s.hourly != nil {
			s.hourly(hour)
		}
		s.evaluate(hour, false)
	} else if s.retry {
		s.evaluate(hour, true)
	}
	s.redraw(now, s.SecondsVisible())
}

// Update applies a new settings snapshot straight away, rather than
// waiting for the next hour.
func (s *Scheduler) Update(now time.Time, st settings.Settings) {
	s.settings = st
	s.evaluate(now.Hour(), false)
	s.redraw(now, s.SecondsVisible())
}

// Stop cancels the timer subscription.
func (s *Scheduler) Stop() {
	if s.subscribed {
		s.timer.Unsubscribe()
		s.subscribed = false
	}
}

// Cadence returns the cadence currently in effect.
func (s *Scheduler) Cadence() Cadence {
	return s.cadence
}

// SecondsVisible reports whether the second hand should be drawn.
func (s *Scheduler) SecondsVisible() bool {
	return s.subscribed && s.cadence == PerSecond
}

// Settings returns the snapshot in use.
func (s *Scheduler) Settings() settings.Settings {
	return s.settings
}

// Cadence for the hour given the current settings.
func (s *Scheduler) want(hour int) Cadence {
	if s.settings.Active(hour) {
		return PerSecond
	}
	return PerMinute
}

// evaluate resubscribes the timer if the cadence for the hour differs
// from the current one. A failed subscribe keeps the old cadence, and
// is tried once more on the next tick.
func (s *Scheduler) evaluate(hour int, retrying bool) {
	c := s.want(hour)
	s.retry = false
	if s.subscribed && c == s.cadence {
		return
	}
	if err := s.timer.Subscribe(c, s.onTick); err != nil {
		s.Failures++
		s.retry = !retrying
		log.Printf("sched: hour %d: subscribe %s failed, staying %s: %v", hour, c, s.cadence, err)
		return
	}
	if s.subscribed {
		log.Printf("sched: hour %d: cadence %s -> %s", hour, s.cadence, c)
		s.Changes++
	}
	s.cadence = c
	s.subscribed = true
}
