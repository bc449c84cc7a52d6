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

// Package chime strikes the hour on the speaker.
package chime

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	strikeLen  = 400 * time.Millisecond
	gapLen     = 350 * time.Millisecond
	pitch      = 880.0
)

// Chime plays one strike per hour, 12 at midnight and noon.
type Chime struct {
	mu          sync.Mutex
	initialized bool
}

// New creates a Chime; Init must be called before anything is heard.
func New() *Chime {
	return new(Chime)
}

// Init opens the speaker.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Hour strikes the hour. It does not wait for the strikes to finish.
func (c *Chime) Hour(hour int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	log.Printf("chime: striking %d", Strikes(hour))
	speaker.Play(Sequence(sampleRate, Strikes(hour)))
}

// Close stops any strikes in progress.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		speaker.Clear()
	}
}

// Strikes is the number of strikes for the hour.
func Strikes(hour int) int {
	n := hour % 12
	if n == 0 {
		n = 12
	}
	return n
}

// Sequence returns n strikes separated by silence.
func Sequence(sr beep.SampleRate, n int) beep.Streamer {
	var s []beep.Streamer
	for i := 0; i < n; i++ {
		if i > 0 {
			s = append(s, beep.Silence(sr.N(gapLen)))
		}
		s = append(s, beep.Take(sr.N(strikeLen), NewBell(sr, pitch)))
	}
	return beep.Seq(s...)
}

// Bell is a decaying tone with a quieter overtone.
type Bell struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBell creates a bell tone generator.
func NewBell(sr beep.SampleRate, freq float64) *Bell {
	return &Bell{sr: sr, freq: freq}
}

func (b *Bell) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		v := math.Sin(2*math.Pi*b.freq*t) + 0.3*math.Sin(2*math.Pi*b.freq*2.76*t)
		// Short attack, then exponential decay.
		env := math.Min(t/0.005, 1) * math.Exp(-t*6)
		v *= env * 0.25
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *Bell) Err() error {
	return nil
}
