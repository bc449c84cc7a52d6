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

package sched

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Ticker is a Timer driven by the system clock. Ticks are aligned to
// the cadence boundary, so a per-minute ticker ticks at :00 seconds.
// The tick function is called from the ticker's own goroutine.
type Ticker struct {
	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	closed  bool
	current Cadence
}

// NewTicker creates a Ticker with no subscription.
func NewTicker() *Ticker {
	return new(Ticker)
}

// Subscribe stops any running subscription and starts a new one.
// The old goroutine has exited before the new one starts, so two
// subscriptions never tick at the same time.
func (t *Ticker) Subscribe(c Cadence, tick func(time.Time)) error {
	d := c.Interval()
	if d == 0 {
		return fmt.Errorf("ticker: unknown cadence %d", int(c))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return fmt.Errorf("ticker: closed")
	}
	t.halt()
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	t.current = c
	go run(d, tick, t.stop, t.done)
	log.Printf("ticker: subscribed %s", c)
	return nil
}

// Unsubscribe stops the running subscription, if any.
func (t *Ticker) Unsubscribe() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
}

// Current returns the cadence of the running subscription, if any.
func (t *Ticker) Current() (Cadence, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.stop != nil
}

// Close stops the ticker; later subscribes fail.
func (t *Ticker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
	t.closed = true
}

// halt stops the goroutine and waits for it to exit. Must hold mu.
func (t *Ticker) halt() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop = nil
	t.done = nil
}

// run sleeps until the next boundary of the interval, and then ticks
// once per interval until stopped.
func run(d time.Duration, tick func(time.Time), stop, done chan struct{}) {
	defer close(done)
	timer := time.NewTimer(untilBoundary(time.Now(), d))
	defer timer.Stop()
	select {
	case <-stop:
		return
	case n := <-timer.C:
		tick(n)
	}
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case n := <-ticker.C:
			tick(n)
		}
	}
}

// untilBoundary returns the time from n until the next multiple of d
// in local time e.g for a 1 minute interval at 10:15:20, this is 40 seconds.
func untilBoundary(n time.Time, d time.Duration) time.Duration {
	adj := time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), n.Nanosecond(), time.UTC)
	return adj.Truncate(d).Add(d).Sub(adj)
}
