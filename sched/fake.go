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
	"errors"
	"sync"
	"time"
)

// Fake is a Timer that only ticks when Fire is called.
// The exported fields may be read directly when only one goroutine
// uses the Fake; otherwise use State.
type Fake struct {
	Cadence      Cadence
	Active       bool
	Subscribes   int // Successful subscribes
	Unsubscribes int
	Fail         int // Number of subscribes that will fail
	mu           sync.Mutex
	tick         func(time.Time)
}

// Subscribe records the subscription, or fails if Fail is non-zero.
func (f *Fake) Subscribe(c Cadence, tick func(time.Time)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail > 0 {
		f.Fail--
		return errors.New("fake: subscribe failed")
	}
	f.Subscribes++
	f.Cadence = c
	f.Active = true
	f.tick = tick
	return nil
}

// Unsubscribe cancels the subscription.
func (f *Fake) Unsubscribe() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Unsubscribes++
	f.Active = false
	f.tick = nil
}

// Fire delivers a tick if there is a subscription.
func (f *Fake) Fire(now time.Time) bool {
	f.mu.Lock()
	tick := f.tick
	f.mu.Unlock()
	if tick == nil {
		return false
	}
	tick(now)
	return true
}

// State returns the subscribed cadence, whether a subscription is
// active, and the number of successful subscribes.
func (f *Fake) State() (Cadence, bool, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Cadence, f.Active, f.Subscribes
}
