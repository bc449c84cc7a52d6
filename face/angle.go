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

// Package face computes the geometry of the watch face hands and draws them.
//
// Angles are held in fixed point units where a full revolution is FullTurn.
// Each hand is stretched so that its tip reaches the edge of the rectangular
// display, rather than sitting on a fixed radius.
package face

import (
	"fmt"
	"time"
)

// FullTurn is the number of angle units in one revolution.
const FullTurn = 0x10000

// Angle is a rotation in FullTurn units, clockwise from 12 o'clock.
type Angle int32

// Kind selects one of the hands.
type Kind int

const (
	Hour Kind = iota
	Minute
	Second
)

// Kinds lists the hands in draw order.
var Kinds = []Kind{Hour, Minute, Second}

func (k Kind) String() string {
	switch k {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ClockTime is a single sample of the wall clock.
// Each draw takes one sample and uses it for everything it computes.
type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// TimeOf samples the clock fields from t.
func TimeOf(t time.Time) ClockTime {
	h, m, s := t.Clock()
	return ClockTime{Hour: h, Minute: m, Second: s}
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Degrees returns the whole-degree position of the hand.
// The hour hand creeps with the minutes, in half degree steps
// that are truncated (so odd minutes do not move it).
func Degrees(k Kind, t ClockTime) int {
	switch k {
	case Hour:
		return (t.Hour%12)*30 + t.Minute/2
	case Minute:
		return t.Minute * 6
	default:
		return t.Second * 6
	}
}

// FromDegrees converts whole degrees to angle units.
// The multiply is done first so that the quadrants are exact.
func FromDegrees(deg int) Angle {
	return Angle(deg * FullTurn / 360)
}

// AngleOf returns the rotation of the hand for this time.
func AngleOf(k Kind, t ClockTime) Angle {
	return FromDegrees(Degrees(k, t))
}

// Normalize wraps the angle into [0, FullTurn).
func (a Angle) Normalize() Angle {
	a %= FullTurn
	if a < 0 {
		a += FullTurn
	}
	return a
}
