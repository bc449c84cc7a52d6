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

package face

import (
	"image"
	"math"
)

// Polygon is the outline of a hand, relative to the pivot, with
// 12 o'clock towards negative Y.
// Points 0-2 are around the pivot, 3 and 5 are the shoulders and 4 is the tip.
type Polygon [6]image.Point

// Segment is the highlight line drawn inside a hand.
type Segment [2]image.Point

const (
	leftShoulder  = 3
	tip           = 4
	rightShoulder = 5
)

// Insets applied to the hand length.
const (
	HourOffset     = 35 // Keeps the hour hand away from the edge
	ShoulderInset  = 5
	HighlightInset = 10
)

// minReach is the shortest distance from the pivot to any moved point.
// Only small frames with FrameExtents get near it.
const minReach = 1

var templates = [...]Polygon{
	Hour:   {{6, 0}, {0, 8}, {-6, 0}, {-4, -60}, {0, -65}, {4, -60}},
	Minute: {{4, 0}, {0, 8}, {-4, 0}, {-3, -60}, {0, -65}, {3, -60}},
	Second: {{4, 0}, {0, 8}, {-4, 0}, {-3, -60}, {0, -65}, {3, -60}},
}

var highlight = Segment{{0, 0}, {0, -60}}

// Template returns the unstretched outline of the hand.
func Template(k Kind) Polygon {
	return templates[k]
}

// LengthOffset is the amount a hand falls short of the edge.
func LengthOffset(k Kind) int {
	if k == Hour {
		return HourOffset
	}
	return 0
}

// BuildHand stretches the hand template to the length given.
// Only the tip, shoulders and highlight end are moved.
func BuildHand(k Kind, length float64) (Polygon, Segment) {
	p := templates[k]
	h := highlight
	off := LengthOffset(k)
	p[tip].Y = upward(length, off)
	p[leftShoulder].Y = upward(length, off+ShoulderInset)
	p[rightShoulder].Y = upward(length, off+ShoulderInset)
	h[1].Y = upward(length, off+HighlightInset)
	return p, h
}

// upward returns the Y offset of a point inset from the end of the hand.
// Only the magnitude of the length is used, since a negative cosine
// must still leave the point above the pivot.
func upward(length float64, inset int) int {
	m := math.Abs(length) - float64(inset)
	if m < minReach {
		m = minReach
	}
	return -int(m)
}
