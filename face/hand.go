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
	"fmt"
	"image"
)

// Hand is the computed shape and position of one hand for one time sample.
type Hand struct {
	Kind      Kind
	Angle     Angle
	Length    float64 // Signed edge distance
	Shape     Polygon
	Highlight Segment
}

// Geometry holds the parameters used to lay out the hands.
type Geometry struct {
	// Extents supplies the edge distances. If nil, Fixed is used.
	Extents ExtentsFunc
}

// Hand computes the hand of this kind for the time sample.
func (g Geometry) Hand(k Kind, t ClockTime, frame image.Rectangle) Hand {
	ext := g.Extents
	if ext == nil {
		ext = Fixed
	}
	h := Hand{Kind: k, Angle: AngleOf(k, t)}
	h.Length = EdgeDistance(k, h.Angle, ext(frame))
	h.Shape, h.Highlight = BuildHand(k, h.Length)
	return h
}

// Reach is the distance from the pivot to the tip.
func (h Hand) Reach() int {
	return -h.Shape[tip].Y
}

func (h Hand) String() string {
	return fmt.Sprintf("%s: angle %d (%d deg), length %.1f, reach %d", h.Kind, h.Angle, h.Angle.Degrees(), h.Length, h.Reach())
}
