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

// Extents are the distances from the center of the face to the
// vertical (HalfWidth) and horizontal (HalfHeight) edges.
type Extents struct {
	HalfWidth  int
	HalfHeight int
}

// FixedExtents are the extents of the 144x168 face.
var FixedExtents = Extents{HalfWidth: 72, HalfHeight: 84}

// ExtentsFunc supplies the extents for a frame.
type ExtentsFunc func(frame image.Rectangle) Extents

// Fixed always returns FixedExtents, whatever size the frame is.
func Fixed(image.Rectangle) Extents {
	return FixedExtents
}

// FrameExtents derives the extents from the frame size.
func FrameExtents(frame image.Rectangle) Extents {
	return Extents{HalfWidth: frame.Dx() / 2, HalfHeight: frame.Dy() / 2}
}

// ExtentsNamed returns the ExtentsFunc for a configuration name,
// "fixed" or "frame". An empty name is "fixed".
func ExtentsNamed(name string) (ExtentsFunc, error) {
	switch name {
	case "", "fixed":
		return Fixed, nil
	case "frame":
		return FrameExtents, nil
	}
	return nil, fmt.Errorf("%s: unknown extents", name)
}

// MaxReach is the largest hand length that will be returned.
// It is only reached when the cosine for the chosen sector is
// close to zero.
func (e Extents) MaxReach() float64 {
	return float64(2 * max(e.HalfWidth, e.HalfHeight))
}

// Sector windows in whole degrees where the hand is closer to a side edge
// than to the top or bottom edge. The hour hand uses its own windows.
var sideSectors = [...][4]int{
	Hour:   {49, 139, 229, 311},
	Minute: {42, 138, 222, 318},
	Second: {42, 138, 222, 318},
}

// Degrees returns the angle rounded to whole degrees in [0, 360).
func (a Angle) Degrees() int {
	return (int(a.Normalize())*360 + FullTurn/2) / FullTurn % 360
}

// SideDominant reports whether a hand of this kind at deg reaches
// the left or right edge of the face.
func SideDominant(k Kind, deg int) bool {
	s := sideSectors[k]
	return (deg >= s[0] && deg <= s[1]) || (deg >= s[2] && deg <= s[3])
}

// EdgeDistance returns the signed length that takes a hand at this angle
// to the edge of the face. The sign is that of the cosine used, so callers
// take the magnitude when building the hand.
// A zero cosine yields MaxReach, and all results are clamped to it.
func EdgeDistance(k Kind, a Angle, e Extents) float64 {
	var half int
	var c int32
	if SideDominant(k, a.Degrees()) {
		half = e.HalfWidth
		c = cosLookup(a - FullTurn/4)
	} else {
		half = e.HalfHeight
		c = cosLookup(a - FullTurn/2)
	}
	return edgeLength(half, c, e.MaxReach())
}

// edgeLength divides the half extent by the cosine, keeping the
// result within limit.
func edgeLength(half int, c int32, limit float64) float64 {
	if c == 0 {
		return limit
	}
	l := float64(half*FullTurn) / float64(c)
	if l > limit {
		return limit
	}
	if l < -limit {
		return -limit
	}
	return l
}
