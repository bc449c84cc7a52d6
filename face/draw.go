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
	"image/color"

	"github.com/fogleman/gg"
)

// HandColors are the colours used to draw one hand.
type HandColors struct {
	Fill      color.Color
	Stroke    color.Color
	Highlight color.Color
}

// Center returns the pivot point of the hands for the frame.
func Center(frame image.Rectangle) image.Point {
	return image.Pt(frame.Min.X+frame.Dx()/2, frame.Min.Y+frame.Dy()/2)
}

// Place rotates the points clockwise by the angle about the origin,
// and then moves them to the center.
func Place(points []image.Point, center image.Point, a Angle) []gg.Point {
	c := float64(cosLookup(a)) / TrigMaxRatio
	s := float64(sinLookup(a)) / TrigMaxRatio
	out := make([]gg.Point, len(points))
	for i, p := range points {
		x, y := float64(p.X), float64(p.Y)
		out[i] = gg.Point{
			X: x*c - y*s + float64(center.X),
			Y: x*s + y*c + float64(center.Y),
		}
	}
	return out
}

// DrawHand fills and outlines the hand, then strokes the highlight over it.
func DrawHand(c *gg.Context, h Hand, center image.Point, col HandColors) {
	pts := Place(h.Shape[:], center, h.Angle)
	c.NewSubPath()
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetLineWidth(1)
	c.SetColor(col.Fill)
	c.FillPreserve()
	c.SetColor(col.Stroke)
	c.Stroke()
	// The highlight must go on top of the filled hand.
	hl := Place(h.Highlight[:], center, h.Angle)
	c.SetColor(col.Highlight)
	c.DrawLine(hl[0].X, hl[0].Y, hl[1].X, hl[1].Y)
	c.Stroke()
}

// DrawHands draws the hands in order for the time sample. The second
// hand is left off if seconds is false.
func DrawHands(c *gg.Context, g Geometry, p Palette, t ClockTime, frame image.Rectangle, seconds bool) {
	center := Center(frame)
	for _, k := range Kinds {
		if k == Second && !seconds {
			continue
		}
		DrawHand(c, g.Hand(k, t, frame), center, p.Colors(k))
	}
}
