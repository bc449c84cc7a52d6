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

// Package decor draws the parts of the watch face behind the hands:
// the background, the date window, the digital time and the battery bar.
package decor

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// LoadBackground reads a JPEG or PNG clock face image.
func LoadBackground(name string) (image.Image, error) {
	inf, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer inf.Close()
	img, _, err := image.Decode(inf)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return img, nil
}

// LoadFace loads a TrueType font at the given point size.
// An empty name returns the built in 7x13 face.
func LoadFace(name string, size float64) (font.Face, error) {
	if name == "" {
		return basicfont.Face7x13, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}

// Background draws the clock face image, or clears to a plain colour
// if there is no image.
func Background(c *gg.Context, img image.Image, col color.Color) {
	c.SetColor(col)
	c.Clear()
	if img != nil {
		c.DrawImage(img, 0, 0)
	}
}

// Window is a bordered box holding a line of text.
type Window struct {
	Fill   color.Color
	Border color.Color
	Text   color.Color
	Face   font.Face
}

const windowPad = 3

// Draw draws the window centered on (x, y).
func (w Window) Draw(c *gg.Context, text string, x, y float64) {
	face := w.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	c.SetFontFace(face)
	tw, th := c.MeasureString(text)
	bw, bh := tw+2*windowPad, th+2*windowPad
	c.DrawRectangle(x-bw/2, y-bh/2, bw, bh)
	c.SetColor(w.Fill)
	c.FillPreserve()
	c.SetLineWidth(1)
	c.SetColor(w.Border)
	c.Stroke()
	c.SetColor(w.Text)
	c.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// Date draws the day of the month to the right of center, at 3 o'clock.
func Date(c *gg.Context, w Window, day int, frame image.Rectangle) {
	x := float64(frame.Min.X) + float64(frame.Dx())*3/4
	y := float64(frame.Min.Y + frame.Dy()/2)
	w.Draw(c, fmt.Sprintf("%d", day), x, y)
}

// Digital draws the time as text below center, at 6 o'clock.
func Digital(c *gg.Context, w Window, t time.Time, frame image.Rectangle) {
	x := float64(frame.Min.X + frame.Dx()/2)
	y := float64(frame.Min.Y) + float64(frame.Dy())*3/4
	w.Draw(c, t.Format("15:04"), x, y)
}

// BatteryHeight is the height of the battery bar in pixels.
const BatteryHeight = 3

// Battery draws a bar across the top of the frame, with the filled
// part proportional to level (0 to 1).
func Battery(c *gg.Context, level float64, frame image.Rectangle, fill, empty color.Color) {
	level = min(max(level, 0), 1)
	x := float64(frame.Min.X)
	y := float64(frame.Min.Y)
	w := float64(frame.Dx())
	c.DrawRectangle(x, y, w, BatteryHeight)
	c.SetColor(empty)
	c.Fill()
	if full := w * level; full > 0 {
		c.DrawRectangle(x, y, full, BatteryHeight)
		c.SetColor(fill)
		c.Fill()
	}
}
