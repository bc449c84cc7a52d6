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

package display

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Terminal shows frames on a terminal, two pixel rows per character
// cell using the upper half block. Step pixels are skipped in each
// direction so the face fits a normal terminal.
type Terminal struct {
	Screen tcell.Screen
	Step   int
}

// NewTerminal initialises the terminal screen.
func NewTerminal(step int) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.Clear()
	return &Terminal{Screen: s, Step: step}, nil
}

// Show draws the frame from the top left corner of the terminal.
func (t *Terminal) Show(img image.Image) error {
	step := max(t.Step, 1)
	b := img.Bounds()
	w, h := t.Screen.Size()
	for cy := 0; cy < h; cy++ {
		y := b.Min.Y + cy*2*step
		if y >= b.Max.Y {
			break
		}
		for cx := 0; cx < w; cx++ {
			x := b.Min.X + cx*step
			if x >= b.Max.X {
				break
			}
			top := cellColor(img.At(x, y))
			bottom := tcell.ColorBlack
			if y+step < b.Max.Y {
				bottom = cellColor(img.At(x, y+step))
			}
			t.Screen.SetContent(cx, cy, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	t.Screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.Screen.Fini()
}

func cellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
