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
	"image/color"
)

// Colours from the 64 colour palette of the watch display.
var (
	White             = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black             = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Red               = color.RGBA{0xff, 0x00, 0x00, 0xff}
	DarkCandyAppleRed = color.RGBA{0xaa, 0x00, 0x00, 0xff}
	LightGray         = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	DarkGray          = color.RGBA{0x55, 0x55, 0x55, 0xff}
)

// Palette holds the colours of each hand.
type Palette struct {
	Hour   HandColors
	Minute HandColors
	Second HandColors
}

// DefaultPalette is used on the dark clock face.
func DefaultPalette() Palette {
	grey := HandColors{Fill: LightGray, Stroke: DarkGray, Highlight: White}
	return Palette{
		Hour:   grey,
		Minute: grey,
		Second: HandColors{Fill: Red, Stroke: DarkCandyAppleRed, Highlight: White},
	}
}

// LightPalette is used on the light clock face.
func LightPalette() Palette {
	dark := HandColors{Fill: DarkGray, Stroke: Black, Highlight: LightGray}
	p := DefaultPalette()
	p.Hour = dark
	p.Minute = dark
	return p
}

// Colors returns the colours for the hand.
func (p Palette) Colors(k Kind) HandColors {
	switch k {
	case Hour:
		return p.Hour
	case Minute:
		return p.Minute
	}
	return p.Second
}
