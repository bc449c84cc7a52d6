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

// Package settings holds the user configuration of the watch face.
// Settings are always handled as a complete snapshot.
package settings

import (
	"fmt"
	"image/color"
)

// Settings is one snapshot of the user configuration.
// SecondsAlwaysOn together with the active hours decides whether
// the second hand is shown.
type Settings struct {
	SecondsAlwaysOn    bool
	ActiveStart        int // First hour (0-23) that seconds are shown
	ActiveEnd          int // Last hour (0-23) that seconds are shown
	ShowDate           bool
	ShowBattery        bool
	ShowDigital        bool
	LightTheme         bool
	WindowColor        color.RGBA
	WindowBorderColor  color.RGBA
	WindowTextColor    color.RGBA
	SecondHandColor    color.RGBA
	SecondOutlineColor color.RGBA
}

// Default returns the settings used before any have been received.
func Default() Settings {
	return Settings{
		SecondsAlwaysOn:    true,
		ActiveStart:        0,
		ActiveEnd:          23,
		ShowDate:           true,
		WindowColor:        RGB(0xffffff),
		WindowBorderColor:  RGB(0x000000),
		WindowTextColor:    RGB(0x000000),
		SecondHandColor:    RGB(0xff0000),
		SecondOutlineColor: RGB(0xaa0000),
	}
}

// Active reports whether the second hand should be running in this hour.
// A window that is out of range or inverted is never active.
func (s Settings) Active(hour int) bool {
	if !s.SecondsAlwaysOn || !s.validWindow() {
		return false
	}
	return hour >= s.ActiveStart && hour <= s.ActiveEnd
}

func (s Settings) validWindow() bool {
	return s.ActiveStart >= 0 && s.ActiveEnd <= 23 && s.ActiveStart <= s.ActiveEnd
}

func (s Settings) String() string {
	return fmt.Sprintf("seconds %v (%02d-%02d), date %v, battery %v, digital %v, light %v",
		s.SecondsAlwaysOn, s.ActiveStart, s.ActiveEnd, s.ShowDate, s.ShowBattery, s.ShowDigital, s.LightTheme)
}

// RGB converts a 0xRRGGBB value to an opaque colour.
func RGB(v int) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}
