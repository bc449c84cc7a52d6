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

package settings

import (
	"image/color"
	"strings"
	"testing"
)

func TestActive(t *testing.T) {
	on := Default()
	on.ActiveStart, on.ActiveEnd = 9, 17
	off := on
	off.SecondsAlwaysOn = false
	inverted := on
	inverted.ActiveStart, inverted.ActiveEnd = 17, 9
	bad := on
	bad.ActiveEnd = 30
	tests := []struct {
		name string
		s    Settings
		hour int
		want bool
	}{
		{"inside", on, 10, true},
		{"start", on, 9, true},
		{"end", on, 17, true},
		{"before", on, 8, false},
		{"after", on, 20, false},
		{"disabled", off, 10, false},
		{"inverted", inverted, 10, false},
		{"inverted edge", inverted, 17, false},
		{"out of range", bad, 10, false},
		{"all day", Default(), 0, true},
		{"all day end", Default(), 23, true},
	}
	for _, tc := range tests {
		if got := tc.s.Active(tc.hour); got != tc.want {
			t.Errorf("%s: Active(%d) = %v, want %v", tc.name, tc.hour, got, tc.want)
		}
	}
}

func TestRGB(t *testing.T) {
	if c := RGB(0x12ab34); c != (color.RGBA{0x12, 0xab, 0x34, 0xff}) {
		t.Errorf("RGB = %v", c)
	}
}

func TestDecode(t *testing.T) {
	msg := `{
		"tickSetting": true,
		"daySetting": false,
		"batterySetting": "true",
		"secondStartSetting": "9",
		"secondEndSetting": 17,
		"digitalSetting": 1,
		"windowColorSetting": 16711680,
		"windowTextColorSetting": "#00ff00",
		"lightThemeSetting": false,
		"secondHandColorSetting": "0x0000ff"
	}`
	base := Default()
	base.SecondsAlwaysOn = false
	s, err := Decode(strings.NewReader(msg), base)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := base
	want.SecondsAlwaysOn = true
	want.ShowDate = false
	want.ShowBattery = true
	want.ActiveStart = 9
	want.ActiveEnd = 17
	want.ShowDigital = true
	want.WindowColor = RGB(0xff0000)
	want.WindowTextColor = RGB(0x00ff00)
	want.SecondHandColor = RGB(0x0000ff)
	if s != want {
		t.Errorf("Decode:\n got %+v\nwant %+v", s, want)
	}
}

func TestDecodeKeepsMissing(t *testing.T) {
	base := Default()
	base.ActiveStart = 6
	s, err := Decode(strings.NewReader(`{"secondEndSetting": 20}`), base)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.ActiveStart != 6 || s.ActiveEnd != 20 || s.SecondsAlwaysOn != base.SecondsAlwaysOn {
		t.Errorf("Decode = %+v", s)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, msg := range []string{
		`{"tickSetting": "maybe"}`,
		`{"secondStartSetting": "nine"}`,
		`not json`,
	} {
		base := Default()
		s, err := Decode(strings.NewReader(msg), base)
		if err == nil {
			t.Errorf("%s: expected error", msg)
		}
		if s != base {
			t.Errorf("%s: settings changed on error", msg)
		}
	}
}

// An inverted window from the configuration page is accepted, and
// simply never enables the second hand.
func TestDecodeInverted(t *testing.T) {
	s, err := Decode(strings.NewReader(`{"tickSetting": true, "secondStartSetting": 20, "secondEndSetting": 5}`), Default())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for h := 0; h < 24; h++ {
		if s.Active(h) {
			t.Errorf("hour %d active with inverted window", h)
		}
	}
}
