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
	"fmt"
	"image/color"
	"strings"

	"github.com/aamcrae/config"
)

// Read overlays the settings found in a config file section onto base.
// Keys that are not present keep their base value.
// Sample config:
//  [settings]
//  seconds=on               # Show the second hand
//  active=9,17              # Hours during which seconds are shown
//  date=on                  # Day of month window
//  battery=off              # Battery charge bar
//  digital=off              # Digital time window
//  theme=dark               # dark or light
//  window=ffffff,000000,000000  # Window fill, border and text colours
//  second=ff0000,aa0000     # Second hand fill and outline colours
func Read(conf *config.Config, name string, base Settings) (Settings, error) {
	s := conf.GetSection(name)
	if s == nil {
		return base, fmt.Errorf("no config for %s", name)
	}
	var err error
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{"seconds", &base.SecondsAlwaysOn},
		{"date", &base.ShowDate},
		{"battery", &base.ShowBattery},
		{"digital", &base.ShowDigital},
	} {
		v, ok := arg(s, b.key)
		if !ok {
			continue
		}
		*b.dst, err = onOff(v)
		if err != nil {
			return base, fmt.Errorf("%s: %v", b.key, err)
		}
	}
	if _, ok := arg(s, "active"); ok {
		n, err := s.Parse("active", "%d,%d", &base.ActiveStart, &base.ActiveEnd)
		if err != nil {
			return base, fmt.Errorf("active: %v", err)
		}
		if n != 2 {
			return base, fmt.Errorf("active: argument count")
		}
	}
	if v, ok := arg(s, "theme"); ok {
		switch v {
		case "light":
			base.LightTheme = true
		case "dark":
			base.LightTheme = false
		default:
			return base, fmt.Errorf("theme: unknown theme %s", v)
		}
	}
	if err := colors(s, "window", &base.WindowColor, &base.WindowBorderColor, &base.WindowTextColor); err != nil {
		return base, err
	}
	if err := colors(s, "second", &base.SecondHandColor, &base.SecondOutlineColor); err != nil {
		return base, err
	}
	return base, nil
}

// arg returns the value of key, and whether it was present.
func arg(s *config.Section, key string) (string, bool) {
	v, err := s.GetArg(key)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func onOff(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%s: expected on or off", v)
}

// colors parses a list of hex colours into dst.
func colors(s *config.Section, key string, dst ...*color.RGBA) error {
	if _, ok := arg(s, key); !ok {
		return nil
	}
	vals := make([]int, len(dst))
	args := make([]interface{}, len(dst))
	for i := range vals {
		args[i] = &vals[i]
	}
	format := strings.TrimSuffix(strings.Repeat("%x,", len(dst)), ",")
	n, err := s.Parse(key, format, args...)
	if err != nil {
		return fmt.Errorf("%s: %v", key, err)
	}
	if n != len(dst) {
		return fmt.Errorf("%s: argument count", key)
	}
	for i, v := range vals {
		*dst[i] = RGB(v)
	}
	return nil
}
