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
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// Message is the settings dictionary sent by the configuration page.
// Fields that are absent leave the current setting unchanged.
type Message struct {
	Tick               *flexBool `json:"tickSetting"`
	Day                *flexBool `json:"daySetting"`
	Battery            *flexBool `json:"batterySetting"`
	SecondStart        *flexInt  `json:"secondStartSetting"`
	SecondEnd          *flexInt  `json:"secondEndSetting"`
	Digital            *flexBool `json:"digitalSetting"`
	WindowColor        *flexInt  `json:"windowColorSetting"`
	WindowBorderColor  *flexInt  `json:"windowBorderColorSetting"`
	WindowTextColor    *flexInt  `json:"windowTextColorSetting"`
	LightTheme         *flexBool `json:"lightThemeSetting"`
	SecondHandColor    *flexInt  `json:"secondHandColorSetting"`
	SecondOutlineColor *flexInt  `json:"secondOutlineColorSetting"`
}

// ParseMessage reads a settings message.
func ParseMessage(r io.Reader) (*Message, error) {
	m := new(Message)
	if err := json.NewDecoder(r).Decode(m); err != nil {
		return nil, fmt.Errorf("settings message: %v", err)
	}
	return m, nil
}

// Decode reads a settings message and applies it to base, returning
// the new snapshot.
func Decode(r io.Reader, base Settings) (Settings, error) {
	m, err := ParseMessage(r)
	if err != nil {
		return base, err
	}
	return m.Apply(base), nil
}

// Apply overlays the fields present in the message onto s.
func (m *Message) Apply(s Settings) Settings {
	setBool(&s.SecondsAlwaysOn, m.Tick)
	setBool(&s.ShowDate, m.Day)
	setBool(&s.ShowBattery, m.Battery)
	setBool(&s.ShowDigital, m.Digital)
	setBool(&s.LightTheme, m.LightTheme)
	if m.SecondStart != nil {
		s.ActiveStart = int(*m.SecondStart)
	}
	if m.SecondEnd != nil {
		s.ActiveEnd = int(*m.SecondEnd)
	}
	for _, c := range []struct {
		v   *flexInt
		dst *color.RGBA
	}{
		{m.WindowColor, &s.WindowColor},
		{m.WindowBorderColor, &s.WindowBorderColor},
		{m.WindowTextColor, &s.WindowTextColor},
		{m.SecondHandColor, &s.SecondHandColor},
		{m.SecondOutlineColor, &s.SecondOutlineColor},
	} {
		if c.v != nil {
			*c.dst = RGB(int(*c.v))
		}
	}
	return s
}

func setBool(dst *bool, v *flexBool) {
	if v != nil {
		*dst = bool(*v)
	}
}

// flexBool accepts true/false, 0/1 or either of those quoted.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("%s: not a boolean", data)
	}
	*b = flexBool(v)
	return nil
}

// flexInt accepts a number or a quoted number.
// Quoted values may be hex with a leading "0x" or "#".
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	base := 10
	if len(s) > 1 && s[0] == '#' {
		s, base = s[1:], 16
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		v, err = strconv.ParseInt(s, 0, 64)
		if err != nil {
			return fmt.Errorf("%s: not an integer", data)
		}
	}
	*n = flexInt(v)
	return nil
}

func unquote(data []byte) (string, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(data), nil
}
