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
	"os"
	"path/filepath"
	"testing"

	"github.com/aamcrae/config"
)

func parse(t *testing.T, text string) *config.Config {
	t.Helper()
	f := filepath.Join(t.TempDir(), "watchface.conf")
	if err := os.WriteFile(f, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	conf, err := config.ParseFile(f)
	if err != nil {
		t.Fatalf("%s: %v", f, err)
	}
	return conf
}

func TestRead(t *testing.T) {
	conf := parse(t, `[settings]
seconds=off
active=7,22
battery=on
theme=light
second=00ff00,008800
`)
	s, err := Read(conf, "settings", Default())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := Default()
	want.SecondsAlwaysOn = false
	want.ActiveStart, want.ActiveEnd = 7, 22
	want.ShowBattery = true
	want.LightTheme = true
	want.SecondHandColor = RGB(0x00ff00)
	want.SecondOutlineColor = RGB(0x008800)
	if s != want {
		t.Errorf("Read:\n got %+v\nwant %+v", s, want)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"onoff", "[settings]\nseconds=sometimes\n"},
		{"theme", "[settings]\ntheme=blue\n"},
		{"active", "[settings]\nactive=9\n"},
	}
	for _, tc := range tests {
		if _, err := Read(parse(t, tc.text), "settings", Default()); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
	if _, err := Read(parse(t, "[other]\nx=1\n"), "settings", Default()); err == nil {
		t.Errorf("missing section: expected error")
	}
}
