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

// Program to render a single frame of the watch face to a PNG file

package main

import (
	"flag"
	"log"
	"time"

	"github.com/aamcrae/watchface/decor"
	"github.com/aamcrae/watchface/display"
	"github.com/aamcrae/watchface/face"
	"github.com/aamcrae/watchface/sched"
	"github.com/aamcrae/watchface/settings"
	"github.com/aamcrae/watchface/watch"
)

var faceTime = flag.String("time", "10:08:30", "Time on the watch face")
var output = flag.String("out", "face.png", "PNG file to write")
var seconds = flag.Bool("seconds", true, "Draw the second hand")
var light = flag.Bool("light", false, "Use the light theme")
var digital = flag.Bool("digital", false, "Show the digital time window")
var extents = flag.String("extents", "fixed", "Hand reach measured from fixed or frame extents")

func main() {
	flag.Parse()
	t, err := time.Parse("15:04:05", *faceTime)
	if err != nil {
		log.Fatalf("%s: %v", *faceTime, err)
	}
	ext, err := face.ExtentsNamed(*extents)
	if err != nil {
		log.Fatalf("extents: %v", err)
	}
	fnt, err := decor.LoadFace("", 0)
	if err != nil {
		log.Fatalf("font: %v", err)
	}
	s := settings.Default()
	s.LightTheme = *light
	s.ShowDigital = *digital
	now := time.Now()
	t = time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
	ct := face.TimeOf(t)
	g := face.Geometry{Extents: ext}
	for _, k := range face.Kinds {
		log.Printf("%s: %s", ct, g.Hand(k, ct, watch.Frame))
	}
	w := watch.New(watch.Config{Geometry: g, Font: fnt}, new(sched.Fake))
	f := &display.File{Name: *output}
	if err := f.Show(w.Render(t, s, *seconds)); err != nil {
		log.Fatalf("%s: %v", *output, err)
	}
}
