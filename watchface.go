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

// Watch face program

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aamcrae/config"

	"github.com/aamcrae/watchface/chime"
	"github.com/aamcrae/watchface/decor"
	"github.com/aamcrae/watchface/display"
	"github.com/aamcrae/watchface/face"
	"github.com/aamcrae/watchface/io"
	"github.com/aamcrae/watchface/sched"
	"github.com/aamcrae/watchface/settings"
	"github.com/aamcrae/watchface/watch"
)

var configFile = flag.String("config", "", "Configuration file")
var section = flag.String("section", "settings", "Configuration section holding the face settings")
var port = flag.Int("port", 8080, "Web server port number")
var pngFile = flag.String("png", "", "Also write each frame to this PNG file")
var background = flag.String("background", "", "Clock face image (JPEG or PNG)")
var fontFile = flag.String("font", "", "TrueType font for the date and digital windows")
var fontSize = flag.Float64("fontsize", 12, "Font size in points")
var button = flag.Int("button", -1, "GPIO pin of the button that toggles the second hand")
var battery = flag.String("battery", "", "Power supply for the battery bar, e.g BAT0")
var strike = flag.Bool("chime", false, "Strike the hours")
var extents = flag.String("extents", "fixed", "Hand reach measured from fixed or frame extents")

func main() {
	flag.Parse()
	s := settings.Default()
	if *configFile != "" {
		conf, err := config.ParseFile(*configFile)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
		s, err = settings.Read(conf, *section, s)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
	}
	var wc watch.Config
	var err error
	wc.Geometry.Extents, err = face.ExtentsNamed(*extents)
	if err != nil {
		log.Fatalf("extents: %v", err)
	}
	if *background != "" {
		wc.Background, err = decor.LoadBackground(*background)
		if err != nil {
			log.Fatalf("background: %v", err)
		}
	}
	wc.Font, err = decor.LoadFace(*fontFile, *fontSize)
	if err != nil {
		log.Fatalf("font: %v", err)
	}
	if *battery != "" {
		b, err := io.NewBattery(*battery)
		if err != nil {
			log.Fatalf("battery: %v", err)
		}
		log.Printf("battery %s: charging %v", b.Name, b.Charging())
		wc.Battery = b.Level
	}

	var w *watch.Watch
	srv := display.NewServer(func(m *settings.Message) {
		w.Modify(m.Apply)
	})
	displays := []watch.Display{srv}
	if *pngFile != "" {
		displays = append(displays, &display.File{Name: *pngFile})
	}
	ticker := sched.NewTicker()
	defer ticker.Close()
	w = watch.New(wc, ticker, displays...)

	if *strike {
		c := chime.New()
		if err := c.Init(); err != nil {
			log.Printf("chime: %v", err)
		} else {
			defer c.Close()
			w.OnHour(c.Hour)
		}
	}
	if *button >= 0 {
		b, err := io.NewButton(*button)
		if err != nil {
			log.Fatalf("button: %v", err)
		}
		defer b.Close()
		go b.Watch(w.ToggleSeconds)
	}
	go func() {
		log.Fatal(srv.ListenAndServe(*port))
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := w.Run(ctx, s); err != nil {
		log.Fatalf("watch: %v", err)
	}
	log.Printf("watch: stopped after %d frames", w.Frames)
}
