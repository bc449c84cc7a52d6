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

// Terminal preview of the watch face.
// Keys: s toggles the second hand, l toggles the light theme, q quits.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/aamcrae/watchface/decor"
	"github.com/aamcrae/watchface/display"
	"github.com/aamcrae/watchface/face"
	"github.com/aamcrae/watchface/sched"
	"github.com/aamcrae/watchface/settings"
	"github.com/aamcrae/watchface/watch"
)

var step = flag.Int("step", 2, "Pixels per terminal column")
var logFile = flag.String("log", "", "Log file, discarded if empty")
var extents = flag.String("extents", "fixed", "Hand reach measured from fixed or frame extents")
var digital = flag.Bool("digital", false, "Show the digital time window")

func main() {
	flag.Parse()
	ext, err := face.ExtentsNamed(*extents)
	if err != nil {
		log.Fatalf("extents: %v", err)
	}
	fnt, err := decor.LoadFace("", 0)
	if err != nil {
		log.Fatalf("font: %v", err)
	}
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("%s: %v", *logFile, err)
		}
		defer f.Close()
		out = f
	}
	term, err := display.NewTerminal(*step)
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	// The terminal belongs to the face from here on.
	log.SetOutput(out)

	ticker := sched.NewTicker()
	defer ticker.Close()
	w := watch.New(watch.Config{Geometry: face.Geometry{Extents: ext}, Font: fnt}, ticker, term)
	s := settings.Default()
	s.ShowDigital = *digital

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, s) }()
	for quit := false; !quit; {
		switch ev := term.Screen.PollEvent().(type) {
		case nil:
			quit = true
		case *tcell.EventResize:
			term.Screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				quit = true
			case ev.Rune() == 's':
				w.ToggleSeconds()
			case ev.Rune() == 'l':
				w.Modify(func(s settings.Settings) settings.Settings {
					s.LightTheme = !s.LightTheme
					return s
				})
			}
		}
	}
	cancel()
	err = <-done
	term.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		os.Exit(1)
	}
}
