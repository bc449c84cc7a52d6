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

package io

import (
	"fmt"
	"strconv"
)

// Battery reads the charge of a power supply, e.g BAT0.
type Battery struct {
	Name string
}

// NewBattery checks that the power supply exists.
func NewBattery(name string) (*Battery, error) {
	b := &Battery{Name: name}
	if _, err := readFile(b.file("capacity")); err != nil {
		return nil, err
	}
	return b, nil
}

// Level returns the charge as a fraction between 0 and 1.
func (b *Battery) Level() (float64, error) {
	s, err := readFile(b.file("capacity"))
	if err != nil {
		return 0, err
	}
	pc, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: capacity %q: %v", b.Name, s, err)
	}
	pc = min(max(pc, 0), 100)
	return float64(pc) / 100, nil
}

// Charging reports whether the battery is being charged.
func (b *Battery) Charging() bool {
	s, err := readFile(b.file("status"))
	return err == nil && s == "Charging"
}

func (b *Battery) file(attr string) string {
	return classFile("power_supply", b.Name, attr)
}
