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
	"log"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Debounce is the minimum time between button presses.
const Debounce = 200 * time.Millisecond

// Button is a push button on a GPIO input, pulled up, so that
// pressing it takes the input to 0.
type Button struct {
	number int
	value  *os.File
	buf    []byte
	pollfd []unix.PollFd
	last   time.Time
}

// NewButton exports the GPIO pin and sets it as a falling edge
// triggered input.
func NewButton(gpio int) (*Button, error) {
	b := new(Button)
	b.number = gpio
	b.buf = make([]byte, 1)
	pin := fmt.Sprintf("gpio%d", gpio)
	val := classFile("gpio", pin, "value")
	if err := export(val, classFile("gpio", "export"), gpio); err != nil {
		return nil, err
	}
	if err := writeFile(classFile("gpio", pin, "direction"), "in"); err != nil {
		b.unexport()
		return nil, err
	}
	if err := writeFile(classFile("gpio", pin, "edge"), "falling"); err != nil {
		b.unexport()
		return nil, err
	}
	var err error
	b.value, err = os.OpenFile(val, os.O_RDONLY, 0)
	if err != nil {
		b.unexport()
		return nil, err
	}
	b.pollfd = []unix.PollFd{{Fd: int32(b.value.Fd()), Events: unix.POLLPRI | unix.POLLERR}}
	return b, nil
}

// Get returns the current value of the input.
func (b *Button) Get() (int, error) {
	_, err := b.value.ReadAt(b.buf, 0)
	if err != nil {
		return 0, err
	}
	switch b.buf[0] {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	}
	return 0, fmt.Errorf("gpio%d: unknown value %q", b.number, b.buf)
}

// Wait blocks until the button is pressed.
func (b *Button) Wait() error {
	for {
		b.pollfd[0].Revents = 0
		if _, err := unix.Poll(b.pollfd, -1); err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}
		v, err := b.Get()
		if err != nil {
			return err
		}
		now := time.Now()
		if v == 0 && now.Sub(b.last) >= Debounce {
			b.last = now
			return nil
		}
	}
}

// Watch calls f for each button press until an error occurs.
func (b *Button) Watch(f func()) {
	for {
		if err := b.Wait(); err != nil {
			log.Printf("gpio%d: button: %v", b.number, err)
			return
		}
		f()
	}
}

// Close releases the GPIO pin.
func (b *Button) Close() {
	if b.value != nil {
		b.value.Close()
	}
	b.unexport()
}

func (b *Button) unexport() {
	unexport(classFile("gpio", "unexport"), b.number)
}
