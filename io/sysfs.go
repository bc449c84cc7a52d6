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

// Package io reads the watch hardware through sysfs: a GPIO push button
// and the battery charge.

package io

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// Root is the base of the sysfs class tree. It may be changed for testing.
var Root = "/sys/class"

const verifyTimeout = 2 * time.Second

// Verify will enable waiting for exported files to become writable.
// When not running as root, udev changes the group permissions on
// exported files some time after the export, so early access fails.
var Verify = false

func init() {
	u, err := user.Current()
	if err == nil && u.Uid != "0" {
		Verify = true
	}
}

func classFile(parts ...string) string {
	return filepath.Join(append([]string{Root}, parts...)...)
}

// export writes a unit number to an export file unless f is
// already accessible, then optionally waits for f to become writable.
func export(f, expfile string, unit int) error {
	if unix.Access(f, unix.W_OK|unix.R_OK) == nil {
		return nil
	}
	err := writeFile(expfile, fmt.Sprintf("%d", unit))
	if err == nil && Verify {
		return verifyFile(f)
	}
	return err
}

// unexport writes a unit number to an unexport file.
func unexport(f string, unit int) error {
	return writeFile(f, fmt.Sprintf("%d", unit))
}

// Write a string to a file.
func writeFile(fname, s string) error {
	f, err := os.OpenFile(fname, os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write([]byte(s))
	return err
}

// readFile returns the trimmed contents of an attribute file.
func readFile(fname string) (string, error) {
	if err := unix.Access(fname, unix.R_OK); err != nil {
		return "", fmt.Errorf("%s: %v", fname, err)
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Wait for file to become writable.
func verifyFile(f string) error {
	sl := time.Millisecond
	for tout := time.Duration(0); tout < verifyTimeout; tout += sl {
		if unix.Access(f, unix.W_OK) == nil {
			return nil
		}
		time.Sleep(sl)
	}
	return fmt.Errorf("%s: not writable", f)
}
