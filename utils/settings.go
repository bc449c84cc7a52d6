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

// Settings utility, sends settings changes to a running watch face

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
)

var server = flag.String("server", "http://localhost:8080", "Watch face server")

// Short names for the settings keys.
var keys = map[string]string{
	"seconds": "tickSetting",
	"date":    "daySetting",
	"battery": "batterySetting",
	"start":   "secondStartSetting",
	"end":     "secondEndSetting",
	"digital": "digitalSetting",
	"window":  "windowColorSetting",
	"border":  "windowBorderColorSetting",
	"text":    "windowTextColorSetting",
	"light":   "lightThemeSetting",
	"second":  "secondHandColorSetting",
	"outline": "secondOutlineColorSetting",
}

func main() {
	flag.Parse()
	url := strings.TrimSuffix(*server, "/") + "/settings"
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter setting and value ('help' for help) ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		f := strings.Fields(text)
		switch {
		case len(f) == 0:
		case f[0] == "help":
			fmt.Println("  help - print help")
			fmt.Println("  NAME VALUE - set NAME, one of:")
			names := make([]string, 0, len(keys))
			for k := range keys {
				names = append(names, k)
			}
			sort.Strings(names)
			fmt.Printf("    %s\n", strings.Join(names, " "))
			fmt.Println("  flags are true or false, hours 0-23, colours #rrggbb")
			fmt.Println("  q - quit")
		case f[0] == "q":
			return
		case len(f) != 2 || keys[f[0]] == "":
			fmt.Printf("Unrecognised input\n")
		default:
			if err := send(url, keys[f[0]], f[1]); err != nil {
				log.Printf("%s: %v", f[0], err)
			}
		}
	}
}

func send(url, key, value string) error {
	body, err := json.Marshal(map[string]string{key: value})
	if err != nil {
		return err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
