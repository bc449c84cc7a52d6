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

// Package display holds the surfaces that the rendered watch face is shown on.
package display

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"net/http"
	"sync"

	"github.com/aamcrae/watchface/settings"
)

// Server serves the latest frame over HTTP, and accepts settings
// messages from a configuration page.
type Server struct {
	// Update is called with each settings message received.
	Update func(*settings.Message)
	mu     sync.Mutex
	frame  image.Image
	count  int
}

// NewServer creates a Server. update may be nil, in which case
// settings messages are rejected.
func NewServer(update func(*settings.Message)) *Server {
	return &Server{Update: update}
}

// Show stores the frame for the next request.
func (s *Server) Show(img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = img
	s.count++
	return nil
}

func (s *Server) latest() (image.Image, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.count
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/face.jpg", s.image("image/jpeg", func(b *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(b, img, &jpeg.Options{Quality: 90})
	}))
	mux.HandleFunc("/face.png", s.image("image/png", func(b *bytes.Buffer, img image.Image) error {
		return png.Encode(b, img)
	}))
	mux.HandleFunc("/settings", s.settings)
	return mux
}

// ListenAndServe starts the server on the port.
func (s *Server) ListenAndServe(port int) error {
	url := fmt.Sprintf(":%d", port)
	log.Printf("Starting server on %s", url)
	server := &http.Server{Addr: url, Handler: s.Handler()}
	return server.ListenAndServe()
}

func (s *Server) image(ctype string, enc func(*bytes.Buffer, image.Image) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, n := s.latest()
		if img == nil {
			http.Error(w, "no frame yet", http.StatusServiceUnavailable)
			return
		}
		var b bytes.Buffer
		if err := enc(&b, img); err != nil {
			log.Printf("Error encoding %s frame %d: %v", ctype, n, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", ctype)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(b.Bytes())
	}
}

func (s *Server) settings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	if s.Update == nil {
		http.Error(w, "settings are read only", http.StatusForbidden)
		return
	}
	m, err := settings.ParseMessage(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.Update(m)
	w.WriteHeader(http.StatusNoContent)
}
