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

package face

import (
	"image"
	"math"
	"testing"
)

func TestCosLookup(t *testing.T) {
	for d := 0; d < 360; d++ {
		got := float64(cosLookup(FromDegrees(d))) / TrigMaxRatio
		want := math.Cos(float64(d) * math.Pi / 180)
		if math.Abs(got-want) > 0.0005 {
			t.Errorf("cos(%d) = %f, want %f", d, got, want)
		}
	}
	if c := cosLookup(FullTurn / 2); c != -TrigMaxRatio {
		t.Errorf("cos(180) = %d, want %d", c, -TrigMaxRatio)
	}
}

func TestSideDominant(t *testing.T) {
	tests := []struct {
		kind Kind
		deg  int
		want bool
	}{
		{Second, 0, false},
		{Second, 41, false},
		{Second, 42, true},
		{Second, 138, true},
		{Second, 139, false},
		{Second, 222, true},
		{Second, 318, true},
		{Second, 319, false},
		{Minute, 90, true},
		{Hour, 42, false},
		{Hour, 49, true},
		{Hour, 139, true},
		{Hour, 140, false},
		{Hour, 229, true},
		{Hour, 311, true},
		{Hour, 318, false},
	}
	for _, tc := range tests {
		if got := SideDominant(tc.kind, tc.deg); got != tc.want {
			t.Errorf("SideDominant(%s, %d) = %v, want %v", tc.kind, tc.deg, got, tc.want)
		}
	}
}

func TestReach(t *testing.T) {
	frame := image.Rect(0, 0, 144, 168)
	var g Geometry
	tests := []struct {
		kind Kind
		t    ClockTime
		want int
	}{
		{Second, ClockTime{Second: 0}, 84},
		{Second, ClockTime{Second: 15}, 72},
		{Second, ClockTime{Second: 30}, 84},
		{Second, ClockTime{Second: 45}, 72},
		{Minute, ClockTime{Minute: 0}, 84},
		{Hour, ClockTime{Hour: 3}, 72 - HourOffset},
		{Hour, ClockTime{Hour: 6}, 84 - HourOffset},
	}
	for _, tc := range tests {
		h := g.Hand(tc.kind, tc.t, frame)
		if r := h.Reach(); r != tc.want {
			t.Errorf("%s at %s: reach %d, want %d", tc.kind, tc.t, r, tc.want)
		}
	}
}

// The tip must point away from the pivot on both sides of every sector
// boundary, whatever the sign of the cosine.
func TestTipDirection(t *testing.T) {
	for _, k := range Kinds {
		for d := 0; d < 360; d++ {
			l := EdgeDistance(k, FromDegrees(d), FixedExtents)
			p, h := BuildHand(k, l)
			if p[tip].Y >= 0 {
				t.Fatalf("%s at %d: tip %v below pivot (length %f)", k, d, p[tip], l)
			}
			if p[leftShoulder].Y <= p[tip].Y || p[rightShoulder].Y != p[leftShoulder].Y {
				t.Fatalf("%s at %d: shoulders %v %v, tip %v", k, d, p[leftShoulder], p[rightShoulder], p[tip])
			}
			if h[1].Y <= p[leftShoulder].Y || h[1].Y >= 0 {
				t.Fatalf("%s at %d: highlight %v outside hand", k, d, h[1])
			}
		}
	}
}

func TestSmallFrame(t *testing.T) {
	g := Geometry{Extents: FrameExtents}
	frame := image.Rect(0, 0, 60, 60)
	for _, k := range Kinds {
		for m := 0; m < 60; m++ {
			ct := ClockTime{Hour: m / 5, Minute: m, Second: m}
			h := g.Hand(k, ct, frame)
			if h.Shape[tip].Y >= 0 || h.Highlight[1].Y >= 0 {
				t.Fatalf("%s at %s: tip %v, highlight %v not above pivot", k, ct, h.Shape[tip], h.Highlight[1])
			}
		}
	}
	// Hour hand at 3 o'clock is 30 long, shorter than its offset.
	p, h := BuildHand(Hour, 30)
	if p[tip].Y != -minReach || h[1].Y != -minReach {
		t.Errorf("short hour hand: tip %v, highlight %v", p[tip], h[1])
	}
}

func TestPivotUnchanged(t *testing.T) {
	for _, k := range Kinds {
		tmpl := Template(k)
		p, h := BuildHand(k, -100)
		for i := 0; i < 3; i++ {
			if p[i] != tmpl[i] {
				t.Errorf("%s: pivot point %d moved from %v to %v", k, i, tmpl[i], p[i])
			}
		}
		if h[0] != (image.Point{}) {
			t.Errorf("%s: highlight start moved to %v", k, h[0])
		}
		if p[tip].X != tmpl[tip].X || p[leftShoulder].X != tmpl[leftShoulder].X {
			t.Errorf("%s: X coordinates changed", k)
		}
	}
	// The template itself is never modified.
	if Template(Second)[tip].Y != -65 {
		t.Errorf("template modified: %v", Template(Second))
	}
}

func TestHourShorter(t *testing.T) {
	for hr := 0; hr < 12; hr++ {
		for m := 0; m < 60; m++ {
			a := AngleOf(Hour, ClockTime{Hour: hr, Minute: m})
			hp, _ := BuildHand(Hour, EdgeDistance(Hour, a, FixedExtents))
			mp, _ := BuildHand(Minute, EdgeDistance(Minute, a, FixedExtents))
			if -hp[tip].Y >= -mp[tip].Y {
				t.Errorf("%d:%02d: hour reach %d not less than minute reach %d", hr, m, -hp[tip].Y, -mp[tip].Y)
			}
		}
	}
}

func TestEdgeLengthClamp(t *testing.T) {
	limit := FixedExtents.MaxReach()
	if limit != 168 {
		t.Fatalf("MaxReach = %f, want 168", limit)
	}
	tests := []struct {
		c    int32
		want float64
	}{
		{0, limit},
		{1, limit},
		{-1, -limit},
		{TrigMaxRatio, 72 * FullTurn / float64(TrigMaxRatio)},
	}
	for _, tc := range tests {
		if got := edgeLength(72, tc.c, limit); got != tc.want {
			t.Errorf("edgeLength(72, %d) = %f, want %f", tc.c, got, tc.want)
		}
	}
}

func TestExtents(t *testing.T) {
	frame := image.Rect(0, 0, 200, 100)
	if e := Fixed(frame); e != FixedExtents {
		t.Errorf("Fixed = %v, want %v", e, FixedExtents)
	}
	if e := FrameExtents(frame); e != (Extents{100, 50}) {
		t.Errorf("FrameExtents = %v", e)
	}
	g := Geometry{Extents: FrameExtents}
	if r := g.Hand(Minute, ClockTime{Minute: 15}, frame).Reach(); r != 100 {
		t.Errorf("minute at 15 on wide frame: reach %d, want 100", r)
	}
	for _, name := range []string{"", "fixed", "frame"} {
		f, err := ExtentsNamed(name)
		if err != nil {
			t.Fatalf("%q: %v", name, err)
		}
		want := FixedExtents
		if name == "frame" {
			want = Extents{100, 50}
		}
		if e := f(frame); e != want {
			t.Errorf("%q: extents %v, want %v", name, e, want)
		}
	}
	if _, err := ExtentsNamed("round"); err == nil {
		t.Errorf("unknown extents accepted")
	}
}
