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
	"math"
)

// TrigMaxRatio is the fixed point value of 1.0 returned by the lookups.
const TrigMaxRatio = 0xffff

const (
	lutShift = 6
	lutSize  = FullTurn >> lutShift
	lutMask  = 1<<lutShift - 1
)

// One extra entry so that interpolation at the end of the table
// does not need to wrap.
var cosLUT [lutSize + 1]int32

func init() {
	for i := range cosLUT {
		rad := 2 * math.Pi * float64(i) / lutSize
		cosLUT[i] = int32(math.Round(math.Cos(rad) * TrigMaxRatio))
	}
}

// cosLookup returns the cosine of the angle, scaled by TrigMaxRatio.
func cosLookup(a Angle) int32 {
	a = a.Normalize()
	i := a >> lutShift
	frac := int32(a & lutMask)
	v0 := cosLUT[i]
	v1 := cosLUT[i+1]
	return v0 + (v1-v0)*frac/(lutMask+1)
}

// sinLookup returns the sine of the angle, scaled by TrigMaxRatio.
func sinLookup(a Angle) int32 {
	return cosLookup(a - FullTurn/4)
}
