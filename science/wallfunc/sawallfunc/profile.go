/*
Copyright © 2026 the wallfunc authors.
This file is part of wallfunc.

wallfunc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

wallfunc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with wallfunc.  If not, see <http://www.gnu.org/licenses/>.
*/

package sawallfunc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ProfilePoint holds the blended velocity profile and its two
// asymptotes at a single y+.
type ProfilePoint struct {
	YPlus   float64 `csv:"yPlus"`
	UPlus   float64 `csv:"uPlus"`   // blended profile
	Viscous float64 `csv:"viscous"` // u+ = y+
	LogLaw  float64 `csv:"logLaw"`  // u+ = ln(y+)/κ + Bbar
}

// Profile returns n points of the velocity profile, logarithmically
// spaced between yPlusMin and yPlusMax.
func Profile(c Constants, kappa, yPlusMin, yPlusMax float64, n int) ([]ProfilePoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("sawallfunc: profile needs at least 2 points, got %d", n)
	}
	if yPlusMin <= 0 || yPlusMax <= yPlusMin {
		return nil, fmt.Errorf("sawallfunc: invalid profile range [%g, %g]", yPlusMin, yPlusMax)
	}
	yp := floats.LogSpan(make([]float64, n), yPlusMin, yPlusMax)
	o := make([]ProfilePoint, n)
	for i, y := range yp {
		o[i] = ProfilePoint{
			YPlus:   y,
			UPlus:   Blend(y, c),
			Viscous: y,
			LogLaw:  math.Log(y)/kappa + c.Bbar,
		}
	}
	return o, nil
}
