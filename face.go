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

package wallfunc

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// Meter2PerSecond is the dimension of kinematic viscosity [m²/s].
var Meter2PerSecond = unit.Dimensions{
	unit.LengthDim: 2,
	unit.TimeDim:   -1,
}

// FaceSample holds the near-wall flow state sampled at a single
// boundary face.
type FaceSample struct {
	VelocityDiff float64 `csv:"magUp" desc:"Magnitude of near-wall cell velocity minus wall velocity" units:"m/s"`
	WallDistance float64 `csv:"y" desc:"Distance from the wall to the first cell center" units:"m"`
	Nu           float64 `csv:"nuw" desc:"Kinematic viscosity at the wall face" units:"m²/s"`
}

// NewFaceSample creates a FaceSample from dimensioned quantities,
// returning an error if du is not a velocity, y is not a length, or
// nu is not a kinematic viscosity.
func NewFaceSample(du, y, nu *unit.Unit) (FaceSample, error) {
	if err := du.Check(unit.MeterPerSecond); err != nil {
		return FaceSample{}, fmt.Errorf("wallfunc: velocity difference: %v", err)
	}
	if err := y.Check(unit.Meter); err != nil {
		return FaceSample{}, fmt.Errorf("wallfunc: wall distance: %v", err)
	}
	if err := nu.Check(Meter2PerSecond); err != nil {
		return FaceSample{}, fmt.Errorf("wallfunc: kinematic viscosity: %v", err)
	}
	return FaceSample{
		VelocityDiff: du.Value(),
		WallDistance: y.Value(),
		Nu:           nu.Value(),
	}, nil
}

// Re returns the cell Reynolds number |Up - Uw| y / nu. A zero viscosity
// gives an infinite or undefined result, which is passed on to the
// wall function unchanged.
func (f FaceSample) Re() float64 {
	return f.VelocityDiff * f.WallDistance / f.Nu
}

// Validate returns an error if the sample would give a degenerate
// Reynolds number.
func (f FaceSample) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"velocity difference", f.VelocityDiff},
		{"wall distance", f.WallDistance},
		{"kinematic viscosity", f.Nu},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("wallfunc: %s is not finite (%g)", v.name, v.val)
		}
	}
	if f.VelocityDiff < 0 {
		return fmt.Errorf("wallfunc: velocity difference must not be negative (%g)", f.VelocityDiff)
	}
	if f.WallDistance <= 0 {
		return fmt.Errorf("wallfunc: wall distance must be positive (%g)", f.WallDistance)
	}
	if f.Nu <= 0 {
		return fmt.Errorf("wallfunc: kinematic viscosity must be positive (%g)", f.Nu)
	}
	return nil
}
