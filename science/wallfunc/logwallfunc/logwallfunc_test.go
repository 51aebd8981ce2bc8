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

package logwallfunc_test

import (
	"math"
	"testing"

	"github.com/spatialmodel/wallfunc"
	"github.com/spatialmodel/wallfunc/science/wallfunc/logwallfunc"
	"github.com/spatialmodel/wallfunc/science/wallfunc/sawallfunc"
)

func TestLogWallFunction(t *testing.T) {
	m := logwallfunc.New(wallfunc.DefaultFamily())
	samples := []wallfunc.FaceSample{
		{VelocityDiff: 1, WallDistance: 0.01, Nu: 1.e-5},     // Re = 1000
		{VelocityDiff: 1.e-3, WallDistance: 0.01, Nu: 1.e-5}, // Re = 1
		{VelocityDiff: 10, WallDistance: 0.01, Nu: 1.e-5},    // Re = 10000
	}
	yp := wallfunc.YPlus(m, samples)
	nut := wallfunc.EddyViscosity(m, samples)

	for i, test := range []struct{ yp, nut float64 }{
		{yp: 63.69875639491041, nut: 3.0575309085080905e-05},
		{yp: 0.34080496895338563, nut: 0},
		{yp: 484.3378650364871, nut: 0.00022458316750785285},
	} {
		if math.Abs(yp[i]-test.yp) > 1.e-9*test.yp {
			t.Errorf("face %d y+: have %g, want %g", i, yp[i], test.yp)
		}
		if math.Abs(nut[i]-test.nut) > 1.e-6*test.nut {
			t.Errorf("face %d nut: have %g, want %g", i, nut[i], test.nut)
		}
	}
}

// In the log layer the two wall functions should roughly agree.
func TestLogLawMatchesSA(t *testing.T) {
	fam := wallfunc.DefaultFamily()
	log := logwallfunc.New(fam)
	sa := sawallfunc.New(fam, sawallfunc.DefaultConstants())
	for _, re := range []float64{1.e3, 1.e4, 1.e5} {
		f := wallfunc.FaceSample{VelocityDiff: re, WallDistance: 1, Nu: 1}
		a := log.Solve(f).YPlus
		b := sa.Solve(f).YPlus
		if math.Abs(a-b)/b > 0.05 {
			t.Errorf("Re=%g: log law y+=%g, SA y+=%g", re, a, b)
		}
	}
}

func TestLogWallFunctionIterationCap(t *testing.T) {
	s := logwallfunc.Solve(1.e4, wallfunc.DefaultFamily())
	if s.Iterations > logwallfunc.MaxIterations {
		t.Errorf("%d iterations > %d", s.Iterations, logwallfunc.MaxIterations)
	}
	if !s.Converged {
		t.Errorf("should converge: %+v", s)
	}
}
