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
	"math"
	"testing"

	"github.com/spatialmodel/wallfunc"
	"gonum.org/v1/gonum/floats"
)

const (
	testKappa    = 0.41
	testYPlusLam = 10.8
)

func testModel() *Model {
	return New(wallfunc.Family{Kappa: testKappa, E: wallfunc.DefaultE, YPlusLam: testYPlusLam}, DefaultConstants())
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestBlend(t *testing.T) {
	c := DefaultConstants()
	if v := Blend(0, c); math.Abs(v) > 1.e-12 {
		t.Errorf("u+ at the wall should be zero but is %g", v)
	}
	for _, test := range []struct {
		yp, want float64
	}{
		{yp: 1, want: 0.9999842122926772},
		{yp: 10.8, want: 9.4093766218892},
		{yp: 100, want: 16.3202160757103},
	} {
		if v := Blend(test.yp, c); different(v, test.want, 1.e-10) {
			t.Errorf("y+=%g: have %g, want %g", test.yp, v, test.want)
		}
	}

	// Viscous sublayer: u+ = y+.
	for _, yp := range []float64{0.01, 0.1, 0.5} {
		if v := Blend(yp, c); different(v, yp, 1.e-3) {
			t.Errorf("sublayer y+=%g: u+=%g", yp, v)
		}
	}
	// Log layer: u+ = ln(y+)/κ + Bbar.
	for _, yp := range []float64{1e4, 1e5, 1e6} {
		want := math.Log(yp)/testKappa + c.Bbar
		if v := Blend(yp, c); math.Abs(v-want) > 1.e-3 {
			t.Errorf("log layer y+=%g: have %g, want %g", yp, v, want)
		}
	}
}

func TestSolve(t *testing.T) {
	s := Solve(1000, testKappa, testYPlusLam, DefaultConstants())
	if !s.Converged {
		t.Errorf("should have converged: %+v", s)
	}
	if s.Iterations != 13 {
		t.Errorf("iterations: have %d, want 13", s.Iterations)
	}
	if s.Residual > Tolerance {
		t.Errorf("residual %g > %g", s.Residual, Tolerance)
	}
	const want = 65.34718672813582
	if different(s.YPlus, want, 1.e-9) {
		t.Errorf("y+: have %g, want %g", s.YPlus, want)
	}
	// The root should sit in the log layer.
	uPlus := 1000 / s.YPlus
	logLaw := math.Log(s.YPlus)/testKappa + DefaultConstants().Bbar
	if s.YPlus < 30 || math.Abs(uPlus-logLaw) > 0.2 {
		t.Errorf("y+=%g, u+=%g is not consistent with the log law (%g)", s.YPlus, uPlus, logLaw)
	}
}

func TestSolveZeroRe(t *testing.T) {
	s := Solve(0, testKappa, testYPlusLam, DefaultConstants())
	if s.Converged {
		t.Errorf("Re = 0 should not converge within %d iterations: %+v", MaxIterations, s)
	}
	if s.Iterations != MaxIterations {
		t.Errorf("iterations: have %d, want %d", s.Iterations, MaxIterations)
	}
	if s.YPlus < 0 || s.YPlus > 1.e-3 {
		t.Errorf("y+ should be small and non-negative but is %g", s.YPlus)
	}
}

func TestConvergenceBound(t *testing.T) {
	c := DefaultConstants()
	re := floats.LogSpan(make([]float64, 91), 1.e-3, 1.e6)
	for _, r := range re {
		s := Solve(r, testKappa, testYPlusLam, c)
		if !s.Converged {
			t.Errorf("Re=%g did not converge: %+v", r, s)
		}
		bound := 150
		if r >= 100 {
			bound = 50
		}
		if s.Iterations >= bound {
			t.Errorf("Re=%g: %d iterations, want < %d", r, s.Iterations, bound)
		}
	}
}

func TestMonotonic(t *testing.T) {
	m := testModel()
	const nu = 1.5e-5
	var samples []wallfunc.FaceSample
	for _, du := range floats.LogSpan(make([]float64, 50), 1.e-3, 1.e3) {
		samples = append(samples, wallfunc.FaceSample{VelocityDiff: du, WallDistance: 1.e-3, Nu: nu})
	}
	yp := m.YPlus(samples)
	nut := m.EddyViscosity(samples)
	for i := 1; i < len(yp); i++ {
		if yp[i] <= yp[i-1] {
			t.Errorf("y+ should increase with velocity: y+[%d]=%g, y+[%d]=%g", i-1, yp[i-1], i, yp[i])
		}
	}
	for i := range yp {
		if yp[i] < 0 || nut[i] < 0 {
			t.Errorf("face %d: y+=%g, nut=%g should be non-negative", i, yp[i], nut[i])
		}
	}
}

func TestModel(t *testing.T) {
	m := testModel()
	samples := []wallfunc.FaceSample{
		{VelocityDiff: 1, WallDistance: 0.01, Nu: 1.e-5},
		{VelocityDiff: 0, WallDistance: 0.01, Nu: 1.e-5},
		{VelocityDiff: 1.e-6, WallDistance: 0.01, Nu: 1.e-5},
		{VelocityDiff: 10, WallDistance: 0.01, Nu: 1.e-5},
	}
	yp := m.YPlus(samples)
	nut := m.EddyViscosity(samples)
	if len(yp) != len(samples) || len(nut) != len(samples) {
		t.Fatalf("length mismatch: %d, %d, %d", len(samples), len(yp), len(nut))
	}
	if different(yp[0], 65.34718672813582, 1.e-9) {
		t.Errorf("y+: have %g", yp[0])
	}
	if want := 3.2702548132486895e-05; different(nut[0], want, 1.e-6) {
		t.Errorf("nut: have %g, want %g", nut[0], want)
	}
	if nut[1] > 1.e-12 {
		t.Errorf("nut with no velocity should vanish but is %g", nut[1])
	}
	// Laminar limit: y+ = sqrt(Re) and no eddy viscosity.
	if different(yp[2], math.Sqrt(samples[2].Re()), 1.e-3) {
		t.Errorf("laminar y+: have %g, want %g", yp[2], math.Sqrt(samples[2].Re()))
	}
	if nut[2] > 1.e-12 {
		t.Errorf("laminar nut should vanish but is %g", nut[2])
	}
	if yp[3] <= yp[0] || nut[3] <= nut[0] {
		t.Errorf("faster flow should give larger y+ and nut: %v, %v", yp, nut)
	}

	// Results must not depend on the order of evaluation.
	yp2 := m.YPlus([]wallfunc.FaceSample{samples[3], samples[0]})
	if yp2[0] != yp[3] || yp2[1] != yp[0] {
		t.Errorf("order: have %v, want [%g %g]", yp2, yp[3], yp[0])
	}
}

func TestModelEmpty(t *testing.T) {
	m := testModel()
	if yp := m.YPlus(nil); len(yp) != 0 {
		t.Errorf("y+ of no faces: %v", yp)
	}
	if nut := m.EddyViscosity([]wallfunc.FaceSample{}); len(nut) != 0 {
		t.Errorf("nut of no faces: %v", nut)
	}
}

func TestDeterministic(t *testing.T) {
	m := testModel()
	var samples []wallfunc.FaceSample
	for i := 0; i < 200; i++ {
		samples = append(samples, wallfunc.FaceSample{
			VelocityDiff: 0.05 * float64(i),
			WallDistance: 1.e-4 * float64(i%7+1),
			Nu:           1.e-6 * float64(i%3+1),
		})
	}
	a := m.EddyViscosity(samples)
	b := m.EddyViscosity(samples)
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Errorf("face %d: %g != %g", i, a[i], b[i])
		}
	}
}

func TestDegenerate(t *testing.T) {
	m := testModel()
	s := m.Solve(wallfunc.FaceSample{VelocityDiff: 1, WallDistance: 0.01, Nu: 0})
	if !math.IsNaN(s.YPlus) {
		t.Errorf("zero viscosity should give a non-finite y+, got %g", s.YPlus)
	}
	if s.Converged {
		t.Error("zero viscosity should not be reported as converged")
	}
}

func TestDivisorFloor(t *testing.T) {
	f := wallfunc.FaceSample{VelocityDiff: 1, WallDistance: 0.01, Nu: 1.e-5}
	m := testModel()
	s := m.Solve(f)
	want := m.Nut(f, s)

	m.DivisorFloor = 1.e-300
	if v := m.Nut(f, s); v != want {
		t.Errorf("an inactive floor should not change nut: %g != %g", v, want)
	}
	m.DivisorFloor = 1.e6
	if v := m.Nut(f, s); v != 0 {
		t.Errorf("a large floor should limit nut to zero but it is %g", v)
	}
}

func TestWallFunction(t *testing.T) {
	var m wallfunc.WallFunction = testModel()
	if m.Name() != "sa" {
		t.Errorf("name: %s", m.Name())
	}
}
