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
	"runtime"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// linear is a wall function where y+ equals Re.
type linear struct{}

func (linear) Name() string { return "linear" }

func (linear) Solve(f FaceSample) Solution {
	return Solution{YPlus: f.Re(), Converged: f.Re() < 100, Iterations: int(f.Re()), Residual: f.Re() / 100}
}

func (linear) Nut(f FaceSample, s Solution) float64 { return f.Nu * s.YPlus }

func testSamples(n int) []FaceSample {
	samples := make([]FaceSample, n)
	for i := range samples {
		samples[i] = FaceSample{VelocityDiff: float64(i), WallDistance: 1, Nu: 0.5}
	}
	return samples
}

func TestCalculations(t *testing.T) {
	procs := runtime.GOMAXPROCS(0)
	for _, n := range []int{0, 1, procs - 1, procs, 3*procs + 1} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			p := NewPatch("wall", testSamples(n))
			if err := Evaluate(p, Calculations(SolveFaces(linear{}), CalcNut(linear{}))); err != nil {
				t.Fatal(err)
			}
			for i, f := range p.Faces {
				if f.Index != i {
					t.Errorf("face %d has index %d", i, f.Index)
				}
				if f.YPlus != 2*float64(i) {
					t.Errorf("face %d: y+ = %g", i, f.YPlus)
				}
				if f.Nut != float64(i) {
					t.Errorf("face %d: nut = %g", i, f.Nut)
				}
			}
		})
	}
}

func TestYPlusEddyViscosity(t *testing.T) {
	samples := testSamples(100)
	yp := YPlus(linear{}, samples)
	nut := EddyViscosity(linear{}, samples)
	sol := Solutions(linear{}, samples)
	if len(yp) != len(samples) || len(nut) != len(samples) || len(sol) != len(samples) {
		t.Fatalf("lengths %d, %d, %d != %d", len(yp), len(nut), len(sol), len(samples))
	}
	want := make([]float64, len(samples))
	for i := range want {
		want[i] = 2 * float64(i)
	}
	if !floats.Equal(yp, want) {
		t.Errorf("y+: have %v, want %v", yp, want)
	}
	floats.Scale(0.5, want)
	if !floats.Equal(nut, want) {
		t.Errorf("nut: have %v, want %v", nut, want)
	}
	for i, s := range sol {
		if s.YPlus != yp[i] {
			t.Errorf("solution %d: %+v", i, s)
		}
	}

	if len(YPlus(linear{}, nil)) != 0 || len(EddyViscosity(linear{}, nil)) != 0 {
		t.Error("no samples should give no results")
	}
}

func TestSummarize(t *testing.T) {
	p := NewPatch("wall", testSamples(60))
	var s ConvergenceStatus
	if err := Evaluate(p, Calculations(SolveFaces(linear{})), Summary(&s)); err != nil {
		t.Fatal(err)
	}
	want := ConvergenceStatus{
		Faces:         60,
		Unconverged:   10, // y+ = 100 ... 118
		MaxIterations: 118,
		MaxResidual:   1.18,
		MinYPlus:      0,
		MaxYPlus:      118,
		MeanYPlus:     59,
	}
	if s != want {
		t.Errorf("have %+v, want %+v", s, want)
	}
	if s.Converged() {
		t.Error("should not be converged")
	}
	if str := s.String(); str != "60 faces, 10 unconverged, max iterations=118, max residual=1.18, y+ min=0 mean=59 max=118" {
		t.Errorf("string: %s", str)
	}

	empty := Summarize(nil)
	if !empty.Converged() || empty.String() != "no faces" {
		t.Errorf("empty: %+v", empty)
	}

	nan := Summarize([]*Face{{Solution: Solution{YPlus: math.NaN(), Residual: math.NaN()}}})
	if nan.Converged() {
		t.Error("non-finite solution should not be converged")
	}
	if nan.String() != "1 faces, 1 unconverged, non-finite values present" {
		t.Errorf("string: %s", nan.String())
	}
}
