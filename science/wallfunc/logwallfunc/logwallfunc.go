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

// Package logwallfunc provides a standard velocity-based wall function
// that assumes the first cell center lies in the logarithmic layer.
// Faces below the laminar intersection y+ get no eddy viscosity.
package logwallfunc

import (
	"math"

	"github.com/spatialmodel/wallfunc"
)

// Iteration controls for Solve. Tolerance is relative to y+_lam.
const (
	Tolerance     = 0.01
	MaxIterations = 10
)

// Name is the name the model is selected by.
const Name = "loglaw"

// Solve finds y+ from the log law u+ = ln(E y+)/κ given the cell
// Reynolds number re.
func Solve(re float64, f wallfunc.Family) wallfunc.Solution {
	kappaRe := f.Kappa * re
	yp := f.YPlusLam
	var s wallfunc.Solution
	for {
		last := yp
		yp = (kappaRe + yp) / (1 + math.Log(f.E*yp))
		s.Iterations++
		s.Residual = math.Abs(yp-last) / f.YPlusLam
		if !(s.Residual > Tolerance) || s.Iterations >= MaxIterations {
			break
		}
	}
	s.Converged = s.Residual <= Tolerance
	s.YPlus = yp
	if yp < 0 {
		s.YPlus = 0
	}
	return s
}

// Model is the log-law wall function. It implements wallfunc.WallFunction.
type Model struct {
	family wallfunc.Family
}

// New returns a new model using the given family constants.
func New(family wallfunc.Family) *Model {
	return &Model{family: family}
}

// Name returns the model name.
func (m *Model) Name() string { return Name }

// Solve calculates y+ for face f.
func (m *Model) Solve(f wallfunc.FaceSample) wallfunc.Solution {
	return Solve(f.Re(), m.family)
}

// Nut returns the eddy viscosity increment nu (y+ κ/ln(E y+) - 1) for
// faces in the log layer and zero otherwise.
func (m *Model) Nut(f wallfunc.FaceSample, s wallfunc.Solution) float64 {
	if s.YPlus <= m.family.YPlusLam {
		return 0
	}
	return f.Nu * (s.YPlus*m.family.Kappa/math.Log(m.family.E*s.YPlus) - 1)
}
