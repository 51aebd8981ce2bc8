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

// Package sawallfunc provides the wall function that is consistent with
// the Spalart-Allmaras turbulence model, as described in:
//
// Allmaras, S. R., Johnson, F. T., and Spalart, P. R. (2012).
// Modifications and clarifications for the implementation of the
// Spalart-Allmaras turbulence model. ICCFD7-1902.
//
// A single analytic velocity profile covers both the viscous sublayer
// and the logarithmic layer, so the model is valid for any first-cell
// height.
package sawallfunc

import (
	"math"

	"github.com/spatialmodel/wallfunc"
)

// Iteration controls for Solve.
const (
	Tolerance     = 1e-8
	MaxIterations = 1000
)

// Name is the name the model is selected by.
const Name = "sa"

// Blend returns the composite velocity profile u+ at yp.
func Blend(yp float64, c Constants) float64 {
	return c.Bbar +
		c.C1*math.Log((yp+c.A1)*(yp+c.A1)+c.B1*c.B1) -
		c.C2*math.Log((yp+c.A2)*(yp+c.A2)+c.B2*c.B2) -
		c.C3*math.Atan2(c.B1, yp+c.A1) -
		c.C4*math.Atan2(c.B2, yp+c.A2)
}

// Solve finds the y+ for which y+ u+(y+) = re by fixed-point iteration,
// starting from yPlusLam. Iteration stops when an update is within
// Tolerance or after MaxIterations updates; in the latter case the last
// value is returned with Converged set to false.
func Solve(re, kappa, yPlusLam float64, c Constants) wallfunc.Solution {
	yp := yPlusLam
	var s wallfunc.Solution
	for {
		last := yp
		yp = (re + kappa*yp) / (kappa + Blend(yp, c))
		s.Iterations++
		s.Residual = math.Abs(yp - last)
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

// Model is the Spalart-Allmaras wall function.
// It implements wallfunc.WallFunction.
type Model struct {
	family    wallfunc.Family
	constants Constants

	// DivisorFloor is the minimum magnitude of u+ used when
	// calculating eddy viscosity. Zero disables the floor.
	DivisorFloor float64
}

// New returns a new model with the given family and constants.
func New(family wallfunc.Family, c Constants) *Model {
	return &Model{family: family, constants: c}
}

// Name returns the model name.
func (m *Model) Name() string { return Name }

// Family returns the model's family constants.
func (m *Model) Family() wallfunc.Family { return m.family }

// Constants returns the model's calibration constants.
func (m *Model) Constants() Constants { return m.constants }

// Solve calculates y+ for face f.
func (m *Model) Solve(f wallfunc.FaceSample) wallfunc.Solution {
	return Solve(f.Re(), m.family.Kappa, m.family.YPlusLam, m.constants)
}

// Nut returns the eddy viscosity increment nu (y+/u+ - 1), limited
// to be non-negative.
func (m *Model) Nut(f wallfunc.FaceSample, s wallfunc.Solution) float64 {
	up := Blend(s.YPlus, m.constants)
	if m.DivisorFloor > 0 && math.Abs(up) < m.DivisorFloor {
		up = math.Copysign(m.DivisorFloor, up)
	}
	return math.Max(f.Nu*(s.YPlus/up-1), 0)
}

// YPlus returns the y+ value of each sample.
func (m *Model) YPlus(samples []wallfunc.FaceSample) []float64 {
	return wallfunc.YPlus(m, samples)
}

// EddyViscosity returns the eddy viscosity increment of each sample.
func (m *Model) EddyViscosity(samples []wallfunc.FaceSample) []float64 {
	return wallfunc.EddyViscosity(m, samples)
}
