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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ConvergenceStatus summarizes the y+ iterations over a patch.
type ConvergenceStatus struct {
	Faces         int
	Unconverged   int
	MaxIterations int
	MaxResidual   float64
	MinYPlus      float64
	MaxYPlus      float64
	MeanYPlus     float64
}

// Summarize returns the convergence status of faces, which must already
// have been solved.
func Summarize(faces []*Face) ConvergenceStatus {
	s := ConvergenceStatus{Faces: len(faces)}
	if len(faces) == 0 {
		return s
	}
	yp := make([]float64, len(faces))
	res := make([]float64, len(faces))
	for i, f := range faces {
		yp[i] = f.YPlus
		res[i] = f.Residual
		if !f.Converged {
			s.Unconverged++
		}
		if f.Iterations > s.MaxIterations {
			s.MaxIterations = f.Iterations
		}
	}
	s.MaxResidual = floats.Max(res)
	s.MinYPlus = floats.Min(yp)
	s.MaxYPlus = floats.Max(yp)
	s.MeanYPlus = stat.Mean(yp, nil)
	return s
}

// Summary returns a PatchManipulator that stores the convergence status
// of the patch in s.
func Summary(s *ConvergenceStatus) PatchManipulator {
	return func(p *Patch) error {
		*s = Summarize(p.Faces)
		return nil
	}
}

// Converged reports whether every face converged.
func (s ConvergenceStatus) Converged() bool {
	return s.Unconverged == 0
}

func (s ConvergenceStatus) String() string {
	if s.Faces == 0 {
		return "no faces"
	}
	if math.IsNaN(s.MaxResidual) || math.IsNaN(s.MeanYPlus) {
		return fmt.Sprintf("%d faces, %d unconverged, non-finite values present", s.Faces, s.Unconverged)
	}
	return fmt.Sprintf("%d faces, %d unconverged, max iterations=%d, max residual=%.3g, "+
		"y+ min=%.4g mean=%.4g max=%.4g", s.Faces, s.Unconverged, s.MaxIterations,
		s.MaxResidual, s.MinYPlus, s.MeanYPlus, s.MaxYPlus)
}
