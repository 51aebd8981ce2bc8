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
	"runtime"
	"sync"
)

// Calculations returns a function that concurrently runs a series of
// calculations on all of the faces in a patch. Each goroutine works on
// its own subset of faces, so no locking is needed.
func Calculations(calculators ...FaceManipulator) PatchManipulator {
	nprocs := runtime.GOMAXPROCS(0) // number of processors

	return func(p *Patch) error {
		var wg sync.WaitGroup
		wg.Add(nprocs)
		for pp := 0; pp < nprocs; pp++ {
			go func(pp int) {
				for ii := pp; ii < len(p.Faces); ii += nprocs {
					f := p.Faces[ii]
					for _, c := range calculators {
						c(f)
					}
				}
				wg.Done()
			}(pp)
		}
		wg.Wait()
		return nil
	}
}

// SolveFaces returns a function that calculates y+ for a face
// using wall function m.
func SolveFaces(m WallFunction) FaceManipulator {
	return func(f *Face) {
		f.Solution = m.Solve(f.FaceSample)
	}
}

// CalcNut returns a function that calculates the eddy viscosity
// increment for a face. It must run after SolveFaces.
func CalcNut(m WallFunction) FaceManipulator {
	return func(f *Face) {
		f.Nut = m.Nut(f.FaceSample, f.Solution)
	}
}

// Solutions returns the y+ Solution for each of the samples, in order.
func Solutions(m WallFunction, samples []FaceSample) []Solution {
	p := NewPatch("", samples)
	Calculations(SolveFaces(m))(p)
	o := make([]Solution, len(p.Faces))
	for i, f := range p.Faces {
		o[i] = f.Solution
	}
	return o
}

// YPlus returns the non-negative y+ value for each of the samples,
// in order.
func YPlus(m WallFunction, samples []FaceSample) []float64 {
	p := NewPatch("", samples)
	Calculations(SolveFaces(m))(p)
	o := make([]float64, len(p.Faces))
	for i, f := range p.Faces {
		o[i] = f.YPlus
	}
	return o
}

// EddyViscosity returns the non-negative eddy viscosity increment [m²/s]
// for each of the samples, in order.
func EddyViscosity(m WallFunction, samples []FaceSample) []float64 {
	p := NewPatch("", samples)
	Calculations(SolveFaces(m), CalcNut(m))(p)
	o := make([]float64, len(p.Faces))
	for i, f := range p.Faces {
		o[i] = f.Nut
	}
	return o
}
