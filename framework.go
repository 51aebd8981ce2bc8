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

// WallFunction is an interface for near-wall closures that turn a face
// sample into a y+ value and an eddy viscosity increment. There is one
// implementation per turbulence closure family.
type WallFunction interface {
	// Name returns the name the wall function is selected by.
	Name() string

	// Solve calculates y+ for a single face. Faces are independent,
	// so Solve must be safe to call concurrently.
	Solve(f FaceSample) Solution

	// Nut returns the eddy viscosity increment [m²/s] for face f,
	// given the Solution previously returned by Solve for the same face.
	Nut(f FaceSample, s Solution) float64
}

// Solution holds the result of a per-face y+ iteration.
type Solution struct {
	YPlus      float64 `desc:"Dimensionless wall distance" units:"-"`
	Converged  bool    // Whether the last update was within tolerance.
	Iterations int     // Number of updates performed.
	Residual   float64 // Magnitude of the last update.
}

// Face holds the input sample and the calculated values of
// a single boundary face.
type Face struct {
	FaceSample
	Solution

	Nut float64 `desc:"Eddy viscosity increment" units:"m²/s"`

	Index int // position of the face within its patch
}

// Patch is a set of wall boundary faces.
type Patch struct {
	Name  string
	Faces []*Face
}

// NewPatch creates a patch holding one face per sample,
// in the same order.
func NewPatch(name string, samples []FaceSample) *Patch {
	p := &Patch{
		Name:  name,
		Faces: make([]*Face, len(samples)),
	}
	for i, s := range samples {
		p.Faces[i] = &Face{FaceSample: s, Index: i}
	}
	return p
}

// FaceManipulator is a function that operates on a single face.
type FaceManipulator func(f *Face)

// PatchManipulator is a function that operates on an entire patch.
type PatchManipulator func(p *Patch) error

// Evaluate runs funcs on p in order, stopping at the first error.
func Evaluate(p *Patch, funcs ...PatchManipulator) error {
	for _, f := range funcs {
		if err := f(p); err != nil {
			return err
		}
	}
	return nil
}
