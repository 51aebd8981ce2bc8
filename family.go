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

import "math"

// Default wall function family constants.
const (
	DefaultKappa = 0.41 // von Kármán constant
	DefaultE     = 9.8  // log-law roughness parameter
)

// Family holds the constants shared by every wall function of the same
// family. They are supplied by the caller rather than looked up from the
// turbulence model.
type Family struct {
	Kappa float64 `desc:"von Kármán constant"`
	E     float64 `desc:"Log-law roughness parameter"`

	// YPlusLam is the y+ value at the intersection of the viscous
	// sublayer and the logarithmic layer. It is used to seed the
	// wall function iterations.
	YPlusLam float64
}

// NewFamily returns a Family with YPlusLam derived from kappa and e.
func NewFamily(kappa, e float64) Family {
	return Family{
		Kappa:    kappa,
		E:        e,
		YPlusLam: YPlusLam(kappa, e),
	}
}

// DefaultFamily returns the standard family (κ = 0.41, E = 9.8).
func DefaultFamily() Family {
	return NewFamily(DefaultKappa, DefaultE)
}

// YPlusLam returns the y+ at which the linear sublayer profile u+ = y+
// meets the log law u+ = ln(E y+)/κ.
func YPlusLam(kappa, e float64) float64 {
	ypl := 11.0
	for i := 0; i < 10; i++ {
		ypl = math.Log(math.Max(e*ypl, 1)) / kappa
	}
	return ypl
}
