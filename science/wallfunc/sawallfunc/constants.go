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
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Constants holds the calibration coefficients of the blending function.
type Constants struct {
	Bbar float64 `toml:"Bbar"`
	A1   float64 `toml:"a1"`
	A2   float64 `toml:"a2"`
	B1   float64 `toml:"b1"`
	B2   float64 `toml:"b2"`
	C1   float64 `toml:"c1"`
	C2   float64 `toml:"c2"`
	C3   float64 `toml:"c3"`
	C4   float64 `toml:"c4"`
}

// DefaultConstants returns the coefficients calibrated by
// Allmaras, Johnson and Spalart (2012).
func DefaultConstants() Constants {
	return Constants{
		Bbar: 5.0333908790505579,
		A1:   8.148221580024245,
		A2:   -6.9287093849022945,
		B1:   7.4600876082527945,
		B2:   7.468145790401841,
		C1:   2.5496773539754747,
		C2:   1.3301651588535228,
		C3:   3.599459109332379,
		C4:   3.6397531868684494,
	}
}

// Map returns the constants keyed by name.
func (c Constants) Map() map[string]float64 {
	return map[string]float64{
		"Bbar": c.Bbar,
		"a1":   c.A1,
		"a2":   c.A2,
		"b1":   c.B1,
		"b2":   c.B2,
		"c1":   c.C1,
		"c2":   c.C2,
		"c3":   c.C3,
		"c4":   c.C4,
	}
}

// ReadConstants reads constants in TOML format from r. Any constant not
// present in r keeps its default value.
func ReadConstants(r io.Reader) (Constants, error) {
	c := DefaultConstants()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return c, fmt.Errorf("sawallfunc: reading constants: %v", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return c, fmt.Errorf("sawallfunc: unknown constants %v", undec)
	}
	return c, nil
}

// WriteConstants writes all of the constants to w in TOML format.
func WriteConstants(w io.Writer, c Constants) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("sawallfunc: writing constants: %v", err)
	}
	return nil
}
