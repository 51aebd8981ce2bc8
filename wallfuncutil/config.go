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

package wallfuncutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/wallfunc"
	"github.com/spatialmodel/wallfunc/science/wallfunc/logwallfunc"
	"github.com/spatialmodel/wallfunc/science/wallfunc/sawallfunc"
	"github.com/spf13/cast"
)

// NewWallFunction returns the wall function selected by the
// "WallFunction" configuration variable.
func NewWallFunction(cfg *viper.Viper) (wallfunc.WallFunction, error) {
	fam, err := Family(cfg)
	if err != nil {
		return nil, err
	}
	switch name := cfg.GetString("WallFunction"); name {
	case sawallfunc.Name:
		c, err := SAConstants(cfg)
		if err != nil {
			return nil, err
		}
		floor, err := getFloat(cfg, "SA.DivisorFloor")
		if err != nil {
			return nil, err
		}
		if floor < 0 {
			return nil, fmt.Errorf("wallfunc: SA.DivisorFloor must not be negative (%g)", floor)
		}
		m := sawallfunc.New(fam, c)
		m.DivisorFloor = floor
		return m, nil
	case logwallfunc.Name:
		return logwallfunc.New(fam), nil
	default:
		return nil, fmt.Errorf("wallfunc: invalid WallFunction '%s'; valid options are '%s' and '%s'",
			name, sawallfunc.Name, logwallfunc.Name)
	}
}

// Family returns the wall function family constants specified by
// the "Kappa", "E", and "YPlusLam" configuration variables.
func Family(cfg *viper.Viper) (wallfunc.Family, error) {
	kappa, err := getFloat(cfg, "Kappa")
	if err != nil {
		return wallfunc.Family{}, err
	}
	e, err := getFloat(cfg, "E")
	if err != nil {
		return wallfunc.Family{}, err
	}
	if kappa <= 0 || e <= 0 {
		return wallfunc.Family{}, fmt.Errorf("wallfunc: Kappa (%g) and E (%g) must be positive", kappa, e)
	}
	fam := wallfunc.NewFamily(kappa, e)
	ypl, err := getFloat(cfg, "YPlusLam")
	if err != nil {
		return fam, err
	}
	if ypl < 0 {
		return fam, fmt.Errorf("wallfunc: YPlusLam must not be negative (%g)", ypl)
	}
	if ypl > 0 {
		fam.YPlusLam = ypl
	}
	return fam, nil
}

// SAConstants returns the Spalart-Allmaras wall function constants,
// either from the file given by "SA.ConstantsFile" or from the
// individual "SA.*" configuration variables.
func SAConstants(cfg *viper.Viper) (sawallfunc.Constants, error) {
	if f := cfg.GetString("SA.ConstantsFile"); f != "" {
		r, err := os.Open(os.ExpandEnv(f))
		if err != nil {
			return sawallfunc.Constants{}, fmt.Errorf("wallfunc: opening SA.ConstantsFile: %v", err)
		}
		defer r.Close()
		return sawallfunc.ReadConstants(r)
	}
	var c sawallfunc.Constants
	for _, v := range []struct {
		name string
		val  *float64
	}{
		{"SA.Bbar", &c.Bbar},
		{"SA.a1", &c.A1},
		{"SA.a2", &c.A2},
		{"SA.b1", &c.B1},
		{"SA.b2", &c.B2},
		{"SA.c1", &c.C1},
		{"SA.c2", &c.C2},
		{"SA.c3", &c.C3},
		{"SA.c4", &c.C4},
	} {
		var err error
		if *v.val, err = getFloat(cfg, v.name); err != nil {
			return c, err
		}
	}
	return c, nil
}

// getFloat returns the configuration variable name as a float,
// or an error if it can't be converted.
func getFloat(cfg *viper.Viper, name string) (float64, error) {
	v, err := cast.ToFloat64E(cfg.Get(name))
	if err != nil {
		return 0, fmt.Errorf("wallfunc: reading '%s': %v", name, err)
	}
	return v, nil
}

// checkInputFile makes sure that the input file is specified and
// exists, and expands any environment variables.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an input file configuration variable (for example: InputFile="faces.csv")`)
	}
	f = os.ExpandEnv(f)
	if _, err := os.Stat(f); err != nil {
		return f, fmt.Errorf("wallfunc: the InputFile doesn't exist: %v", err)
	}
	return f, nil
}

// checkOutputFile makes sure that the output file directory exists.
func checkOutputFile(f string) error {
	if f == "" {
		return nil
	}
	if _, err := os.Stat(filepath.Dir(f)); err != nil {
		return fmt.Errorf("wallfunc: the OutputFile directory doesn't exist: %v", err)
	}
	return nil
}

// outputter is the standard output of a command.
type outputter interface {
	OutOrStdout() io.Writer
}

// withOutput calls write with the file at path, or with the standard
// output of cmd if path is empty.
func withOutput(cmd outputter, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	if err := checkOutputFile(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wallfunc: creating output file: %v", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
