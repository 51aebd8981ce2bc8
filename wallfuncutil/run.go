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
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/wallfunc"
	"github.com/spatialmodel/wallfunc/internal/hash"
	"github.com/spf13/cobra"
)

// Run reads the wall face samples in InputFile, solves for y+ at each
// face using wall function m, and writes the results to OutputFile.
// If nut is true, the eddy viscosity increment is calculated and
// written as well.
//
// LogFile is the path to a file where log messages should be copied.
// If it is empty, messages are only written to the standard error
// of CobraCommand.
func Run(CobraCommand *cobra.Command, LogFile, InputFile, OutputFile string, m wallfunc.WallFunction, nut bool) error {
	startTime := time.Now()

	prevOut := Log.Out
	defer Log.SetOutput(prevOut)
	if LogFile != "" {
		logfile, err := os.Create(LogFile)
		if err != nil {
			return fmt.Errorf("wallfunc: problem creating log file: %v", err)
		}
		defer logfile.Close()
		Log.SetOutput(io.MultiWriter(CobraCommand.ErrOrStderr(), logfile))
	}

	f, err := os.Open(InputFile)
	if err != nil {
		return fmt.Errorf("wallfunc: opening InputFile: %v", err)
	}
	samples, err := wallfunc.ReadFaceSamples(f)
	f.Close()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("wallfunc: InputFile %s has no faces", InputFile)
	}
	for i, s := range samples {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%v (face %d)", err, i)
		}
	}

	logger := Log.WithFields(logrus.Fields{
		"model":  m.Name(),
		"config": hash.Hash(m),
		"faces":  len(samples),
	})
	logger.Info("solving wall faces")

	p := wallfunc.NewPatch(filepath.Base(InputFile), samples)
	calcs := []wallfunc.FaceManipulator{wallfunc.SolveFaces(m)}
	if nut {
		calcs = append(calcs, wallfunc.CalcNut(m))
	}
	var status wallfunc.ConvergenceStatus
	if err := wallfunc.Evaluate(p,
		wallfunc.Calculations(calcs...),
		wallfunc.Summary(&status),
	); err != nil {
		return err
	}

	logger = logger.WithField("walltime", time.Since(startTime).String())
	if status.Converged() {
		logger.Info(status.String())
	} else {
		logger.Warn(status.String())
	}

	return withOutput(CobraCommand, OutputFile, func(w io.Writer) error {
		if nut {
			return wallfunc.WriteFaces(w, p.Faces)
		}
		return wallfunc.WriteYPlus(w, p.Faces)
	})
}
