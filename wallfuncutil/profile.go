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
	"image/color"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/spatialmodel/wallfunc/science/wallfunc/sawallfunc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Range of y+ over which the asymptotes are drawn.
const (
	viscousPlotMax = 30.
	logLawPlotMin  = 1.
)

// Profile writes n points of the Spalart-Allmaras velocity profile between
// yPlusMin and yPlusMax to outputFile in CSV format, or to the standard
// output of cmd if outputFile is empty. If plotFile is not empty, a plot
// of the profile is saved there as well.
func Profile(cmd outputter, c sawallfunc.Constants, kappa, yPlusMin, yPlusMax float64, n int, outputFile, plotFile string) error {
	pts, err := sawallfunc.Profile(c, kappa, yPlusMin, yPlusMax, n)
	if err != nil {
		return err
	}
	if err := withOutput(cmd, outputFile, func(w io.Writer) error {
		if err := gocsv.Marshal(pts, w); err != nil {
			return fmt.Errorf("wallfunc: writing profile: %v", err)
		}
		return nil
	}); err != nil {
		return err
	}
	if plotFile == "" {
		return nil
	}
	if err := checkOutputFile(plotFile); err != nil {
		return err
	}
	return plotProfile(pts, plotFile)
}

func plotProfile(pts []sawallfunc.ProfilePoint, plotFile string) error {
	var blend, viscous, logLaw plotter.XYs
	for _, pt := range pts {
		blend = append(blend, plotter.XY{X: pt.YPlus, Y: pt.UPlus})
		if pt.YPlus <= viscousPlotMax {
			viscous = append(viscous, plotter.XY{X: pt.YPlus, Y: pt.Viscous})
		}
		if pt.YPlus >= logLawPlotMin {
			logLaw = append(logLaw, plotter.XY{X: pt.YPlus, Y: pt.LogLaw})
		}
	}

	p := plot.New()
	p.Title.Text = "Spalart-Allmaras wall function"
	p.X.Label.Text = "y+"
	p.Y.Label.Text = "u+"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.Left = true

	for _, l := range []struct {
		name   string
		xy     plotter.XYs
		color  color.Color
		dashes []vg.Length
	}{
		{name: "blended", xy: blend, color: color.Black},
		{name: "viscous", xy: viscous, color: color.RGBA{R: 196, A: 255}, dashes: []vg.Length{vg.Points(4), vg.Points(2)}},
		{name: "log law", xy: logLaw, color: color.RGBA{B: 196, A: 255}, dashes: []vg.Length{vg.Points(1), vg.Points(2)}},
	} {
		if len(l.xy) == 0 {
			continue
		}
		line, err := plotter.NewLine(l.xy)
		if err != nil {
			return fmt.Errorf("wallfunc: plotting %s profile: %v", l.name, err)
		}
		line.Color = l.color
		line.Dashes = l.dashes
		p.Add(line)
		p.Legend.Add(l.name, line)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotFile); err != nil {
		return fmt.Errorf("wallfunc: saving profile plot: %v", err)
	}
	return nil
}
