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
	"io"

	"github.com/gocarina/gocsv"
)

// yPlusRecord is the y+ output format of a single face.
type yPlusRecord struct {
	Face         int     `csv:"face"`
	VelocityDiff float64 `csv:"magUp"`
	WallDistance float64 `csv:"y"`
	Nu           float64 `csv:"nuw"`
	YPlus        float64 `csv:"yPlus"`
	Converged    bool    `csv:"converged"`
	Iterations   int     `csv:"iterations"`
	Residual     float64 `csv:"residual"`
}

// faceRecord is the full output format of a single face.
type faceRecord struct {
	Face         int     `csv:"face"`
	VelocityDiff float64 `csv:"magUp"`
	WallDistance float64 `csv:"y"`
	Nu           float64 `csv:"nuw"`
	YPlus        float64 `csv:"yPlus"`
	Nut          float64 `csv:"nut"`
	Converged    bool    `csv:"converged"`
	Iterations   int     `csv:"iterations"`
	Residual     float64 `csv:"residual"`
}

// ReadFaceSamples reads face samples from CSV-formatted data with the
// columns "magUp", "y", and "nuw". Other columns are ignored.
func ReadFaceSamples(r io.Reader) ([]FaceSample, error) {
	var samples []FaceSample
	if err := gocsv.Unmarshal(r, &samples); err != nil {
		return nil, fmt.Errorf("wallfunc: reading face samples: %v", err)
	}
	return samples, nil
}

// WriteFaces writes the samples and calculated values of faces
// to w in CSV format.
func WriteFaces(w io.Writer, faces []*Face) error {
	recs := make([]*faceRecord, len(faces))
	for i, f := range faces {
		recs[i] = &faceRecord{
			Face:         f.Index,
			VelocityDiff: f.VelocityDiff,
			WallDistance: f.WallDistance,
			Nu:           f.Nu,
			YPlus:        f.YPlus,
			Nut:          f.Nut,
			Converged:    f.Converged,
			Iterations:   f.Iterations,
			Residual:     f.Residual,
		}
	}
	if err := gocsv.Marshal(recs, w); err != nil {
		return fmt.Errorf("wallfunc: writing faces: %v", err)
	}
	return nil
}

// WriteYPlus writes the samples and y+ solutions of faces to w in
// CSV format.
func WriteYPlus(w io.Writer, faces []*Face) error {
	recs := make([]*yPlusRecord, len(faces))
	for i, f := range faces {
		recs[i] = &yPlusRecord{
			Face:         f.Index,
			VelocityDiff: f.VelocityDiff,
			WallDistance: f.WallDistance,
			Nu:           f.Nu,
			YPlus:        f.YPlus,
			Converged:    f.Converged,
			Iterations:   f.Iterations,
			Residual:     f.Residual,
		}
	}
	if err := gocsv.Marshal(recs, w); err != nil {
		return fmt.Errorf("wallfunc: writing y+: %v", err)
	}
	return nil
}
