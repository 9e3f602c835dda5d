/*
Copyright © 2026 the skytrans authors.
This file is part of skytrans.

skytrans is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

skytrans is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with skytrans.  If not, see <http://www.gnu.org/licenses/>.
*/

package skytransutil

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/spatialmodel/skytrans"
)

// The wavelength bands used for band-average summaries [nm].
var reportBands = []struct {
	name   string
	lo, hi float64
}{
	{"UV", 300, 400},
	{"visible", 400, 700},
	{"NIR", 700, 1100},
}

// ComponentDiff summarizes the difference between one component's spectra
// in two result files.
type ComponentDiff struct {
	Name           string
	MeanA, MeanB   float64
	MeanAbsDiff    float64
	MaxAbsDiff     float64
	MaxAbsDiffWvl  float64 // wavelength of the maximum difference [nm]
	MaxRelDiffFrac float64 // relative to file A, skipping near-zero values
}

// BandAverage holds the mean total transmittance of both files in one
// wavelength band.
type BandAverage struct {
	Band           string
	Lo, Hi         float64
	MeanA, MeanB   float64
}

// Report summarizes the comparison of two result files.
type Report struct {
	FileA, FileB string
	Components   []ComponentDiff
	Bands        []BandAverage

	// Linear regression of file B total transmittance against file A.
	Slope, Intercept, RSquared float64
}

// CompareFiles reads two delimited text result files and compares them.
// The files must share the same wavelength grid.
func CompareFiles(pathA, pathB string) (*Report, error) {
	a, err := readResultsFile(pathA)
	if err != nil {
		return nil, err
	}
	b, err := readResultsFile(pathB)
	if err != nil {
		return nil, err
	}
	r, err := Compare(a, b)
	if err != nil {
		return nil, err
	}
	r.FileA, r.FileB = pathA, pathB
	return r, nil
}

func readResultsFile(path string) (*skytrans.Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("skytrans: opening results file: %v", err)
	}
	defer f.Close()
	return skytrans.ReadTextResults(f)
}

// Compare computes difference statistics between two results on the same
// wavelength grid.
func Compare(a, b *skytrans.Results) (*Report, error) {
	if !a.Grid.Equal(b.Grid) {
		return nil, fmt.Errorf("skytrans: cannot compare results on different wavelength grids")
	}
	wvl := a.Grid.Wavelengths()
	columns := []struct {
		name string
		a, b []float64
	}{
		{"total", a.Total, b.Total},
		{"rayleigh", a.Rayleigh, b.Rayleigh},
		{"ozone", a.Ozone, b.Ozone},
		{"water", a.Water, b.Water},
		{"aerosol", a.Aerosol, b.Aerosol},
		{"umg", a.UMG, b.UMG},
	}

	r := new(Report)
	for _, col := range columns {
		d := ComponentDiff{Name: col.name}
		var sa, sb, sd stats.Stats
		for i := range col.a {
			diff := math.Abs(col.a[i] - col.b[i])
			sa.Update(col.a[i])
			sb.Update(col.b[i])
			sd.Update(diff)
			if diff > d.MaxAbsDiff {
				d.MaxAbsDiff = diff
				d.MaxAbsDiffWvl = wvl[i]
			}
			// Relative differences on near-opaque wavelengths are
			// not informative.
			if col.a[i] > 1e-6 {
				if rel := diff / col.a[i]; rel > d.MaxRelDiffFrac {
					d.MaxRelDiffFrac = rel
				}
			}
		}
		d.MeanA = sa.Mean()
		d.MeanB = sb.Mean()
		d.MeanAbsDiff = sd.Mean()
		r.Components = append(r.Components, d)
	}

	for _, band := range reportBands {
		var sa, sb stats.Stats
		for i, x := range wvl {
			if x < band.lo || x > band.hi {
				continue
			}
			sa.Update(a.Total[i])
			sb.Update(b.Total[i])
		}
		if sa.Count() == 0 {
			continue
		}
		r.Bands = append(r.Bands, BandAverage{
			Band: band.name, Lo: band.lo, Hi: band.hi,
			MeanA: sa.Mean(), MeanB: sb.Mean(),
		})
	}

	r.Slope, r.Intercept, r.RSquared, _, _, _ = stats.LinearRegression(a.Total, b.Total)
	return r, nil
}

// Write prints the report as aligned text tables.
func (r *Report) Write(w io.Writer) error {
	fmt.Fprintf(w, "comparison of %s (A) and %s (B)\n\n", r.FileA, r.FileB)
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "component\tmean A\tmean B\tmean |Δ|\tmax |Δ|\tat nm\tmax rel Δ")
	for _, d := range r.Components {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.2e\t%.2e\t%.0f\t%.2e\n",
			d.Name, d.MeanA, d.MeanB, d.MeanAbsDiff, d.MaxAbsDiff,
			d.MaxAbsDiffWvl, d.MaxRelDiffFrac)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "band\trange nm\tmean total A\tmean total B")
	for _, b := range r.Bands {
		fmt.Fprintf(tw, "%s\t%.0f-%.0f\t%.4f\t%.4f\n", b.Band, b.Lo, b.Hi, b.MeanA, b.MeanB)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\ntotal B vs A: slope %.6f, intercept %.2e, R² %.6f\n",
		r.Slope, r.Intercept, r.RSquared)
	return nil
}
