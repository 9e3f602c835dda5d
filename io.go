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

package skytrans

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ctessum/cdf"
)

// textColumns is the column schema of delimited text results, in order.
var textColumns = []string{"wavelength_nm", "total_transmittance",
	"rayleigh", "ozone", "water", "aerosol", "umg"}

// WriteText writes the results to w as delimited text: a header line
// followed by one comma-separated row per wavelength with columns
// wavelength_nm, total_transmittance, rayleigh, ozone, water, aerosol, umg.
func (r *Results) WriteText(w io.Writer) error {
	b := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(b, strings.Join(textColumns, ",")); err != nil {
		return fmt.Errorf("skytrans: writing results header: %v", err)
	}
	wvl := r.Grid.Wavelengths()
	for i, x := range wvl {
		_, err := fmt.Fprintf(b, "%.1f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f\n",
			x, r.Total[i], r.Rayleigh[i], r.Ozone[i], r.Water[i],
			r.Aerosol[i], r.UMG[i])
		if err != nil {
			return fmt.Errorf("skytrans: writing results row %d: %v", i, err)
		}
	}
	if err := b.Flush(); err != nil {
		return fmt.Errorf("skytrans: writing results: %v", err)
	}
	return nil
}

// ReadTextResults reads results previously written by WriteText.
func ReadTextResults(rd io.Reader) (*Results, error) {
	scanner := bufio.NewScanner(rd)
	var wvl []float64
	cols := make([][]float64, len(textColumns)-1)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if line == 1 && strings.HasPrefix(text, textColumns[0]) {
			continue // header
		}
		fields := strings.Split(text, ",")
		if len(fields) != len(textColumns) {
			return nil, fmt.Errorf("skytrans: results line %d has %d fields; want %d",
				line, len(fields), len(textColumns))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("skytrans: results line %d: %v", line, err)
			}
			if i == 0 {
				wvl = append(wvl, v)
			} else {
				cols[i-1] = append(cols[i-1], v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("skytrans: reading results: %v", err)
	}
	g, err := NewGrid(wvl)
	if err != nil {
		return nil, err
	}
	return &Results{
		Grid:     g,
		Total:    cols[0],
		Rayleigh: cols[1],
		Ozone:    cols[2],
		Water:    cols[3],
		Aerosol:  cols[4],
		UMG:      cols[5],
	}, nil
}

// Archive is a set of named spectra sharing one wavelength grid, for
// storage in a NetCDF-format file keyed by descriptive field names.
type Archive struct {
	Grid   *Grid
	Fields map[string][]float64
}

// NewArchive creates an empty archive on the given grid.
func NewArchive(grid *Grid) *Archive {
	return &Archive{Grid: grid, Fields: make(map[string][]float64)}
}

// Add stores a named spectrum, which must be aligned with the
// archive grid.
func (a *Archive) Add(name string, values []float64) error {
	if len(values) != a.Grid.Len() {
		return &DomainError{Reason: fmt.Sprintf(
			"archive field %s has %d values for a %d-point grid",
			name, len(values), a.Grid.Len())}
	}
	a.Fields[name] = values
	return nil
}

// sortKeys returns the field names in sorted order so that output files
// are deterministic.
func (a *Archive) sortKeys() []string {
	keys := make([]string, 0, len(a.Fields))
	for k := range a.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteCDF writes the archive to w as a NetCDF-format file with one
// variable per field plus the wavelength grid.
func (a *Archive) WriteCDF(w cdf.ReaderWriterAt) error {
	h := cdf.NewHeader([]string{wvlDim}, []int{a.Grid.Len()})
	h.AddVariable(wvlDim, []string{wvlDim}, []float64{0})
	h.AddAttribute(wvlDim, "units", "nm")
	for _, name := range a.sortKeys() {
		h.AddVariable(name, []string{wvlDim}, []float64{0})
		h.AddAttribute(name, "units", "dimensionless transmittance")
	}
	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("skytrans: creating archive: %v", err)
	}
	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("skytrans: creating archive: %v", err)
	}
	wr := f.Writer(wvlDim, []int{0}, []int{a.Grid.Len()})
	if _, err := wr.Write(a.Grid.Wavelengths()); err != nil {
		return fmt.Errorf("skytrans: writing archive wavelengths: %v", err)
	}
	for _, name := range a.sortKeys() {
		out := make([]float64, len(a.Fields[name]))
		copy(out, a.Fields[name])
		wr := f.Writer(name, []int{0}, []int{len(out)})
		if _, err := wr.Write(out); err != nil {
			return fmt.Errorf("skytrans: writing archive field %s: %v", name, err)
		}
	}
	return nil
}

// ReadArchive reads an archive previously written by WriteCDF.
func ReadArchive(r cdf.ReaderWriterAt) (*Archive, error) {
	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("skytrans: opening archive: %v", err)
	}
	wvl, err := readCDFVar(f, wvlDim)
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(wvl)
	if err != nil {
		return nil, err
	}
	a := NewArchive(g)
	for _, v := range f.Header.Variables() {
		if v == wvlDim {
			continue
		}
		vals, err := readCDFVar(f, v)
		if err != nil {
			return nil, err
		}
		if err := a.Add(v, vals); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Archive converts the results to an archive with one field
// per component.
func (r *Results) Archive() *Archive {
	a := NewArchive(r.Grid)
	a.Fields["total_transmittance"] = r.Total
	a.Fields["rayleigh_transmittance"] = r.Rayleigh
	a.Fields["ozone_transmittance"] = r.Ozone
	a.Fields["water_transmittance"] = r.Water
	a.Fields["aerosol_transmittance"] = r.Aerosol
	a.Fields["umg_transmittance"] = r.UMG
	return a
}
