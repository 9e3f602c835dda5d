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
	"fmt"
	"sync"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// AbsorptionTable holds per-species absorption coefficients aligned with a
// wavelength grid. Coefficients are in units of inverse column abundance:
// coefficient × abundance × airmass = optical depth. Tables are loaded
// once and shared; no computation mutates them.
type AbsorptionTable struct {
	grid *Grid
	data *sparse.DenseArray // shape [numSpecies, grid.Len()]
	have [numSpecies]bool
}

// NewAbsorptionTable creates an empty absorption table aligned with grid.
func NewAbsorptionTable(grid *Grid) *AbsorptionTable {
	return &AbsorptionTable{
		grid: grid,
		data: sparse.ZerosDense(int(numSpecies), grid.Len()),
	}
}

// Grid returns the wavelength grid the table coefficients are aligned with.
func (t *AbsorptionTable) Grid() *Grid { return t.grid }

// Set stores the coefficients for species s, which must be aligned with the
// table grid and non-negative.
func (t *AbsorptionTable) Set(s Species, coefficients []float64) error {
	if s < 0 || s >= numSpecies {
		return &UnknownSpeciesError{Name: s.String()}
	}
	if len(coefficients) != t.grid.Len() {
		return &DomainError{Reason: fmt.Sprintf(
			"absorption coefficients for %v have %d values for a %d-point grid",
			s, len(coefficients), t.grid.Len())}
	}
	for _, v := range coefficients {
		if v < 0 {
			return &DomainError{Reason: fmt.Sprintf(
				"absorption coefficients for %v contain a negative value", s)}
		}
	}
	for i, v := range coefficients {
		t.data.Set(v, int(s), i)
	}
	t.have[s] = true
	return nil
}

// Coefficients returns the coefficients for species s, aligned with the
// table grid. The returned slice shares the table's backing storage and
// must not be modified. A MissingTableError is returned if the table has
// no entry for s: a silent zero coefficient would fabricate a
// transmittance of one.
func (t *AbsorptionTable) Coefficients(s Species) ([]float64, error) {
	if s < 0 || s >= numSpecies {
		return nil, &UnknownSpeciesError{Name: s.String()}
	}
	if !t.have[s] {
		return nil, &MissingTableError{Species: s}
	}
	n := t.grid.Len()
	return t.data.Elements[int(s)*n : (int(s)+1)*n], nil
}

// Has reports whether the table contains coefficients for species s.
func (t *AbsorptionTable) Has(s Species) bool {
	return s >= 0 && s < numSpecies && t.have[s]
}

var (
	defaultTableOnce sync.Once
	defaultTable     *AbsorptionTable
)

// DefaultAbsorptionTable returns the reference absorption table shipped
// with the package, covering every species in the fixed set on the native
// 280-1100 nm grid. The table is created once and shared; treat it as
// read-only.
func DefaultAbsorptionTable() *AbsorptionTable {
	defaultTableOnce.Do(func() {
		g, err := NewGrid(defaultGridWavelengths)
		if err != nil {
			panic(err) // reference data is malformed; unrecoverable.
		}
		defaultTable = NewAbsorptionTable(g)
		for s := Species(0); s < numSpecies; s++ {
			if err := defaultTable.Set(s, defaultAbsorption[s]); err != nil {
				panic(err)
			}
		}
	})
	return defaultTable
}

const wvlDim = "wavelength"

// WriteCDF writes the table to w as a NetCDF-format file with one variable
// per species, named "<species>_absorption", plus the wavelength grid.
func (t *AbsorptionTable) WriteCDF(w cdf.ReaderWriterAt) error {
	h := cdf.NewHeader([]string{wvlDim}, []int{t.grid.Len()})
	h.AddVariable(wvlDim, []string{wvlDim}, []float64{0})
	h.AddAttribute(wvlDim, "units", "nm")
	for s := Species(0); s < numSpecies; s++ {
		if !t.have[s] {
			continue
		}
		v := s.String() + "_absorption"
		h.AddVariable(v, []string{wvlDim}, []float64{0})
		h.AddAttribute(v, "description",
			fmt.Sprintf("%v absorption coefficient", s))
		h.AddAttribute(v, "units", "per column abundance")
	}
	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("skytrans: creating absorption table file: %v", err)
	}
	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("skytrans: creating absorption table file: %v", err)
	}
	wr := f.Writer(wvlDim, []int{0}, []int{t.grid.Len()})
	if _, err := wr.Write(t.grid.Wavelengths()); err != nil {
		return fmt.Errorf("skytrans: writing absorption table wavelengths: %v", err)
	}
	for s := Species(0); s < numSpecies; s++ {
		if !t.have[s] {
			continue
		}
		coeff, err := t.Coefficients(s)
		if err != nil {
			return err
		}
		out := make([]float64, len(coeff))
		copy(out, coeff)
		wr := f.Writer(s.String()+"_absorption", []int{0}, []int{len(out)})
		if _, err := wr.Write(out); err != nil {
			return fmt.Errorf("skytrans: writing %v absorption coefficients: %v", s, err)
		}
	}
	return nil
}

// ReadAbsorptionTable reads a table previously written by WriteCDF.
// Species without a corresponding variable in the file are left missing.
func ReadAbsorptionTable(r cdf.ReaderWriterAt) (*AbsorptionTable, error) {
	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("skytrans: opening absorption table file: %v", err)
	}
	wvl, err := readCDFVar(f, wvlDim)
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(wvl)
	if err != nil {
		return nil, err
	}
	t := NewAbsorptionTable(g)
	vars := make(map[string]struct{})
	for _, v := range f.Header.Variables() {
		vars[v] = struct{}{}
	}
	for s := Species(0); s < numSpecies; s++ {
		name := s.String() + "_absorption"
		if _, ok := vars[name]; !ok {
			continue
		}
		coeff, err := readCDFVar(f, name)
		if err != nil {
			return nil, err
		}
		if err := t.Set(s, coeff); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// readCDFVar reads the full contents of a float64 variable.
func readCDFVar(f *cdf.File, name string) ([]float64, error) {
	r := f.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("skytrans: reading variable %s: %v", name, err)
	}
	v, ok := buf.([]float64)
	if !ok {
		return nil, fmt.Errorf("skytrans: variable %s is not float64", name)
	}
	return v, nil
}
