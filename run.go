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
	"context"
	"fmt"
	"sync"

	"github.com/ctessum/requestcache"
)

// Model computes the total spectral transmittance for one atmospheric
// state by combining the five independent components. The components are
// pure functions of the state and the absorption table, so they are
// evaluated concurrently and memoized; repeated runs with the same state
// reuse cached component spectra.
type Model struct {
	State *AtmosphericState

	// Table supplies absorption coefficients; if nil, the reference
	// table is used.
	Table *AbsorptionTable

	// TargetGrid is the grid the combined results are reported on; if
	// nil, the absorption table's native grid is used.
	TargetGrid *Grid

	// CacheSize specifies the number of component spectra held in the
	// memory cache. The default is 30.
	CacheSize int

	cache     *requestcache.Cache
	cacheOnce sync.Once
}

// NewModel creates a transmittance model for the given state.
func NewModel(state *AtmosphericState) *Model {
	return &Model{State: state}
}

// Components returns the five transmittance components of the model.
func (m *Model) Components() []Component {
	return []Component{
		&RayleighTransmittance{State: m.State, Grid: m.tableGrid()},
		&OzoneTransmittance{State: m.State, Table: m.table()},
		&WaterTransmittance{State: m.State, Table: m.table()},
		&AerosolTransmittance{State: m.State, Grid: m.tableGrid()},
		&UMGTransmittance{State: m.State, Table: m.table()},
	}
}

func (m *Model) table() *AbsorptionTable {
	if m.Table != nil {
		return m.Table
	}
	return DefaultAbsorptionTable()
}

func (m *Model) tableGrid() *Grid { return m.table().Grid() }

func (m *Model) targetGrid() *Grid {
	if m.TargetGrid != nil {
		return m.TargetGrid
	}
	return m.tableGrid()
}

// Results holds the combined transmittance spectra of one model run,
// aligned with Grid.
type Results struct {
	Grid *Grid

	// Total is the elementwise product of the component transmittances.
	Total []float64

	// The individual component transmittances, interpolated onto Grid.
	Rayleigh, Ozone, Water, Aerosol, UMG []float64
}

func (m *Model) initCache() {
	m.cacheOnce.Do(func() {
		size := m.CacheSize
		if size == 0 {
			size = 30
		}
		m.cache = requestcache.NewCache(
			func(ctx context.Context, request interface{}) (interface{}, error) {
				return request.(Component).Transmittance()
			},
			len(m.Components()),
			requestcache.Deduplicate(), requestcache.Memory(size))
	})
}

// cacheKey identifies a component spectrum by the component name, the
// atmospheric state, and the table identity.
func (m *Model) cacheKey(c Component) string {
	return fmt.Sprintf("%s/%+v/%p", c.Name(), *m.State, m.table())
}

// Run evaluates all five components concurrently and combines them on the
// target grid.
func (m *Model) Run(ctx context.Context) (*Results, error) {
	if err := m.State.Check(); err != nil {
		return nil, err
	}
	m.initCache()

	components := m.Components()
	reqs := make([]*requestcache.Request, len(components))
	for i, c := range components {
		reqs[i] = m.cache.NewRequest(ctx, c, m.cacheKey(c))
	}
	spectra := make([]*Spectrum, len(components))
	for i, req := range reqs {
		result, err := req.Result()
		if err != nil {
			return nil, fmt.Errorf("skytrans: computing %s transmittance: %v",
				components[i].Name(), err)
		}
		spectra[i] = result.(*Spectrum)
	}

	target := m.targetGrid()
	total, err := Combine(target, spectra...)
	if err != nil {
		return nil, err
	}
	r := &Results{Grid: target, Total: total.Values}
	for i, c := range components {
		v, err := spectra[i].Grid.Interpolate(spectra[i].Values, target)
		if err != nil {
			return nil, err
		}
		switch c.Name() {
		case "rayleigh":
			r.Rayleigh = v
		case "ozone":
			r.Ozone = v
		case "water":
			r.Water = v
		case "aerosol":
			r.Aerosol = v
		case "umg":
			r.UMG = v
		}
	}
	return r, nil
}
