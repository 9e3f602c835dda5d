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

// Command skytrans is a command-line interface for the skytrans
// atmospheric spectral transmittance model.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/skytrans/skytransutil"
)

func main() {
	if err := skytransutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
