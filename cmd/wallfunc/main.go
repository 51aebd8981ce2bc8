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

// Command wallfunc is a command-line interface for calculating y+ and the
// wall eddy viscosity of turbulent flow simulations using wall functions.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/wallfunc/wallfuncutil"
)

func main() {
	if err := wallfuncutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
