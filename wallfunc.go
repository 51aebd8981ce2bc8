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

// Package wallfunc calculates near-wall eddy viscosity for the boundary
// faces of a flow solver using wall functions.
//
// Each face is described by a FaceSample: the velocity difference between
// the first cell center and the wall, the distance to the wall, and the
// kinematic viscosity at the wall. A WallFunction turns the sample into a
// dimensionless wall distance (y+) and an eddy viscosity increment.
// Faces are independent of each other and are evaluated concurrently.
//
// Wall function implementations are in the subdirectories of the
// science directory.
package wallfunc

// Version gives the version number.
const Version = "1.0.0"
