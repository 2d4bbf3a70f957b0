/*
 * doc.go, part of godipolar.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goDipolar is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package dipolar calculates magnetic dipole-dipole couplings between pairs of
atomic nuclei from 3D structures or trajectories, for solid-state NMR analysis
of oriented and unoriented (MAS) samples.


	**goDipolar Capabilities**

    Calculates the dipolar coupling (in Hz) between two nuclei given their
	internuclear distance, the angle of the internuclear vector with the
	external field (Z) axis, and the identity of both nuclei. The supported
	nuclei are 1H, 13C, 15N, 19F and 31P.

    Averages distance, angle and coupling over the frames of a trajectory
	for a pair of atoms (or of atom-group centroids), reporting means and
	standard deviations, plus a second coupling estimate computed from the
	averaged geometry. The two estimates diverge for mobile pairs, as the
	coupling goes with r^-3; that divergence is a useful diagnostic.

    Enumerates all pairs between two selections, filters them by coupling
	strength, and writes a tab-separated report, with progress feedback
	and cooperative cancellation. The enumeration can use several CPUs.

    Plots histograms of coupling distributions (subpackage dcplot).

The angular term is only physically meaningful if the structure has been
oriented along the Z axis beforehand (an "oriented sample"). For MAS-style
analyses, where orientation information is averaged out, the angle can be
ignored with the "noangle" switches.

Structure and trajectory reading, as well as atom selection, are outside the
scope of this library: any type implementing the small System/Selection
interfaces can drive it. An in-memory Molecule implementation is provided.

goDipolar prioritizes simplicity and clarity over raw speed, although it is
reasonably efficient.
*/
package dipolar
