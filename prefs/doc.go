// This file is part of Presshere.
//
// Presshere is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Presshere is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Presshere.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs stores preference values on disk. Preference values are
// created by declaring a variable of one of the types in this package (Bool,
// Int, Float, String) and adding it to a Disk instance with a key:
//
//	var fps prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("host.fps", &fps)
//	dsk.Load(true)
//
// The file written by a Disk can hold preferences from more than one Disk
// instance. Saving a Disk does not remove values added by another Disk.
//
// Values can be overridden from the command line with
// PushCommandLineStack(). The command line values are applied when Load() is
// called and are used once only.
package prefs
