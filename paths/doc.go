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

// Package paths contains functions to prepare paths to presshere resources.
//
// The ResourcePath() function returns the supplied resource name prepended
// with the appropriate config directory. For example, the following will
// return the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The directory is created if it does not exist. In development builds the
// base directory is ".presshere" in the current working directory. In
// release builds (built with the "release" tag) the base directory is
// "presshere" in the user's config directory, as returned by
// os.UserConfigDir().
package paths
