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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Presshere"

// if number is empty then the project was not built with a version number
// specified by the linker. eg.
//
//	go build -ldflags "-X github.com/jetsetilly/presshere/version.number=v0.1.0"
var number string

// the vcs revision. suffixed with "+dirty" if the source has been modified
// but not committed
var revision string

// version is "unreleased" if the project has been built without a version
// number and "local" if there is no version number and no vcs information.
// the latter happens with "go run ."
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Title returns the application name and the version string in a form
// suitable for a window title.
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	version, revision = fromBuildInfo(number)
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	revision := "no revision information"
	if vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number != "" {
		return number, revision
	}
	if vcs {
		return "unreleased", revision
	}
	return "local", revision
}
