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

package prefs

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/presshere/curated"
	"go.uber.org/multierr"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while the program is running ***"

// the separator between key and value in the preferences file
const separator = " :: "

// Sentinal error patterns returned by Disk functions.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	InvalidKey   = "prefs: invalid key (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	LoadFailed   = "prefs: load: %v"
	SaveFailed   = "prefs: save: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file and must not contain white
// space or the separator string.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n;") || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// read preferences file into a map of strings. values for keys not added to
// this Disk instance are included
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}
		k, v, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return data, scanner.Err()
}

// Save current preference values to disk. Values in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		if !os.IsNotExist(err) {
			return curated.Errorf(SaveFailed, err)
		}
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range slices.Sorted(maps.Keys(data)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, data[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true and the file
// does not exist then the current values are saved to a new file. A
// NoPrefsFile error is still returned in that case.
//
// Values from the top of the command line stack are applied after the values
// from the file, whether the file exists or not.
//
// Values that cannot be set do not prevent other values from being set. All
// errors are returned together.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	var errs error

	data, err := dsk.read()
	if err != nil {
		if !os.IsNotExist(err) {
			return curated.Errorf(LoadFailed, err)
		}
		if saveOnFirstUse {
			errs = multierr.Append(errs, dsk.Save())
		}
		errs = multierr.Append(errs, curated.Errorf(NoPrefsFile, dsk.path))
	}

	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				errs = multierr.Append(errs, curated.Errorf(LoadFailed, err))
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				errs = multierr.Append(errs, curated.Errorf(LoadFailed, err))
			}
		}
	}

	return errs
}

// IsNoPrefsFile returns true if the error returned by Load() indicates only
// that the preferences file did not exist.
func IsNoPrefsFile(err error) bool {
	errs := multierr.Errors(err)
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		if !curated.Is(e, NoPrefsFile) {
			return false
		}
	}
	return true
}
