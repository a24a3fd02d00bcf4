// Copyright 2022-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loader

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultExcludeList holds field names that are suffixed with an
// underscore to avoid clashing with common reserved words. Callers
// extend it through Options.ExcludeList; it is configuration, not
// hidden module state.
var defaultExcludeList = []string{"return", "file", "print"}

// datesPattern matches a field carrying date information: "date" or
// "dates", optionally wrapped in quotes or a leading underscore,
// case-insensitive.
var datesPattern = regexp.MustCompile(`(?i)^'?_?dates?'?$`)

// normalizeNames cleans raw field names: surrounding quotes and space
// are stripped, DeleteChars removed, names upper-cased when FoldCase is
// set, empty names replaced with positional defaults, and excluded
// names suffixed with "_".
func normalizeNames(raw []string, opts *Options) []string {
	exclude := make(map[string]bool, len(defaultExcludeList)+len(opts.ExcludeList))
	for _, n := range defaultExcludeList {
		exclude[n] = true
	}
	for _, n := range opts.ExcludeList {
		exclude[n] = true
	}

	out := make([]string, len(raw))
	for i, name := range raw {
		n := strings.Trim(strings.TrimSpace(name), `"'`)
		if opts.DeleteChars != "" {
			n = strings.Map(func(r rune) rune {
				if strings.ContainsRune(opts.DeleteChars, r) {
					return -1
				}
				return r
			}, n)
		}
		if opts.FoldCase {
			n = strings.ToUpper(n)
		}
		if n == "" {
			n = fmt.Sprintf("f%d", i)
		}
		if exclude[n] {
			n += "_"
		}
		out[i] = n
	}
	return out
}

// resolveDateColumns returns the indices of the columns holding date
// information: the explicitly requested ones, or any column whose name
// matches datesPattern.
func resolveDateColumns(names []string, opts *Options) ([]int, error) {
	if len(opts.DateColumns) > 0 {
		idx := make([]int, 0, len(opts.DateColumns))
		for _, want := range opts.DateColumns {
			found := -1
			for i, name := range names {
				if strings.EqualFold(name, want) {
					found = i
					break
				}
			}
			if found < 0 {
				return nil, fmt.Errorf("%w: %q not in %v", ErrNoDateColumn, want, names)
			}
			idx = append(idx, found)
		}
		return idx, nil
	}

	var idx []int
	for i, name := range names {
		if datesPattern.MatchString(name) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, ErrNoDateColumn
	}
	return idx, nil
}
