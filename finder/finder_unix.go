//go:build !windows

// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package finder

import "strings"

// hasSeparator reports whether name decomposes into more than one path
// component, selecting direct resolution over search-path lookup.
func hasSeparator(name string) bool {
	return strings.ContainsRune(name, '/')
}

// DefaultExpander returns the platform's expander. Unix loaders identify
// executables by permission bit, not suffix, so candidates pass through
// unchanged.
func DefaultExpander() Expander {
	return Identity()
}
