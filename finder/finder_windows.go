//go:build windows

// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package finder

import (
	"os"
	"strings"
	"sync"
)

// hasSeparator reports whether name decomposes into more than one path
// component, selecting direct resolution over search-path lookup. Windows
// accepts both slash directions and drive-qualified names.
func hasSeparator(name string) bool {
	return strings.ContainsAny(name, `:\/`)
}

// defaultTable parses %PATHEXT% exactly once for the process; later changes
// to the environment variable are not observed. Safe under concurrent first
// use.
var defaultTable = sync.OnceValue(func() ExtensionTable {
	return ParseExtensionTable(os.Getenv("PATHEXT"))
})

// DefaultTable returns the process-wide extension table read from %PATHEXT%.
// An unset or malformed value yields an empty table, never an error.
func DefaultTable() ExtensionTable {
	return defaultTable()
}

// DefaultExpander returns the platform's expander. The Windows loader
// recognizes executables by filename suffix, so candidates are expanded
// against the %PATHEXT% table.
func DefaultExpander() Expander {
	return NewExtensionExpander(DefaultTable())
}
