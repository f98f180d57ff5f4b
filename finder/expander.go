// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package finder

import (
	"iter"
	"path/filepath"
	"strings"
)

// Expander turns one candidate path into the concrete paths the platform
// loader would consider for it. Platforms that mark executables with a
// permission bit use Identity; platforms that mark them with a filename
// suffix use an extension table.
type Expander interface {
	Expand(candidate string) iter.Seq[string]
}

// Identity returns the pass-through expander: every candidate expands to
// itself. This is the default on platforms whose loader does not care about
// filename suffixes.
func Identity() Expander {
	return identityExpander{}
}

type identityExpander struct{}

func (identityExpander) Expand(candidate string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(candidate)
	}
}

// ExtensionTable is an ordered list of recognized executable suffixes, each
// including its leading dot (e.g. ".COM", ".EXE"). Order is the priority
// order used when expanding a candidate.
type ExtensionTable []string

// ParseExtensionTable parses a %PATHEXT%-style value: entries separated by
// semicolons, each expected to begin with a dot. Entries that do not begin
// with a dot are dropped silently rather than failing the whole table. An
// empty or unset value yields an empty table.
func ParseExtensionTable(pathext string) ExtensionTable {
	var table ExtensionTable
	for _, ext := range strings.Split(pathext, ";") {
		if strings.HasPrefix(ext, ".") {
			table = append(table, ext)
		}
	}
	return table
}

// Matches reports whether the final segment of path already carries one of
// the table's suffixes. Comparison is case-insensitive, per Windows
// convention. A final segment whose suffix is not in the table does not
// match, even if it contains a dot: "tool.sh" against a table of [".EXE"]
// is treated as unsuffixed and will receive appended extensions.
func (t ExtensionTable) Matches(path string) bool {
	ext := filepath.Ext(filepath.Base(path))
	if ext == "" {
		return false
	}
	for _, known := range t {
		if strings.EqualFold(ext, known) {
			return true
		}
	}
	return false
}

// NewExtensionExpander returns an expander for platforms that require an
// executable suffix. A candidate already carrying a recognized suffix
// expands to itself only; any other candidate expands to one path per table
// entry, formed by appending the suffix, in table order. With an empty table
// every candidate expands to nothing.
func NewExtensionExpander(table ExtensionTable) Expander {
	return extensionExpander{table: table}
}

type extensionExpander struct {
	table ExtensionTable
}

func (e extensionExpander) Expand(candidate string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if e.table.Matches(candidate) {
			yield(candidate)
			return
		}
		for _, ext := range e.table {
			if !yield(candidate + ext) {
				return
			}
		}
	}
}
