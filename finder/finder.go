// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package finder

import (
	"errors"
	"iter"
	"path/filepath"
)

// ErrNoSearchPath is returned when a bare program name must be resolved
// against a search path but no search path was supplied. This is a
// configuration error, distinct from a lookup that simply found nothing
// (which yields an empty sequence, not an error).
var ErrNoSearchPath = errors.New("cannot determine search path")

// Checker decides whether a candidate path is an acceptable, runnable match.
// Implementations typically stat the path; they must treat inaccessible or
// nonexistent paths as "not valid" rather than failing.
type Checker interface {
	IsValid(path string) bool
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(path string) bool

// IsValid calls f(path).
func (f CheckerFunc) IsValid(path string) bool { return f(path) }

// Finder generates and filters executable path candidates. The zero value is
// not usable; construct one with New or NewWithExpander.
type Finder struct {
	expander Expander
}

// New returns a Finder using the platform's default extension handling.
func New() *Finder {
	return NewWithExpander(DefaultExpander())
}

// NewWithExpander returns a Finder using the given extension expander.
// Injecting an expander makes extension behavior testable on any platform.
func NewWithExpander(expander Expander) *Finder {
	return &Finder{expander: expander}
}

// Find resolves name into the lazy, ordered sequence of existing candidate
// paths accepted by checker.
//
// If name contains a path separator it is resolved directly: relative names
// are joined onto cwd, absolute names are used unchanged, and exactly one
// pre-expansion candidate is produced. Otherwise name is treated as a bare
// program name and joined against each directory of searchPath (a string in
// the platform's path-list format, e.g. the value of $PATH), in list order.
//
// Candidates pass through the Finder's extension expander before checker sees
// them. Nothing is evaluated until the returned sequence is consumed, and
// stopping iteration early stops candidate generation. The sequence is
// restartable.
//
// The only error condition is a bare name with an empty searchPath, reported
// as ErrNoSearchPath before any candidate is generated. A search that matches
// nothing returns an empty sequence and a nil error.
func (f *Finder) Find(name, searchPath, cwd string, checker Checker) (iter.Seq[string], error) {
	var candidates iter.Seq[string]
	if hasSeparator(name) {
		candidates = directCandidates(name, cwd)
	} else {
		if searchPath == "" {
			return nil, ErrNoSearchPath
		}
		candidates = listCandidates(name, filepath.SplitList(searchPath))
	}
	return filterValid(expandAll(candidates, f.expander), checker), nil
}

// directCandidates yields the single candidate for a name that already
// contains a separator, made absolute against cwd when necessary.
func directCandidates(name, cwd string) iter.Seq[string] {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return func(yield func(string) bool) {
		yield(path)
	}
}

// listCandidates yields one candidate per search directory, in priority
// order. Directories are not checked for existence here; validity checking
// is entirely the Checker's concern.
func listCandidates(name string, dirs []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, dir := range dirs {
			if !yield(filepath.Join(dir, name)) {
				return
			}
		}
	}
}

// expandAll applies the expander to each candidate, flattening the results
// while preserving order.
func expandAll(candidates iter.Seq[string], expander Expander) iter.Seq[string] {
	return func(yield func(string) bool) {
		for candidate := range candidates {
			for expanded := range expander.Expand(candidate) {
				if !yield(expanded) {
					return
				}
			}
		}
	}
}

// filterValid yields only the candidates accepted by checker, preserving
// their relative order. It performs no filesystem access of its own.
func filterValid(candidates iter.Seq[string], checker Checker) iter.Seq[string] {
	return func(yield func(string) bool) {
		for candidate := range candidates {
			if checker.IsValid(candidate) && !yield(candidate) {
				return
			}
		}
	}
}
