// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package binfind

import (
	"errors"
	"fmt"
	"iter"
	"os"

	"github.com/binfind/binfind/checker"
	"github.com/binfind/binfind/finder"
)

// ErrNotFound is returned by the single-result lookups when no candidate
// satisfied the validity checks. The multi-result lookups express the same
// outcome as an empty slice with a nil error.
var ErrNotFound = errors.New("executable file not found")

// Which resolves name the way a shell would and returns the first match.
// The search path comes from $PATH and relative names containing a separator
// are resolved against the current working directory.
func Which(name string) (string, error) {
	searchPath, cwd, err := ambient()
	if err != nil {
		return "", err
	}
	return WhichIn(name, searchPath, cwd)
}

// WhichAll resolves name like Which but returns every match, in search-path
// priority order. No match is an empty slice, not an error.
func WhichAll(name string) ([]string, error) {
	searchPath, cwd, err := ambient()
	if err != nil {
		return nil, err
	}
	return WhichAllIn(name, searchPath, cwd)
}

// WhichIn resolves name against an explicit search path and working
// directory, without consulting the environment, and returns the first match.
func WhichIn(name, searchPath, cwd string) (string, error) {
	seq, err := find(name, searchPath, cwd)
	if err != nil {
		return "", err
	}
	for path := range seq {
		return path, nil
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// WhichAllIn resolves name against an explicit search path and working
// directory and returns every match, in priority order.
func WhichAllIn(name, searchPath, cwd string) ([]string, error) {
	seq, err := find(name, searchPath, cwd)
	if err != nil {
		return nil, err
	}
	var paths []string
	for path := range seq {
		paths = append(paths, path)
	}
	return paths, nil
}

func find(name, searchPath, cwd string) (iter.Seq[string], error) {
	return finder.New().Find(name, searchPath, cwd, checker.Default())
}

func ambient() (searchPath, cwd string, err error) {
	cwd, err = os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return os.Getenv("PATH"), cwd, nil
}
