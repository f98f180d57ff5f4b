// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package checker

import (
	"github.com/spf13/afero"
)

// Checker decides whether a candidate path is a valid, runnable target.
// Implementations treat inaccessible or nonexistent paths as "not valid";
// they never surface filesystem errors to the caller.
type Checker interface {
	IsValid(path string) bool
}

// Exists returns a checker accepting paths that resolve to a non-directory
// file on fsys.
func Exists(fsys afero.Fs) Checker {
	return existsChecker{fs: fsys}
}

type existsChecker struct {
	fs afero.Fs
}

func (c existsChecker) IsValid(path string) bool {
	info, err := c.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Executable returns a checker accepting paths the platform loader would run:
// on Unix a non-directory file with an execute permission bit set, on Windows
// any non-directory file (runnability there is a filename-suffix convention,
// handled during candidate expansion).
func Executable(fsys afero.Fs) Checker {
	return executableChecker{fs: fsys}
}

type executableChecker struct {
	fs afero.Fs
}

func (c executableChecker) IsValid(path string) bool {
	info, err := c.fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return isExecutable(info)
}

// All composes checkers with logical AND: a path is valid only if every
// checker accepts it. With no checkers every path is valid.
func All(checkers ...Checker) Checker {
	return allChecker(checkers)
}

type allChecker []Checker

func (c allChecker) IsValid(path string) bool {
	for _, checker := range c {
		if !checker.IsValid(path) {
			return false
		}
	}
	return true
}

// Any composes checkers with logical OR: a path is valid if at least one
// checker accepts it. With no checkers no path is valid.
func Any(checkers ...Checker) Checker {
	return anyChecker(checkers)
}

type anyChecker []Checker

func (c anyChecker) IsValid(path string) bool {
	for _, checker := range c {
		if checker.IsValid(path) {
			return true
		}
	}
	return false
}

// Default returns the production checker: the path exists and is executable
// on the real filesystem.
func Default() Checker {
	fs := afero.NewOsFs()
	return All(Exists(fs), Executable(fs))
}
