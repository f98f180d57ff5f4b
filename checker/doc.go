// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

// Package checker provides validity predicates for executable lookup:
// does a candidate path name a real, runnable file?
//
// Checkers take an afero.Fs, so production code runs them against the OS
// filesystem (Default) while tests run them against afero.NewMemMapFs()
// without touching disk. All and Any compose checkers with logical AND/OR;
// anything implementing IsValid(path) bool composes the same way.
package checker
