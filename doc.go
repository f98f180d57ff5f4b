// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

// Package binfind locates executables the way a command shell does: bare
// names are searched across $PATH in priority order, names containing a
// separator are resolved against the working directory, and on Windows
// candidates are expanded through the %PATHEXT% extension table.
//
//	path, err := binfind.Which("grep")
//
// WhichIn and WhichAllIn take the search path and working directory as
// explicit arguments for callers that manage their own environment. The
// underlying lazy pipeline and the validity predicates it filters through
// live in the finder and checker subpackages.
package binfind
