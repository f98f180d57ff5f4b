// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

// Package finder implements the candidate-generation pipeline behind
// executable lookup: classify the requested name, generate candidate paths,
// expand platform executable extensions, and filter through a caller-supplied
// validity checker.
//
// The pipeline is a composition of lazy sequence transforms over
// iter.Seq[string]; no stage materializes the full candidate list, and
// consuming only part of the result sequence generates only that part.
//
// # Lookup strategies
//
// A name containing a path separator is resolved directly against the
// working directory and produces a single candidate. A bare name is joined
// against each entry of a search-path list, in list order, producing one
// candidate per directory. The search-path order is the priority order of
// the results.
//
// # Extension expansion
//
// Platforms split into two classes. On Unix-like systems runnability is a
// permission bit and candidates pass through unchanged (Identity). On
// Windows runnability is a filename-suffix convention configured by
// %PATHEXT%, and each candidate is expanded against an ExtensionTable
// (NewExtensionExpander). DefaultExpander selects the right class for the
// build platform; tests inject tables explicitly to exercise either class
// anywhere.
//
// # Validity
//
// The finder never decides executability itself. Every expanded candidate is
// passed to the supplied Checker, and only accepted candidates are yielded,
// in generation order. See the checker package for ready-made checkers.
//
// Example:
//
//	f := finder.New()
//	seq, err := f.Find("grep", os.Getenv("PATH"), cwd, checker.Default())
//	if err != nil {
//		// bare name with no search path
//	}
//	for path := range seq {
//		fmt.Println(path) // first match is the shell's choice
//		break
//	}
package finder
