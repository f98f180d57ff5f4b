//go:build !windows

// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package checker

import "os"

// isExecutable reports whether any execute permission bit is set. Matches
// shell lookup semantics: group/other execute bits count even when the
// current user could not actually run the file.
func isExecutable(info os.FileInfo) bool {
	return info.Mode()&0111 != 0
}
