//go:build windows

// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package checker

import "os"

// isExecutable is trivially true on Windows: the loader decides runnability
// by filename suffix, which candidate expansion already enforced.
func isExecutable(info os.FileInfo) bool {
	return true
}
