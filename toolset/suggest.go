// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package toolset

import "fmt"

// suggestions maps well-known tool names to installation pages.
var suggestions = map[string]string{
	"node":   "https://nodejs.org/",
	"npm":    "https://nodejs.org/",
	"pnpm":   "https://pnpm.io/installation",
	"yarn":   "https://yarnpkg.com/getting-started/install",
	"python": "https://www.python.org/downloads/",
	"pip":    "https://www.python.org/downloads/",
	"poetry": "https://python-poetry.org/docs/#installation",
	"uv":     "https://docs.astral.sh/uv/getting-started/installation/",
	"docker": "https://www.docker.com/products/docker-desktop",
	"git":    "https://git-scm.com/downloads",
	"gh":     "https://cli.github.com/",
	"go":     "https://go.dev/dl/",
	"dotnet": "https://dotnet.microsoft.com/download",
	"java":   "https://adoptium.net/",
	"mvn":    "https://maven.apache.org/install.html",
	"gradle": "https://gradle.org/install/",
	"rustc":  "https://rustup.rs/",
	"cargo":  "https://rustup.rs/",
	"make":   "https://www.gnu.org/software/make/",
	"cmake":  "https://cmake.org/download/",
	"jq":     "https://jqlang.github.io/jq/download/",
}

// InstallSuggestion returns a short hint for installing a missing tool. For
// unknown tools the hint is generic.
func InstallSuggestion(name string) string {
	if url, ok := suggestions[name]; ok {
		return url
	}
	return fmt.Sprintf("install %s with your system package manager", name)
}
