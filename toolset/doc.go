// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

// Package toolset verifies that a project's required executables are
// resolvable. A YAML manifest lists the tools:
//
//	tools:
//	  - name: git
//	  - name: protoc
//	    installUrl: https://protobuf.dev/installation/
//	  - name: jq
//	    optional: true
//
// Verify resolves each entry through binfind and reports what was found,
// what is missing, and where missing tools can be installed from.
package toolset
