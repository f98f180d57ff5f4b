// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package toolset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/binfind/binfind"
	"github.com/binfind/binfind/logutil"
)

// Tool is one required executable in a manifest.
type Tool struct {
	Name       string `yaml:"name" json:"name"`
	InstallURL string `yaml:"installUrl,omitempty" json:"installUrl,omitempty"`
	Optional   bool   `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// Manifest lists the executables a project expects to find on the search
// path.
type Manifest struct {
	Tools []Tool `yaml:"tools" json:"tools"`
}

// Load reads and parses a tool manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse tool manifest: %w", err)
	}
	for i, tool := range m.Tools {
		if tool.Name == "" {
			return nil, fmt.Errorf("tool manifest entry %d has no name", i)
		}
	}
	return &m, nil
}

// Result is the verification outcome for one tool.
type Result struct {
	Tool  Tool   `json:"tool"`
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
}

// Suggestion returns where to get the tool: the manifest's installUrl when
// present, otherwise a built-in suggestion for well-known tools.
func (r Result) Suggestion() string {
	if r.Tool.InstallURL != "" {
		return r.Tool.InstallURL
	}
	return InstallSuggestion(r.Tool.Name)
}

// Resolver resolves a tool name to an executable path. binfind.Which is the
// production resolver; tests inject their own.
type Resolver func(name string) (string, error)

// Verify resolves every tool in the manifest against the current environment
// and returns one result per tool, in manifest order.
func Verify(m *Manifest) []Result {
	return VerifyWith(m, binfind.Which)
}

// VerifyWith is Verify with an injected resolver.
func VerifyWith(m *Manifest, resolve Resolver) []Result {
	results := make([]Result, 0, len(m.Tools))
	for _, tool := range m.Tools {
		path, err := resolve(tool.Name)
		if err != nil && !errors.Is(err, binfind.ErrNotFound) {
			logutil.Warn("tool resolution failed", "tool", tool.Name, "error", err)
		}
		results = append(results, Result{
			Tool:  tool,
			Path:  path,
			Found: err == nil,
		})
		logutil.Debug("verified tool", "tool", tool.Name, "found", err == nil, "path", path)
	}
	return results
}

// Missing filters results down to required tools that were not found.
// Optional tools never count as missing.
func Missing(results []Result) []Result {
	var missing []Result
	for _, r := range results {
		if !r.Found && !r.Tool.Optional {
			missing = append(missing, r)
		}
	}
	return missing
}
