// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package finder

import (
	"slices"
	"testing"
)

func TestParseExtensionTable(t *testing.T) {
	tests := []struct {
		name    string
		pathext string
		want    ExtensionTable
	}{
		{
			name:    "typical value",
			pathext: ".COM;.EXE;.BAT;.CMD",
			want:    ExtensionTable{".COM", ".EXE", ".BAT", ".CMD"},
		},
		{
			name:    "malformed segments dropped silently",
			pathext: ".COM;EXE;;.BAT;garbage",
			want:    ExtensionTable{".COM", ".BAT"},
		},
		{
			name:    "empty value",
			pathext: "",
			want:    nil,
		},
		{
			name:    "no valid segments",
			pathext: "EXE;BAT",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseExtensionTable(tt.pathext)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseExtensionTable(%q) = %v, want %v", tt.pathext, got, tt.want)
			}
		})
	}
}

func TestExtensionTableMatches(t *testing.T) {
	table := ExtensionTable{".EXE", ".BAT"}

	tests := []struct {
		path string
		want bool
	}{
		{`C:\bin\tool.EXE`, true},
		{`C:\bin\tool.exe`, true}, // case-insensitive
		{`C:\bin\tool.BAT`, true},
		{`C:\bin\tool`, false},
		{`C:\bin\tool.sh`, false}, // unrecognized suffix is not a match
		{`tool.EXE`, true},
		{`tool`, false},
	}

	for _, tt := range tests {
		if got := table.Matches(tt.path); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIdentityExpander(t *testing.T) {
	got := collect(Identity().Expand("/usr/bin/tool"))
	want := []string{"/usr/bin/tool"}
	if !slices.Equal(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExtensionExpander(t *testing.T) {
	tests := []struct {
		name      string
		table     ExtensionTable
		candidate string
		want      []string
	}{
		{
			name:      "unsuffixed candidate expands per table entry in order",
			table:     ExtensionTable{".EXE", ".BAT"},
			candidate: `C:\bin\tool`,
			want:      []string{`C:\bin\tool.EXE`, `C:\bin\tool.BAT`},
		},
		{
			name:      "recognized suffix passes through unchanged",
			table:     ExtensionTable{".EXE", ".BAT"},
			candidate: `C:\bin\tool.EXE`,
			want:      []string{`C:\bin\tool.EXE`},
		},
		{
			name:      "suffix match is case-insensitive",
			table:     ExtensionTable{".EXE"},
			candidate: `C:\bin\tool.exe`,
			want:      []string{`C:\bin\tool.exe`},
		},
		{
			name:      "unrecognized suffix still receives extensions",
			table:     ExtensionTable{".EXE"},
			candidate: `C:\bin\tool.sh`,
			want:      []string{`C:\bin\tool.sh.EXE`},
		},
		{
			name:      "empty table yields nothing",
			table:     nil,
			candidate: `C:\bin\tool`,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewExtensionExpander(tt.table).Expand(tt.candidate))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expand(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestExtensionExpanderStopsEarly(t *testing.T) {
	expander := NewExtensionExpander(ExtensionTable{".COM", ".EXE", ".BAT"})

	var got []string
	for p := range expander.Expand("tool") {
		got = append(got, p)
		break
	}
	want := []string{"tool.COM"}
	if !slices.Equal(got, want) {
		t.Errorf("first expansion = %v, want %v", got, want)
	}
}
