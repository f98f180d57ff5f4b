// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"strings"
	"testing"

	"github.com/binfind/binfind/testutil"
)

func TestSetFormat(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	tests := []struct {
		format  string
		wantErr bool
		IsJSON  bool
	}{
		{"default", false, false},
		{"", false, false},
		{"json", false, true},
		{"yaml", true, false},
	}

	for _, tt := range tests {
		err := SetFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("SetFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err == nil && IsJSON() != tt.IsJSON {
			t.Errorf("IsJSON() after SetFormat(%q) = %v, want %v", tt.format, IsJSON(), tt.IsJSON)
		}
	}
}

func TestPaintRespectsNoColor(t *testing.T) {
	NoColor()
	if got := paint(Green, "x"); got != "x" {
		t.Errorf("paint() with color disabled = %q, want %q", got, "x")
	}

	ForceColor()
	defer NoColor()
	if got := paint(Green, "x"); got != Green+"x"+Reset {
		t.Errorf("paint() with color forced = %q", got)
	}
}

func TestMessagePrinters(t *testing.T) {
	NoColor()

	out := testutil.CaptureOutput(t, func() error {
		Success("found %s", "/usr/bin/tool")
		Error("missing %s", "gadget")
		Warning("%d problems", 2)
		Label("Path", "/usr/bin/tool")
		Hint("try --all")
		Plain("done")
		return nil
	})

	for _, want := range []string{
		"✓ found /usr/bin/tool",
		"✗ missing gadget",
		"! 2 problems",
		"Path: /usr/bin/tool",
		"try --all",
		"done",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	out := testutil.CaptureOutput(t, func() error {
		return PrintJSON(map[string]string{"name": "tool"})
	})
	if !strings.Contains(out, `"name": "tool"`) {
		t.Errorf("PrintJSON output = %q", out)
	}
}
