// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

// Package cliout provides output formatting for the binfind CLI: colored
// human-readable text when stdout is a terminal, plain text when it is not,
// and JSON when requested.
package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = !term.IsTerminal(int(os.Stdout.Fd()))
)

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat == FormatJSON
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// paint wraps s in a color code unless color is disabled.
func paint(color, s string) string {
	mu.RLock()
	plain := noColor
	mu.RUnlock()
	if plain {
		return s
	}
	return color + s + Reset
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Success prints a success line with a green check.
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(Green, "✓"), fmt.Sprintf(format, args...))
}

// Error prints an error line with a red cross.
func Error(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(Red, "✗"), fmt.Sprintf(format, args...))
}

// Warning prints a warning line.
func Warning(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(Yellow, "!"), fmt.Sprintf(format, args...))
}

// Label prints an aligned "name: value" line.
func Label(label, value string) {
	fmt.Printf("  %s %s\n", paint(Bold, label+":"), value)
}

// Hint prints a dimmed hint line.
func Hint(format string, args ...any) {
	fmt.Println(paint(Gray, "  "+fmt.Sprintf(format, args...)))
}

// Plain prints an unstyled line.
func Plain(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
