// Package ui provides terminal output helpers for the glancehist CLI.
//
// The package includes a spinner, tables, sparklines, and styled text using
// the Lip Gloss library for consistent terminal styling across commands.
//
// # Components Overview
//
//	Spinner          - Status indicator for sampling and rendering
//	RenderSimpleTable - Static Bubbles table (plugins listing)
//	RenderKeyValues  - Aligned key/value summary block
//	RenderSparkline  - One-line trend of a metric's recent history
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and skipped items
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//
// ConfigureColors switches to monochrome output for --no-color, NO_COLOR,
// or when stdout is not a terminal.
//
// # Spinner Usage
//
//	s := ui.NewSpinner("Sampling")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail() or s.Skip()
//
// On a terminal the spinner animates in place; otherwise only the final
// status line is printed.
package ui
