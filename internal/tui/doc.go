// Package tui renders user records for terminal output.
//
// Output is plain text with box-drawing separators. Styles come from
// lipgloss and degrade to unstyled text when the writer is not a terminal.
package tui
