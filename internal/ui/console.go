package ui

import "github.com/fatih/color"

// Console surfaces informational and warning messages on the terminal.
// It implements the selection pipeline's Messenger interface.
type Console struct{}

// NewConsole creates a new Console
func NewConsole() *Console {
	return &Console{}
}

// Infof prints an informational message
func (c *Console) Infof(format string, args ...any) {
	color.Cyan(format, args...)
}

// Warnf prints a warning message
func (c *Console) Warnf(format string, args ...any) {
	color.Yellow(format, args...)
}
