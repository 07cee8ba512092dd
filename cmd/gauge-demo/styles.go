package main

import "github.com/drake/cellview/style"

// Styles holds the demo's gauge and frame styles.
type Styles struct {
	Base   style.Style
	Fill   style.Style
	Border style.Style
	Title  style.Style
}

// DefaultStyles returns the default demo style configuration.
func DefaultStyles() Styles {
	return Styles{
		Base: style.New(),
		Fill: style.New().
			Foreground(style.ANSI(230)). // Cream label text
			Background(style.ANSI(62)),  // Purple fill
		Border: style.New().
			Foreground(style.ANSI(240)), // Gray frame
		Title: style.New().
			Foreground(style.ANSI(230)).
			AddModifier(style.ModBold),
	}
}
