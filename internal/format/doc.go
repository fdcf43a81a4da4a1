// Package format implements the built-in line formats: a structured Common
// Log Format parser and an ad-hoc token highlighter. Both satisfy the plugin
// contract, so the dispatcher treats them the same way it would treat a
// discovered plugin.
//
// Emphasis is driven by a Theme of lipgloss styles and, for the highlighter,
// an immutable Rules pattern table. Both are constructed once at startup and
// shared by reference.
package format
