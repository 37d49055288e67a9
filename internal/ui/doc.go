// Package ui holds the lipgloss color palette and panel helpers used by the
// text presenter.
package ui
