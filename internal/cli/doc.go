// Package cli provides the terminal user interface for timejar.
//
// The package uses [Bubbletea] for the interactive widget and [Lipgloss] for
// styling. The widget follows the standard Bubbletea Model-View-Update (MVU)
// architecture; it only calls into a jar.State and never touches storage,
// which is the job of the state's observers.
//
// # Keys
//
//   - digits, enter: transfer minutes from Jar 1 to Jar 2
//   - tab: move focus between the minutes field and the history list
//   - up/down (k/j): select a history entry
//   - e or enter on an entry: edit its value, enter confirms, esc cancels
//   - esc, q (outside the field), ctrl+c: quit
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
