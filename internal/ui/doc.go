// Package ui is the constructplan terminal front end.
//
// Core abstractions:
//   - View: a screen or modal with its own Init/Update/View (Elm-style)
//   - ShellLayout: splits the terminal into header, tab strip, sidebar and content panels
//   - FocusManager: rotates keyboard focus between the sidebar and the content panel
//   - History: back navigation over visited routes
//   - OverlayStack: modals (wizard, switcher, confirm) that receive input first
//
// AppModel owns the session.Store; screens are rebuilt on navigation while
// tabs persist.
package ui
