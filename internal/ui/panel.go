package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel is a bounded region of the shell.
type Panel struct {
	ID     string
	Bounds BoundsFunc
}
