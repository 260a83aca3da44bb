package widgets

// Widget renders into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}
