package periodic

// Clipboard reads text from the system clipboard. It is consulted only
// when Ctrl+V is pressed.
//
// For GLFW:
//
//	table := periodic.New(renderer, data, periodic.WithClipboard(opengl.NewClipboard(window)))
type Clipboard interface {
	// GetText returns the clipboard text, or "" when it holds none.
	GetText() string
}

// ClipboardFunc adapts a plain function to Clipboard.
type ClipboardFunc func() string

// GetText calls f.
func (f ClipboardFunc) GetText() string {
	return f()
}

// WithClipboard sets where Ctrl+V reads from. Without one paste does nothing.
func WithClipboard(c Clipboard) TableOption {
	return func(t *Table) { t.clipboard = c }
}

// clipboardText returns the clipboard contents, or "" without a clipboard.
func (t *Table) clipboardText() string {
	if t.clipboard == nil {
		return ""
	}
	return t.clipboard.GetText()
}
