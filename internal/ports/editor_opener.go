package ports

// EditorOpener opens a local path in the user's editor
type EditorOpener interface {
	Open(path string, editor string) error
}
