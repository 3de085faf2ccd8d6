package entities

// TextDocument is a document the editor host has open.
type TextDocument struct {
	URI     string
	Version int
	Text    string
}
