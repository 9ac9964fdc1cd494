package types

// Provenance tracks where searched text came from.
type Provenance interface {
	Kind() string
	// Path returns displayable path
	Path() string
}

// FileProvenance for filesystem files.
type FileProvenance struct {
	FilePath string
}

// Kind returns "file".
func (f FileProvenance) Kind() string {
	return "file"
}

// Path returns the file path.
func (f FileProvenance) Path() string {
	return f.FilePath
}

// StdinProvenance for text read from standard input.
type StdinProvenance struct{}

// Kind returns "stdin".
func (StdinProvenance) Kind() string {
	return "stdin"
}

// Path returns the grep-style label for standard input.
func (StdinProvenance) Path() string {
	return "(standard input)"
}
