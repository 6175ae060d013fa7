package model

// Path represents a file system path.
type Path string

// Input is a puzzle input file loaded into memory.
type Input struct {
	Path Path
	Hash string // hex SHA-256 of the raw file content
	// Lines holds the file split on newlines, without line terminators and
	// without an artifact for a trailing newline.
	Lines []string
}
