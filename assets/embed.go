// Package assets carries the default word lists compiled into the binary.
package assets

import (
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func open(name string) (io.ReadCloser, error) {
	return FS.Open(name)
}

// Answers opens the embedded answer list (one word per line, `#` comments).
func Answers() (io.ReadCloser, error) {
	return open("answers.txt")
}

// Allowed opens the embedded list of extra allowed guesses.
func Allowed() (io.ReadCloser, error) {
	return open("allowed.txt")
}
