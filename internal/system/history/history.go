// Released under an MIT license. See LICENSE.

// Package history persists the interactive session's line history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

// Name is the name of the history file in the user's home directory.
const Name = ".mlisp_history"

// Load opens the history file and passes it to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save creates or truncates the history file and passes it to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return op(filepath.Join(home, Name))
}
