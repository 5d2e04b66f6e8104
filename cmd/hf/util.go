package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	// Packages
	huggingface "github.com/mutablelogic/go-huggingface"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readArg returns the argument, or the contents of the file when the
// argument is @path
func readArg(arg string) (string, error) {
	path, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return arg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", huggingface.ErrNotFound.With(path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}
