package options

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

type Files interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

type PathResolver interface {
	Resolve(path string) (string, error)
}

// OSFiles reads from the real filesystem
type OSFiles struct{}

func (OSFiles) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFiles) ReadFile(path string) ([]byte, error) {
	return ioutil.ReadFile(path)
}

// AbsPaths resolves relative paths against the current working directory
type AbsPaths struct{}

func (AbsPaths) Resolve(path string) (string, error) {
	return filepath.Abs(path)
}
