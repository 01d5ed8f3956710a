package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdout is the output path that writes to standard output.
const Stdout = "-"

// Output is a destination file that only appears once Commit succeeds.
// Writes go to a temporary file next to the destination; Discard removes it,
// so a failed run never leaves a partial seed file behind.
type Output struct {
	path string
	tmp  *os.File
	w    io.Writer
	done bool
}

// Create opens an Output for path, creating parent directories as needed.
func Create(path string) (*Output, error) {
	if path == Stdout {
		return &Output{path: path, w: os.Stdout}, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary output: %w", err)
	}
	return &Output{path: path, tmp: tmp, w: tmp}, nil
}

func (o *Output) Path() string {
	return o.path
}

func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// Commit moves the written content into place.
func (o *Output) Commit() error {
	if o.done || o.tmp == nil {
		o.done = true
		return nil
	}
	o.done = true

	if err := o.tmp.Close(); err != nil {
		os.Remove(o.tmp.Name())
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Chmod(o.tmp.Name(), 0644); err != nil {
		os.Remove(o.tmp.Name())
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(o.tmp.Name(), o.path); err != nil {
		os.Remove(o.tmp.Name())
		return fmt.Errorf("failed to write %s: %w", o.path, err)
	}
	return nil
}

// Discard drops everything written. It is a no-op after Commit.
func (o *Output) Discard() error {
	if o.done || o.tmp == nil {
		o.done = true
		return nil
	}
	o.done = true

	o.tmp.Close()
	if err := os.Remove(o.tmp.Name()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temporary output: %w", err)
	}
	return nil
}
