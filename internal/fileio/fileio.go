// Package fileio reads and writes whole files for the tcrypt command.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const initialSize = 1024

// ErrIO is wrapped by every error returned from this package.
var ErrIO = errors.New("fileio: i/o failure")

// ReadFile returns the full contents of path.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	data, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}
	return data, nil
}

// readAll drains r into a buffer that starts at initialSize bytes and
// grows as needed.
func readAll(r io.Reader) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, initialSize))
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile creates or truncates path and writes data to it.
func WriteFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err = writeAll(f, data); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func writeAll(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return err
	}
	if n < len(data) {
		return io.ErrShortWrite
	}
	return nil
}
