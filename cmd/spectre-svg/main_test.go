package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWriteOutputFile writes through the file path and reads the
// content back.
func TestWriteOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.svg")

	err := writeOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<svg/>", string(got))
}

// TestWriteOutputEmitError checks a failure inside emit comes back to
// the caller unchanged.
func TestWriteOutputEmitError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.svg")
	boom := errors.New("emit failed")

	err := writeOutput(path, func(io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)
}

// TestWriteOutputReportsCloseError makes the final close fail, by
// closing the file from inside emit, and demands the error surfaces
// instead of being dropped.
func TestWriteOutputReportsCloseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.svg")

	err := writeOutput(path, func(w io.Writer) error {
		return w.(*os.File).Close()
	})
	require.ErrorIs(t, err, os.ErrClosed)
}
