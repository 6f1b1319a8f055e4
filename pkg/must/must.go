// Package must turns errors into panics. Use it in tests, and nowhere an error
// can actually happen.
package must

import (
	"os"
	"path/filepath"
)

// OK panics if err is non-nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 returns v, or panics if err is non-nil.
func OK1[T any](v T, err error) T {
	OK(err)
	return v
}

// OK2 returns v1 and v2, or panics if err is non-nil.
func OK2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	OK(err)
	return v1, v2
}

// ReadFileString returns the content of a file as a string.
func ReadFileString(name string) string {
	return string(OK1(os.ReadFile(name)))
}

// WriteFile creates or truncates a file with the given content. Missing
// parent directories are created.
func WriteFile(name, content string) {
	OK(os.MkdirAll(filepath.Dir(name), 0700))
	OK(os.WriteFile(name, []byte(content), 0600))
}
