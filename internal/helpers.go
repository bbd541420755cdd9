package internal

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// GeneratedSuffix ends the name of every file magickgen writes.
const GeneratedSuffix = "_gen.go"

// Panics if given non-nil error.
// Should be used only in case of non-recoverable developer error.
func PanicOnError(err error) {
	if err != nil {
		panic(err)
	}
}

// ReadClassList reads one class name per line. Blank lines and lines starting
// with '#' are skipped.
func ReadClassList(r io.Reader) ([]string, error) {
	names := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}

	return names, scanner.Err()
}

// RemoveStaleFiles deletes the generated files in path whose names are not in
// keep and returns what was removed. Hand-written files are never touched.
func RemoveStaleFiles(path string, keep []string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, GeneratedSuffix) || slices.Contains(keep, name) {
			continue
		}

		target := filepath.Join(path, name)
		if err := os.Remove(target); err != nil {
			return removed, err
		}
		removed = append(removed, target)
	}

	return removed, nil
}
