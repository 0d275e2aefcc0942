// Package catalog reads line-oriented catalog files.
//
// A catalog is plain text with one entry per line. Blank lines and lines
// starting with '#' are skipped; surrounding whitespace is trimmed.
package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one catalog line and its 1-based line number.
type Entry struct {
	Line int
	Text string
}

// Read returns at most maxEntries entries from the start of the file at path.
// A maxEntries of zero or less reads the whole file.
func Read(path string, maxEntries int) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, Entry{Line: line, Text: text})
		if maxEntries > 0 && len(entries) == maxEntries {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return entries, nil
}
