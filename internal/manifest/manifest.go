// Package manifest reads pinned tool versions from a .tool-versions style
// manifest: one `<tool> <version>` declaration per line, whitespace separated.
package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/conn-castle/toolpin/internal/messages"
)

// Entry is a single tool-version declaration from the manifest.
type Entry struct {
	Tool    string
	Version string
}

// NotFoundError reports that the queried tool is not pinned in the manifest.
type NotFoundError struct {
	Tool string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(messages.ManifestEntryNotFoundFmt, e.Tool, e.Path)
}

// MalformedEntryError reports a matched manifest line with no usable version token.
type MalformedEntryError struct {
	Tool string
	Path string
	Line string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf(messages.ManifestMalformedVersionFmt, e.Path, e.Tool, e.Line)
}

// Lookup reads the manifest at path and returns the pinned version for tool.
// The first line whose first whitespace-delimited field equals tool wins;
// matching is by whole token, so "poetry" never matches a "poetry-plugin" line.
// The manifest is read fresh on every call and never cached.
func Lookup(path string, tool string) (Entry, error) {
	if strings.TrimSpace(tool) == "" {
		return Entry{}, errors.New(messages.ManifestToolRequired)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		fields := declarationFields(line)
		if len(fields) == 0 || fields[0] != tool {
			continue
		}
		if len(fields) < 2 || !hasVersionChars(fields[1]) {
			return Entry{}, &MalformedEntryError{Tool: tool, Path: path, Line: line}
		}
		return Entry{Tool: tool, Version: fields[1]}, nil
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	return Entry{}, &NotFoundError{Tool: tool, Path: path}
}

// Parse reads every declaration from the manifest at path, in file order.
// Later lines for an already-seen tool are ignored so Parse agrees with
// Lookup's first-match rule. A matched line without a usable version token
// is a MalformedEntryError.
func Parse(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	var entries []Entry
	seen := map[string]bool{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		fields := declarationFields(line)
		if len(fields) == 0 || seen[fields[0]] {
			continue
		}
		if len(fields) < 2 || !hasVersionChars(fields[1]) {
			return nil, &MalformedEntryError{Tool: fields[0], Path: path, Line: line}
		}
		seen[fields[0]] = true
		entries = append(entries, Entry{Tool: fields[0], Version: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	return entries, nil
}

// declarationFields splits a manifest line into whitespace-delimited fields,
// dropping blank lines, full-line comments, and trailing # comments.
func declarationFields(line string) []string {
	fields := strings.Fields(line)
	for i, f := range fields {
		if strings.HasPrefix(f, "#") {
			return fields[:i]
		}
	}
	return fields
}

// hasVersionChars reports whether token contains at least one letter or digit.
func hasVersionChars(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
