// Package frontmatter provides utilities for splitting and parsing the
// front-matter header block of exported markdown files.
package frontmatter

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes the front-matter block.
const Delimiter = "---"

// ErrUnterminated is returned when a front-matter block never closes.
var ErrUnterminated = errors.New("front matter block not terminated")

// Split separates the front-matter block from the body. The returned header
// excludes the delimiter lines. If the content does not start with a
// delimiter, had is false and body is the full input.
func Split(content string) (header string, body string, had bool, err error) {
	open := Delimiter + "\n"
	if !strings.HasPrefix(content, open) {
		return "", content, false, nil
	}

	rest := content[len(open):]

	idx := strings.Index(rest, "\n"+Delimiter+"\n")
	if idx < 0 {
		// A block that closes at end-of-content without a trailing newline.
		if strings.HasSuffix(rest, "\n"+Delimiter) {
			return rest[:len(rest)-len("\n"+Delimiter)], "", true, nil
		}

		return "", "", false, ErrUnterminated
	}

	header = rest[:idx]
	body = rest[idx+len("\n"+Delimiter+"\n"):]

	return header, body, true, nil
}

// Join reassembles a document from a header block and body.
func Join(header, body string) string {
	return Delimiter + "\n" + header + "\n" + Delimiter + "\n" + body
}

// Parse decodes a header block (without delimiters) as YAML into a map.
func Parse(header string) (map[string]any, error) {
	fields := map[string]any{}
	if err := yaml.Unmarshal([]byte(header), &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// Keys returns the header's field names in the order they appear. Lines that
// are not "key: value" pairs are skipped.
func Keys(header string) []string {
	var keys []string

	for line := range strings.SplitSeq(header, "\n") {
		key, _, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) == "" {
			continue
		}
		// Continuation lines of multi-line YAML values are indented.
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}

		keys = append(keys, strings.TrimSpace(key))
	}

	return keys
}
