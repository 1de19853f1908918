package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wp2md/internal/models"
)

// PageWriter serializes pages to <dir>/<name>/index.md.
type PageWriter struct {
	dir      string
	fixer    *ContentFixer
	resolver *NameResolver
}

// NewPageWriter creates a writer for the given pages directory.
func NewPageWriter(dir string, fixer *ContentFixer, resolver *NameResolver) *PageWriter {
	return &PageWriter{dir: dir, fixer: fixer, resolver: resolver}
}

// Write dumps a single page. Parent-child relationships between pages are not
// handled; children land next to their parents. Existing files are
// overwritten silently.
func (w *PageWriter) Write(page models.PostRow) error {
	name := w.resolver.Resolve(page)

	subdir := filepath.Join(w.dir, name)
	if err := os.MkdirAll(subdir, 0755); err != nil {
		return fmt.Errorf("failed to create page directory: %w", err)
	}

	comments, err := models.CommentFlag(page.CommentStatus)
	if err != nil {
		return err
	}

	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString("layout: page\n")
	fmt.Fprintf(&sb, "title: \"%s\"\n", page.Title)
	fmt.Fprintf(&sb, "date: %s\n", pageDate(page.Date))
	fmt.Fprintf(&sb, "comments: %s\n", comments)
	sb.WriteString("sharing: true\n")
	sb.WriteString("footer: true\n")
	sb.WriteString("---\n")
	sb.WriteString(w.fixer.Fix(page.Content))
	sb.WriteString("\n")

	path := filepath.Join(subdir, "index.md")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write page file: %w", err)
	}

	return nil
}

// pageDate drops the seconds from the database's date representation:
// "2012-01-02 15:04:05" becomes "2012-01-02 15:04".
func pageDate(date string) string {
	if len(date) <= 3 {
		return ""
	}

	return date[:len(date)-3]
}
