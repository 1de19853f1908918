package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wp2md/internal/models"
	"wp2md/pkg/utils"
)

// PostWriter serializes posts to <dir>/<id>-<sanitized-title>.md.
type PostWriter struct {
	dir      string
	fixer    *ContentFixer
	resolver *NameResolver
}

// NewPostWriter creates a writer for the given posts directory.
func NewPostWriter(dir string, fixer *ContentFixer, resolver *NameResolver) *PostWriter {
	return &PostWriter{dir: dir, fixer: fixer, resolver: resolver}
}

// Filename returns the output filename for a post. The resolved name goes
// into the slug field only; the filename is keyed by primary key so it is
// collision-free regardless of row order.
func Filename(post models.PostRow) string {
	return fmt.Sprintf("%d-%s.md", post.ID, utils.SanitizeName(post.Title))
}

// Write dumps a single post with its category and tag lists. Existing files
// are overwritten silently.
func (w *PostWriter) Write(post models.PostRow, categories, tags []string) error {
	name := w.resolver.Resolve(post)

	comments, err := models.CommentFlag(post.CommentStatus)
	if err != nil {
		return err
	}

	published, err := models.PublishFlag(post.Status)
	if err != nil {
		return err
	}

	var sb strings.Builder

	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "wp_post_id: %d\n", post.ID)
	fmt.Fprintf(&sb, "title: \"%s\"\n", post.Title)
	fmt.Fprintf(&sb, "slug: %s\n", name)
	fmt.Fprintf(&sb, "date: %s\n", post.Date)
	fmt.Fprintf(&sb, "lastmod: %s\n", post.Modified)
	fmt.Fprintf(&sb, "author: \"%s\"\n", post.Author)
	fmt.Fprintf(&sb, "tags: [%s]\n", strings.Join(tags, ", "))
	fmt.Fprintf(&sb, "categories: [%s]\n", strings.Join(categories, ", "))
	fmt.Fprintf(&sb, "comments: %s\n", comments)
	fmt.Fprintf(&sb, "published: %s\n", published)
	sb.WriteString("---\n")
	sb.WriteString(w.fixer.Fix(post.Content))

	path := filepath.Join(w.dir, Filename(post))
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write post file: %w", err)
	}

	return nil
}
