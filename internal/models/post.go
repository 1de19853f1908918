// Package models defines data structures for the exporter's database rows and
// taxonomy mappings.
package models

// Post types recognized by the exporter. Rows of any other type are skipped.
const (
	TypePost = "post"
	TypePage = "page"
)

// PostRow represents one row of the post/page query, one typed field per
// selected column.
type PostRow struct {
	ID            int64
	Title         string
	Type          string
	Status        string
	Slug          string
	Date          string
	Modified      string
	Content       string
	CommentCount  int64
	CommentStatus string
	Excerpt       string
	Author        string
}

// IsPost returns true if the row is a dated blog post.
func (p *PostRow) IsPost() bool {
	return p.Type == TypePost
}

// IsPage returns true if the row is a standalone page.
func (p *PostRow) IsPage() bool {
	return p.Type == TypePage
}
