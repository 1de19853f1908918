package models

// Taxonomy kinds returned by the taxonomy query.
const (
	KindCategory = "category"
	KindTag      = "post_tag"
)

// TaxonomyRow represents one row of the taxonomy query.
type TaxonomyRow struct {
	PostID int64
	Name   string
	Kind   string
}

// Taxonomy holds the grouped category and tag mappings for all posts.
// Lookups are total: a post with no associations yields an empty list.
type Taxonomy struct {
	categories map[int64][]string
	tags       map[int64][]string
}

// NewTaxonomy creates an empty taxonomy mapping.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		categories: make(map[int64][]string),
		tags:       make(map[int64][]string),
	}
}

// Add appends a row to the matching mapping, preserving query order and
// duplicates as returned by the source. Rows of unknown kind are ignored;
// the query already filters to category/post_tag.
func (t *Taxonomy) Add(row TaxonomyRow) {
	switch row.Kind {
	case KindCategory:
		t.categories[row.PostID] = append(t.categories[row.PostID], row.Name)
	case KindTag:
		t.tags[row.PostID] = append(t.tags[row.PostID], row.Name)
	}
}

// Categories returns the ordered category names for a post, possibly empty.
func (t *Taxonomy) Categories(postID int64) []string {
	return t.categories[postID]
}

// Tags returns the ordered tag names for a post, possibly empty.
func (t *Taxonomy) Tags(postID int64) []string {
	return t.tags[postID]
}
