// Package store reads posts, pages and taxonomy associations from a
// WordPress database.
package store

import (
	"database/sql"
	"fmt"

	"wp2md/internal/models"
)

// queryPosts selects all posts and pages except auto-drafts, with the
// author's display name. No ORDER BY: output filenames are keyed by primary
// key or slug, so row order does not affect the final file set.
const queryPosts = `SELECT
    posts.ID,
    posts.post_title,
    posts.post_type,
    posts.post_status,
    posts.post_name,
    posts.post_date,
    posts.post_modified,
    posts.post_content,
    posts.comment_count,
    posts.comment_status,
    posts.post_excerpt,
    users.display_name
FROM wp_posts AS posts
    LEFT JOIN wp_users AS users
        ON posts.post_author = users.ID
WHERE
    posts.post_status != 'auto-draft' AND
    posts.post_type IN ('post', 'page')`

// queryTaxonomy selects category and tag names per post for published,
// non-inherited posts.
const queryTaxonomy = `SELECT
    object_id, name, taxonomy
FROM wp_term_taxonomy
    INNER JOIN wp_terms USING (term_id)
    INNER JOIN wp_term_relationships USING (term_taxonomy_id)
    INNER JOIN wp_posts ON wp_posts.ID = object_id
WHERE
    taxonomy IN ('category', 'post_tag') AND
    post_type = 'post' AND
    post_status != 'inherit'
ORDER BY object_id, taxonomy`

// Store provides read access to the source content database.
type Store struct {
	db *sql.DB
}

// Open connects to the database with the given driver and connection string
// and verifies the connection.
func Open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStore wraps an existing database handle. The caller keeps ownership.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Posts loads all post and page rows.
func (s *Store) Posts() ([]models.PostRow, error) {
	rows, err := s.db.Query(queryPosts)
	if err != nil {
		return nil, fmt.Errorf("post query failed: %w", err)
	}
	defer rows.Close()

	var posts []models.PostRow

	for rows.Next() {
		var p models.PostRow

		var author sql.NullString

		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Type,
			&p.Status,
			&p.Slug,
			&p.Date,
			&p.Modified,
			&p.Content,
			&p.CommentCount,
			&p.CommentStatus,
			&p.Excerpt,
			&author,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}

		p.Author = author.String

		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("post row iteration failed: %w", err)
	}

	return posts, nil
}

// Taxonomy loads the category and tag associations for all posts, grouped by
// post id in query order.
func (s *Store) Taxonomy() (*models.Taxonomy, error) {
	rows, err := s.db.Query(queryTaxonomy)
	if err != nil {
		return nil, fmt.Errorf("taxonomy query failed: %w", err)
	}
	defer rows.Close()

	taxonomy := models.NewTaxonomy()

	for rows.Next() {
		var row models.TaxonomyRow

		if err := rows.Scan(&row.PostID, &row.Name, &row.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan taxonomy row: %w", err)
		}

		taxonomy.Add(row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("taxonomy row iteration failed: %w", err)
	}

	return taxonomy, nil
}
