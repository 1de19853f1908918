package export

import (
	"fmt"
	"os"

	"wp2md/internal/config"
	"wp2md/internal/logger"
	"wp2md/internal/store"
)

// Stats summarizes one export run.
type Stats struct {
	Posts     int
	Pages     int
	Skipped   int
	Fallbacks int
}

// Exporter drives a full export: load taxonomy once, stream all post/page
// rows, dispatch each to the matching writer.
type Exporter struct {
	store      *store.Store
	log        *logger.Logger
	resolver   *NameResolver
	postWriter *PostWriter
	pageWriter *PageWriter
	postsDir   string
	pagesDir   string
}

// NewExporter wires an exporter from a store and configuration.
func NewExporter(st *store.Store, cfg *config.Config, log *logger.Logger) *Exporter {
	resolver := NewNameResolver(log)
	fixer := NewContentFixer(cfg.Fixups)

	return &Exporter{
		store:      st,
		log:        log,
		resolver:   resolver,
		postWriter: NewPostWriter(cfg.Output.PostsDir, fixer, resolver),
		pageWriter: NewPageWriter(cfg.Output.PagesDir, fixer, resolver),
		postsDir:   cfg.Output.PostsDir,
		pagesDir:   cfg.Output.PagesDir,
	}
}

// Run performs the export. The first error aborts the run; files already
// written stay on disk, re-running after fixing the cause overwrites them.
func (e *Exporter) Run() (Stats, error) {
	var stats Stats

	if err := os.MkdirAll(e.postsDir, 0755); err != nil {
		return stats, fmt.Errorf("failed to create posts directory: %w", err)
	}

	if err := os.MkdirAll(e.pagesDir, 0755); err != nil {
		return stats, fmt.Errorf("failed to create pages directory: %w", err)
	}

	taxonomy, err := e.store.Taxonomy()
	if err != nil {
		return stats, err
	}

	posts, err := e.store.Posts()
	if err != nil {
		return stats, err
	}

	for _, post := range posts {
		switch {
		case post.IsPost():
			err := e.postWriter.Write(post, taxonomy.Categories(post.ID), taxonomy.Tags(post.ID))
			if err != nil {
				return stats, fmt.Errorf("post %d: %w", post.ID, err)
			}

			e.log.Debug(fmt.Sprintf("wrote post %s", Filename(post)))

			stats.Posts++
		case post.IsPage():
			if err := e.pageWriter.Write(post); err != nil {
				return stats, fmt.Errorf("page %d: %w", post.ID, err)
			}

			stats.Pages++
		default:
			// Other content types are not exported
			stats.Skipped++
		}
	}

	stats.Fallbacks = e.resolver.Fallbacks()

	return stats, nil
}
