// Package export converts post and page rows into static-site markdown files.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"wp2md/internal/logger"
	"wp2md/internal/models"
	"wp2md/pkg/utils"
)

// NameResolver derives filesystem-safe names for posts and pages whose stored
// slug is unusable. The fallback counter is per-resolver state so a single
// run never hands out the same generated name twice.
type NameResolver struct {
	log              *logger.Logger
	missingNameCount int
}

// NewNameResolver creates a resolver that reports fallback names through the
// given logger.
func NewNameResolver(log *logger.Logger) *NameResolver {
	return &NameResolver{log: log}
}

// Resolve returns the record's slug when it is usable: non-empty after
// trimming and free of '%'. Otherwise it derives a name from the title, or
// generates a numbered placeholder when the title has no usable characters.
// Every non-slug name is reported as a warning.
func (r *NameResolver) Resolve(post models.PostRow) string {
	trimmed := strings.TrimSpace(post.Slug)
	if trimmed != "" && !strings.Contains(trimmed, "%") {
		return post.Slug
	}

	name := utils.SanitizeName(post.Title)
	if strings.TrimSpace(name) == "" {
		name = "missing-name-" + strconv.Itoa(r.missingNameCount)
		r.missingNameCount++
	}

	r.log.Warn(fmt.Sprintf("page/post %q (ID %d) has bad name, using name %q", post.Title, post.ID, name))

	return name
}

// Fallbacks returns how many generated placeholder names have been handed
// out so far.
func (r *NameResolver) Fallbacks() int {
	return r.missingNameCount
}
