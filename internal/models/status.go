package models

import (
	"errors"
	"fmt"
)

// Status mapping errors. Unknown values abort the run on purpose: a status we
// have never seen means the source schema drifted, and silently guessing a
// default would corrupt the export.
var (
	ErrUnknownCommentStatus = errors.New("unknown comment status")
	ErrUnknownPostStatus    = errors.New("unknown post status")
)

// CommentFlag maps a WordPress comment_status to the front-matter "comments"
// value.
func CommentFlag(status string) (string, error) {
	switch status {
	case "open":
		return "true", nil
	case "closed":
		return "false", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommentStatus, status)
	}
}

// PublishFlag maps a WordPress post_status to the front-matter "published"
// value.
func PublishFlag(status string) (string, error) {
	switch status {
	case "publish":
		return "true", nil
	case "draft", "auto-draft":
		return "false", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPostStatus, status)
	}
}
