// Package validator provides structural validation for exported markdown
// files.
package validator

import (
	"fmt"
	"strings"

	"wp2md/pkg/frontmatter"
)

// Expected front-matter fields per layout, in output order.
var (
	pageKeys = []string{"layout", "title", "date", "comments", "sharing", "footer"}
	postKeys = []string{
		"wp_post_id", "title", "slug", "date", "lastmod",
		"author", "tags", "categories", "comments", "published",
	}
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// ValidationResult contains validation results for one document.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	Kind     string
	IsValid  bool
}

// PrintErrors prints all errors to stdout.
func (r *ValidationResult) PrintErrors() {
	for _, e := range r.Errors {
		if e.Field != "" {
			fmt.Printf("  ❌ %s: %s (got %q)\n", e.Field, e.Message, e.Value)
		} else {
			fmt.Printf("  ❌ %s\n", e.Message)
		}
	}
}

// PrintWarnings prints all warnings to stdout.
func (r *ValidationResult) PrintWarnings() {
	for _, w := range r.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
}

// ExportValidator checks that an exported file carries the front matter its
// layout requires, with the fields in writer order.
type ExportValidator struct{}

// NewExportValidator creates a new validator.
func NewExportValidator() *ExportValidator {
	return &ExportValidator{}
}

// Validate checks one document. The layout is inferred from the first
// front-matter field: pages start with "layout", posts with "wp_post_id".
func (v *ExportValidator) Validate(content string) *ValidationResult {
	result := &ValidationResult{}

	header, body, had, err := frontmatter.Split(content)
	if err != nil {
		result.addError("", "", err.Error())

		return result
	}

	if !had {
		result.addError("", "", "no front matter block")

		return result
	}

	keys := frontmatter.Keys(header)
	if len(keys) == 0 {
		result.addError("", "", "front matter has no fields")

		return result
	}

	var want []string

	switch keys[0] {
	case "layout":
		result.Kind = "page"
		want = pageKeys
	case "wp_post_id":
		result.Kind = "post"
		want = postKeys
	default:
		result.addError(keys[0], "", "unrecognized leading field")

		return result
	}

	v.checkKeys(result, keys, want)

	fields, err := frontmatter.Parse(header)
	if err != nil {
		result.addError("", "", fmt.Sprintf("front matter is not valid YAML: %v", err))

		return result
	}

	v.checkValues(result, fields)

	if strings.TrimSpace(body) == "" {
		result.Warnings = append(result.Warnings, "empty body")
	}

	result.IsValid = len(result.Errors) == 0

	return result
}

func (v *ExportValidator) checkKeys(result *ValidationResult, keys, want []string) {
	if len(keys) != len(want) {
		result.addError("", strings.Join(keys, ","),
			fmt.Sprintf("expected %d fields, found %d", len(want), len(keys)))

		return
	}

	for i, k := range want {
		if keys[i] != k {
			result.addError(keys[i], "", fmt.Sprintf("field %d should be %q", i, k))
		}
	}
}

func (v *ExportValidator) checkValues(result *ValidationResult, fields map[string]any) {
	for _, name := range []string{"comments", "published", "sharing", "footer"} {
		val, ok := fields[name]
		if !ok {
			continue
		}

		if _, isBool := val.(bool); !isBool {
			result.addError(name, fmt.Sprintf("%v", val), "must be true or false")
		}
	}

	for _, name := range []string{"tags", "categories"} {
		val, ok := fields[name]
		if !ok {
			continue
		}

		if val == nil {
			// YAML parses "tags: []" to an empty sequence, not nil; nil
			// means the bracket list was missing entirely
			result.addError(name, "", "must be a bracket list")

			continue
		}

		if _, isList := val.([]any); !isList {
			result.addError(name, fmt.Sprintf("%v", val), "must be a bracket list")
		}
	}

	if title, ok := fields["title"]; ok {
		if _, isString := title.(string); !isString {
			result.addError("title", fmt.Sprintf("%v", title), "must be a string")
		}
	}
}

func (r *ValidationResult) addError(field, value, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: message})
}
