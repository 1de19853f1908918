package export

import (
	"regexp"
	"strings"

	"wp2md/internal/config"
	"wp2md/internal/formatter"
)

// Syntax-highlighter shortcodes as emitted by the source blog software.
var (
	shortcodeOpen  = regexp.MustCompile(`\[sourcecode language="([A-Za-z0-9]+)"\]`)
	shortcodeClose = regexp.MustCompile(`\[/sourcecode\]`)
)

// ContentFixer applies deterministic text substitutions to raw body content.
// Newline normalization always runs; the remaining fixups are opt-in.
type ContentFixer struct {
	convertShortcodes bool
	formatTables      bool
}

// NewContentFixer creates a fixer with the configured optional fixups.
func NewContentFixer(fixups config.FixupsConfig) *ContentFixer {
	return &ContentFixer{
		convertShortcodes: fixups.ConvertShortcodes,
		formatTables:      fixups.FormatTables,
	}
}

// Fix transforms body content for the static-site generator. Pure: same
// input, same output, no side effects.
func (f *ContentFixer) Fix(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if f.convertShortcodes {
		content = shortcodeOpen.ReplaceAllString(content, "``` $1")
		content = shortcodeClose.ReplaceAllString(content, "```")
	}

	if f.formatTables {
		content = formatter.FormatBody(content)
	}

	return content
}
