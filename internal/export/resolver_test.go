package export

import (
	"testing"

	"wp2md/internal/logger"
	"wp2md/internal/models"
)

func newTestResolver() *NameResolver {
	return NewNameResolver(logger.NewLogger("error"))
}

func TestResolve_GoodSlugUnchanged(t *testing.T) {
	tests := []struct {
		name string
		slug string
	}{
		{"plain slug", "hello-world"},
		{"slug with underscore", "hello_world"},
		{"slug with dots", "v1.2-release"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver()

			post := models.PostRow{ID: 1, Title: "Ignored Title", Slug: tt.slug}
			if got := r.Resolve(post); got != tt.slug {
				t.Errorf("Resolve = %q, want slug %q unchanged", got, tt.slug)
			}
		})
	}
}

func TestResolve_BadSlugFallsBackToTitle(t *testing.T) {
	tests := []struct {
		name string
		slug string
	}{
		{"empty slug", ""},
		{"whitespace slug", "   "},
		{"percent encoded slug", "about%20me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver()

			post := models.PostRow{ID: 2, Title: "About Me!", Slug: tt.slug}
			if got := r.Resolve(post); got != "About-Me" {
				t.Errorf("Resolve = %q, want About-Me", got)
			}
		})
	}
}

func TestResolve_GeneratedNamesAreDistinct(t *testing.T) {
	r := newTestResolver()

	first := r.Resolve(models.PostRow{ID: 3, Title: "!!!", Slug: ""})
	second := r.Resolve(models.PostRow{ID: 4, Title: "???", Slug: ""})

	if first != "missing-name-0" {
		t.Errorf("first fallback = %q, want missing-name-0", first)
	}

	if second != "missing-name-1" {
		t.Errorf("second fallback = %q, want missing-name-1", second)
	}

	if r.Fallbacks() != 2 {
		t.Errorf("Fallbacks() = %d, want 2", r.Fallbacks())
	}
}

func TestResolve_TitleFallbackDoesNotBurnCounter(t *testing.T) {
	r := newTestResolver()

	r.Resolve(models.PostRow{ID: 5, Title: "Real Title", Slug: ""})

	if r.Fallbacks() != 0 {
		t.Errorf("Fallbacks() = %d, want 0 after title-derived name", r.Fallbacks())
	}
}
