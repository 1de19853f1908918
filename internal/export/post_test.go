package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wp2md/internal/config"
	"wp2md/internal/models"
	"wp2md/pkg/frontmatter"
)

func newTestPostWriter(t *testing.T) (*PostWriter, string) {
	t.Helper()

	dir := t.TempDir()
	fixer := NewContentFixer(config.FixupsConfig{})

	return NewPostWriter(dir, fixer, newTestResolver()), dir
}

func TestFilename(t *testing.T) {
	post := models.PostRow{ID: 42, Title: "Hello, World!"}

	if got := Filename(post); got != "42-Hello-World.md" {
		t.Errorf("Filename = %q, want 42-Hello-World.md", got)
	}
}

func TestPostWriter_Write(t *testing.T) {
	w, dir := newTestPostWriter(t)

	post := models.PostRow{
		ID:            42,
		Title:         "Hello, World!",
		Type:          "post",
		Status:        "publish",
		Slug:          "",
		Date:          "2012-01-02 15:04:05",
		Modified:      "2012-01-03 16:05:06",
		Content:       "First!\r\n",
		CommentStatus: "open",
		Author:        "Alice",
	}

	err := w.Write(post, []string{"Tech"}, nil)
	if err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "42-Hello-World.md"))
	if err != nil {
		t.Fatalf("Failed to read post file: %v", err)
	}

	want := `---
wp_post_id: 42
title: "Hello, World!"
slug: Hello-World
date: 2012-01-02 15:04:05
lastmod: 2012-01-03 16:05:06
author: "Alice"
tags: []
categories: [Tech]
comments: true
published: true
---
First!
`

	if string(data) != want {
		t.Errorf("post file mismatch\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestPostWriter_FieldOrder(t *testing.T) {
	w, dir := newTestPostWriter(t)

	post := models.PostRow{
		ID:            43,
		Title:         "Ordered",
		Status:        "draft",
		Slug:          "ordered",
		Date:          "2012-02-02 10:00:00",
		Modified:      "2012-02-02 10:00:00",
		CommentStatus: "closed",
	}

	if err := w.Write(post, nil, nil); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "43-Ordered.md"))
	if err != nil {
		t.Fatalf("Failed to read post file: %v", err)
	}

	header, _, had, err := frontmatter.Split(string(data))
	if err != nil || !had {
		t.Fatalf("Split failed: had=%v err=%v", had, err)
	}

	want := []string{
		"wp_post_id", "title", "slug", "date", "lastmod",
		"author", "tags", "categories", "comments", "published",
	}

	keys := frontmatter.Keys(header)
	if len(keys) != len(want) {
		t.Fatalf("header has %d keys, want %d: %v", len(keys), len(want), keys)
	}

	for i, k := range want {
		if keys[i] != k {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestPostWriter_TagAndCategoryOrder(t *testing.T) {
	w, dir := newTestPostWriter(t)

	post := models.PostRow{
		ID:            44,
		Title:         "Lists",
		Status:        "publish",
		Slug:          "lists",
		CommentStatus: "open",
	}

	err := w.Write(post, []string{"Tech", "Life"}, []string{"go", "sql", "go"})
	if err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "44-Lists.md"))
	if err != nil {
		t.Fatalf("Failed to read post file: %v", err)
	}

	header, _, _, err := frontmatter.Split(string(data))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	fields, err := frontmatter.Parse(header)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tags, ok := fields["tags"].([]any)
	if !ok || len(tags) != 3 {
		t.Fatalf("tags = %v, want 3 entries in query order", fields["tags"])
	}

	if tags[0] != "go" || tags[1] != "sql" || tags[2] != "go" {
		t.Errorf("tags = %v, want [go sql go] (order and duplicates preserved)", tags)
	}

	cats, ok := fields["categories"].([]any)
	if !ok || len(cats) != 2 || cats[0] != "Tech" || cats[1] != "Life" {
		t.Errorf("categories = %v, want [Tech Life]", fields["categories"])
	}
}

func TestPostWriter_UnknownPublishStatus(t *testing.T) {
	w, dir := newTestPostWriter(t)

	post := models.PostRow{
		ID:            45,
		Title:         "Private",
		Status:        "private",
		Slug:          "private",
		CommentStatus: "open",
	}

	err := w.Write(post, nil, nil)
	if !errors.Is(err, models.ErrUnknownPostStatus) {
		t.Fatalf("Write error = %v, want ErrUnknownPostStatus", err)
	}

	// The status lookup runs before the file is opened
	if _, statErr := os.Stat(filepath.Join(dir, "45-Private.md")); !os.IsNotExist(statErr) {
		t.Error("no post file should be written on status lookup failure")
	}
}
