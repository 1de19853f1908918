package frontmatter

import (
	"errors"
	"reflect"
	"testing"
)

const sampleDoc = `---
layout: page
title: "About"
comments: true
---
Body text here.
`

func TestSplit(t *testing.T) {
	header, body, had, err := Split(sampleDoc)
	if err != nil {
		t.Fatalf("Split returned unexpected error: %v", err)
	}

	if !had {
		t.Fatal("Split had = false, want true")
	}

	wantHeader := "layout: page\ntitle: \"About\"\ncomments: true"
	if header != wantHeader {
		t.Errorf("header = %q, want %q", header, wantHeader)
	}

	if body != "Body text here.\n" {
		t.Errorf("body = %q, want %q", body, "Body text here.\n")
	}
}

func TestSplit_NoFrontMatter(t *testing.T) {
	header, body, had, err := Split("just a body\n")
	if err != nil {
		t.Fatalf("Split returned unexpected error: %v", err)
	}

	if had {
		t.Error("had = true, want false")
	}

	if header != "" {
		t.Errorf("header = %q, want empty", header)
	}

	if body != "just a body\n" {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestSplit_Unterminated(t *testing.T) {
	_, _, _, err := Split("---\nlayout: page\nno closing delimiter\n")
	if !errors.Is(err, ErrUnterminated) {
		t.Errorf("Split error = %v, want ErrUnterminated", err)
	}
}

func TestJoin_RoundTrip(t *testing.T) {
	header, body, _, err := Split(sampleDoc)
	if err != nil {
		t.Fatalf("Split returned unexpected error: %v", err)
	}

	if got := Join(header, body); got != sampleDoc {
		t.Errorf("Join round trip = %q, want %q", got, sampleDoc)
	}
}

func TestParse(t *testing.T) {
	fields, err := Parse("layout: page\ntitle: \"About\"\ncomments: true")
	if err != nil {
		t.Fatalf("Parse returned unexpected error: %v", err)
	}

	if fields["layout"] != "page" {
		t.Errorf("layout = %v, want page", fields["layout"])
	}

	if fields["title"] != "About" {
		t.Errorf("title = %v, want About", fields["title"])
	}

	if fields["comments"] != true {
		t.Errorf("comments = %v, want true", fields["comments"])
	}
}

func TestKeys_Order(t *testing.T) {
	header := "layout: page\ntitle: \"With: colon\"\ndate: 2012-01-02 15:04\ncomments: true"

	want := []string{"layout", "title", "date", "comments"}
	if got := Keys(header); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}
