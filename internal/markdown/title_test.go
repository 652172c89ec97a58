package markdown

import "testing"

func TestFirstTitle(t *testing.T) {
	content := "# Welcome to the Team\n\nSome intro text.\n\n## Sub heading\n"
	title, ok := FirstTitle(content)
	if !ok {
		t.Fatal("expected a title")
	}
	if title != "Welcome to the Team" {
		t.Fatalf("unexpected title: %q", title)
	}
}

func TestFirstTitleSkipsLowerLevels(t *testing.T) {
	content := "## Not this\n\n# This One\n"
	title, ok := FirstTitle(content)
	if !ok || title != "This One" {
		t.Fatalf("unexpected title: %q ok=%v", title, ok)
	}
}

func TestFirstTitleWithNestedInlines(t *testing.T) {
	content := "# Git **Basics** and `rebase`\n\nbody\n"
	title, ok := FirstTitle(content)
	if !ok {
		t.Fatal("expected a title")
	}
	if title != "Git Basics and rebase" {
		t.Fatalf("unexpected title: %q", title)
	}
}

func TestFirstTitleMissing(t *testing.T) {
	if _, ok := FirstTitle("plain text\nno headings here\n"); ok {
		t.Fatal("expected no title")
	}
	if _, ok := FirstTitle(""); ok {
		t.Fatal("expected no title for empty content")
	}
}

func TestFirstTitleIgnoresCodeFence(t *testing.T) {
	content := "```\n# not a heading\n```\n\n# Real Title\n"
	title, ok := FirstTitle(content)
	if !ok || title != "Real Title" {
		t.Fatalf("unexpected title: %q ok=%v", title, ok)
	}
}
