package normalizer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/easyonboard/backend/internal/contentstore"
)

func newStore(t *testing.T) *contentstore.Store {
	t.Helper()
	return contentstore.New(t.TempDir())
}

func TestFileTopicTitleFromHeading(t *testing.T) {
	store := newStore(t)
	if err := store.WriteFile("git-basics.md", "# Git Basics!\n\nLearn git.\n"); err != nil {
		t.Fatalf("write error: %v", err)
	}

	n := New(store)
	topic, err := n.FileTopic("git-basics.md")
	if err != nil {
		t.Fatalf("FileTopic error: %v", err)
	}
	if topic.ID != "git-basics" {
		t.Fatalf("unexpected id: %q", topic.ID)
	}
	if topic.Title != "Git Basics!" {
		t.Fatalf("unexpected title: %q", topic.Title)
	}
	if topic.IsDirectory {
		t.Fatal("file topic should not be a directory")
	}
}

func TestFileTopicTitleFallback(t *testing.T) {
	store := newStore(t)
	if err := store.WriteFile("no-heading.md", "just text\n"); err != nil {
		t.Fatalf("write error: %v", err)
	}

	topic, err := New(store).FileTopic("no-heading.md")
	if err != nil {
		t.Fatalf("FileTopic error: %v", err)
	}
	if topic.Title != "no-heading" {
		t.Fatalf("unexpected fallback title: %q", topic.Title)
	}
}

func TestDirectoryTopicSectionsOrderedByFilename(t *testing.T) {
	store := newStore(t)
	if err := store.WriteFile(filepath.Join("onboarding", "02-b.md"), "# Second\n\ntwo"); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := store.WriteFile(filepath.Join("onboarding", "01-a.md"), "# First\n\none"); err != nil {
		t.Fatalf("write error: %v", err)
	}

	topic, err := New(store).DirectoryTopic("onboarding")
	if err != nil {
		t.Fatalf("DirectoryTopic error: %v", err)
	}
	if topic == nil {
		t.Fatal("expected a topic")
	}
	if !topic.IsDirectory {
		t.Fatal("expected directory topic")
	}
	if len(topic.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(topic.Sections))
	}
	if topic.Sections[0].Title != "First" || topic.Sections[0].Order != 0 {
		t.Fatalf("unexpected first section: %+v", topic.Sections[0])
	}
	if topic.Sections[1].Title != "Second" || topic.Sections[1].Order != 1 {
		t.Fatalf("unexpected second section: %+v", topic.Sections[1])
	}
	if topic.Title != "First" {
		t.Fatalf("directory title should come from first section, got %q", topic.Title)
	}
	if topic.Sections[0].ID != "onboarding/01-a" {
		t.Fatalf("unexpected section id: %q", topic.Sections[0].ID)
	}

	wantContent := "# First\n\none\n\n---\n\n# Second\n\ntwo"
	if topic.Content != wantContent {
		t.Fatalf("unexpected combined content:\n%q", topic.Content)
	}
}

func TestDirectoryTopicTitleFallsBackToHumanizedName(t *testing.T) {
	store := newStore(t)
	if err := store.WriteFile(filepath.Join("01-team-culture", "01-intro.md"), "no heading here"); err != nil {
		t.Fatalf("write error: %v", err)
	}

	topic, err := New(store).DirectoryTopic("01-team-culture")
	if err != nil {
		t.Fatalf("DirectoryTopic error: %v", err)
	}
	if topic.Title != "team culture" {
		t.Fatalf("unexpected fallback title: %q", topic.Title)
	}
}

func TestDirectoryWithoutMarkdownYieldsNoTopic(t *testing.T) {
	store := newStore(t)
	if err := store.WriteFile(filepath.Join("assets", "logo.txt"), "not markdown"); err != nil {
		t.Fatalf("write error: %v", err)
	}

	topic, err := New(store).DirectoryTopic("assets")
	if err != nil {
		t.Fatalf("DirectoryTopic error: %v", err)
	}
	if topic != nil {
		t.Fatalf("expected no topic, got %+v", topic)
	}

	topics, err := New(store).Topics()
	if err != nil {
		t.Fatalf("Topics error: %v", err)
	}
	if len(topics) != 0 {
		t.Fatalf("expected empty list, got %d topics", len(topics))
	}
}

func TestTopicsSortedByEntryName(t *testing.T) {
	store := newStore(t)
	if err := store.WriteFile("zz-last.md", "# Z"); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := store.WriteFile("aa-first.md", "# A"); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := store.WriteFile(filepath.Join("mm-middle", "01-x.md"), "# M"); err != nil {
		t.Fatalf("write error: %v", err)
	}
	// 非 markdown 文件不产出主题
	if err := store.WriteFile("readme.txt", "ignored"); err != nil {
		t.Fatalf("write error: %v", err)
	}

	topics, err := New(store).Topics()
	if err != nil {
		t.Fatalf("Topics error: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}
	got := []string{topics[0].ID, topics[1].ID, topics[2].ID}
	want := []string{"aa-first", "mm-middle", "zz-last"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestTopicsMissingBaseDir(t *testing.T) {
	store := contentstore.New(filepath.Join(t.TempDir(), "missing"))
	topics, err := New(store).Topics()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(topics) != 0 {
		t.Fatalf("expected empty list, got %d", len(topics))
	}
}
