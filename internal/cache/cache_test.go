package cache

import (
	"os"
	"testing"
	"time"

	"github.com/HartBrook/promptpress/internal/config"
	"github.com/HartBrook/promptpress/internal/errors"
)

var reviewRef = config.PromptRef{Owner: "acme", Repo: "prompts", Path: "team/review.md", Ref: "v2"}

func newTestCache(t *testing.T) (*Cache, *config.Paths) {
	t.Helper()
	tempDir := t.TempDir()
	paths := config.NewPathsWithOverrides(tempDir, tempDir)
	return New(paths), paths
}

func TestCacheReadWrite(t *testing.T) {
	c, _ := newTestCache(t)
	content := "## Rôle\nTu es relecteur de code."

	if err := c.Write(reviewRef, content, &Metadata{SHA: "abc123"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if !c.Exists(reviewRef) {
		t.Error("Exists() should return true after write")
	}

	readContent, readMeta, err := c.Read(reviewRef)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if readContent != content {
		t.Errorf("Read() content = %q, want %q", readContent, content)
	}
	if readMeta.Owner != "acme" || readMeta.Repo != "prompts" {
		t.Errorf("Read() meta repo = %s/%s, want acme/prompts", readMeta.Owner, readMeta.Repo)
	}
	if readMeta.Path != "team/review.md" || readMeta.Ref != "v2" {
		t.Errorf("Read() meta location = %s@%s", readMeta.Path, readMeta.Ref)
	}
	if readMeta.SHA != "abc123" {
		t.Errorf("Read() meta.SHA = %q, want %q", readMeta.SHA, "abc123")
	}
	if readMeta.LastFetched.IsZero() {
		t.Error("Read() meta.LastFetched should be set")
	}
}

func TestCacheNotFound(t *testing.T) {
	c, _ := newTestCache(t)

	_, _, err := c.Read(reviewRef)
	if errors.CodeOf(err) != errors.ErrCacheNotFound {
		t.Errorf("Read() code = %q, want %q", errors.CodeOf(err), errors.ErrCacheNotFound)
	}
	if c.Exists(reviewRef) {
		t.Error("Exists() should return false for missing cache")
	}
}

func TestCacheRead_CorruptMetadata(t *testing.T) {
	c, paths := newTestCache(t)

	if err := c.Write(reviewRef, "content", &Metadata{}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.CacheMetadataFile(reviewRef), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	content, meta, err := c.Read(reviewRef)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if content != "content" {
		t.Errorf("Read() content = %q", content)
	}
	if meta.Path != reviewRef.Path {
		t.Errorf("Read() meta.Path = %q, want %q", meta.Path, reviewRef.Path)
	}
}

func TestCacheRefsAreSeparate(t *testing.T) {
	c, _ := newTestCache(t)
	dev := reviewRef
	dev.Ref = "dev"

	if err := c.Write(reviewRef, "v2 content", &Metadata{}); err != nil {
		t.Fatal(err)
	}
	if c.Exists(dev) {
		t.Error("Exists() should be false for a different ref")
	}
}

func TestCacheClear(t *testing.T) {
	c, _ := newTestCache(t)

	if err := c.Write(reviewRef, "content", &Metadata{}); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(reviewRef); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if c.Exists(reviewRef) {
		t.Error("Exists() should return false after clear")
	}
	if err := c.Clear(reviewRef); err != nil {
		t.Errorf("Clear() should be idempotent, got %v", err)
	}
}

func TestMetadataAge(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{time.Minute + time.Second, "1 minute ago"},
		{5*time.Minute + time.Second, "5 minutes ago"},
		{time.Hour + time.Second, "1 hour ago"},
		{3*time.Hour + time.Second, "3 hours ago"},
		{25 * time.Hour, "1 day ago"},
		{72*time.Hour + time.Second, "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := &Metadata{LastFetched: time.Now().Add(-tt.ago)}
			if got := m.Age(); got != tt.want {
				t.Errorf("Age() = %q, want %q", got, tt.want)
			}
		})
	}
}
