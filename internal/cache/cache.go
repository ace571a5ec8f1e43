package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/HartBrook/promptpress/internal/config"
	"github.com/HartBrook/promptpress/internal/errors"
)

// Cache manages locally cached prompts.
type Cache struct {
	paths *config.Paths
}

// New creates a cache manager.
func New(paths *config.Paths) *Cache {
	return &Cache{paths: paths}
}

// Read returns cached content and metadata, or an error if not cached.
func (c *Cache) Read(ref config.PromptRef) (string, *Metadata, error) {
	content, err := os.ReadFile(c.paths.CacheFile(ref))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, errors.CacheNotFound(ref.String())
		}
		return "", nil, err
	}

	// A missing or corrupt sidecar still leaves usable content.
	meta := &Metadata{Owner: ref.Owner, Repo: ref.Repo, Path: ref.Path, Ref: ref.Ref}
	if data, err := os.ReadFile(c.paths.CacheMetadataFile(ref)); err == nil {
		var stored Metadata
		if json.Unmarshal(data, &stored) == nil {
			meta = &stored
		}
	}

	return string(content), meta, nil
}

// Write stores content and metadata for ref.
func (c *Cache) Write(ref config.PromptRef, content string, meta *Metadata) error {
	if err := os.MkdirAll(c.paths.CacheDir, 0755); err != nil {
		return err
	}

	if meta.LastFetched.IsZero() {
		meta.LastFetched = time.Now()
	}
	meta.Owner, meta.Repo, meta.Path, meta.Ref = ref.Owner, ref.Repo, ref.Path, ref.Ref

	if err := os.WriteFile(c.paths.CacheFile(ref), []byte(content), 0644); err != nil {
		return err
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.paths.CacheMetadataFile(ref), data, 0644)
}

// Exists checks if a cached copy of ref exists.
func (c *Cache) Exists(ref config.PromptRef) bool {
	_, err := os.Stat(c.paths.CacheFile(ref))
	return err == nil
}

// Clear removes the cached copy of ref.
// Returns nil even if files don't exist (idempotent operation).
func (c *Cache) Clear(ref config.PromptRef) error {
	if err := os.Remove(c.paths.CacheFile(ref)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cached prompt: %w", err)
	}
	if err := os.Remove(c.paths.CacheMetadataFile(ref)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache metadata: %w", err)
	}
	return nil
}
