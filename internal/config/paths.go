package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "PROMPTPRESS_CONFIG"

// Paths provides the promptpress filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/promptpress
	CacheDir   string // ~/.cache/promptpress
	ConfigFile string // ~/.config/promptpress/config.yaml
}

// NewPaths creates Paths under ~/.config and ~/.cache, honoring
// PROMPTPRESS_CONFIG for the config file. These directories are used on
// every platform for consistency.
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	paths := NewPathsWithOverrides(
		filepath.Join(home, ".config", "promptpress"),
		filepath.Join(home, ".cache", "promptpress"),
	)
	if file := os.Getenv(ConfigEnv); file != "" {
		paths.ConfigDir = filepath.Dir(file)
		paths.ConfigFile = file
	}
	return paths
}

// NewPathsWithOverrides allows overriding directories for testing.
func NewPathsWithOverrides(configDir, cacheDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		CacheDir:   cacheDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}

// CacheFile returns the path for a cached prompt.
func (p *Paths) CacheFile(ref PromptRef) string {
	return filepath.Join(p.CacheDir, cacheName(ref)+".md")
}

// CacheMetadataFile returns the path for a cached prompt's metadata sidecar.
func (p *Paths) CacheMetadataFile(ref PromptRef) string {
	return filepath.Join(p.CacheDir, cacheName(ref)+".meta.json")
}

// cacheName flattens a PromptRef into a single file name.
func cacheName(ref PromptRef) string {
	name := fmt.Sprintf("%s-%s-%s", ref.Owner, ref.Repo, strings.ReplaceAll(ref.Path, "/", "_"))
	name = strings.TrimSuffix(name, filepath.Ext(ref.Path))
	if ref.Ref != "" {
		name += "@" + strings.ReplaceAll(ref.Ref, "/", "_")
	}
	return name
}
