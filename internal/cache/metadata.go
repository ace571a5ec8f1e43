// Package cache keeps local copies of prompts fetched from GitHub so they
// can be reused offline.
package cache

import (
	"fmt"
	"time"
)

// Metadata is the sidecar stored next to a cached prompt.
type Metadata struct {
	Owner       string    `json:"owner"`
	Repo        string    `json:"repo"`
	Path        string    `json:"path"`
	Ref         string    `json:"ref,omitempty"`
	SHA         string    `json:"sha,omitempty"`
	LastFetched time.Time `json:"last_fetched"`
}

var ageUnits = []struct {
	size time.Duration
	name string
}{
	{24 * time.Hour, "day"},
	{time.Hour, "hour"},
	{time.Minute, "minute"},
}

// Age reports how long ago the prompt was fetched, e.g. "3 hours ago".
func (m *Metadata) Age() string {
	elapsed := time.Since(m.LastFetched)
	for _, u := range ageUnits {
		n := int(elapsed / u.size)
		switch {
		case n == 1:
			return "1 " + u.name + " ago"
		case n > 1:
			return fmt.Sprintf("%d %ss ago", n, u.name)
		}
	}
	return "just now"
}
