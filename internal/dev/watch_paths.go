package dev

import (
	"path/filepath"

	"github.com/vango-dev/treesite/internal/config"
)

// CollectWatchPaths returns the content and static directories and the
// config file of the project, without duplicates.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := []string{
		cfg.ContentPath(),
		cfg.StaticPath(),
		cfg.Path(),
	}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}

	return unique
}
