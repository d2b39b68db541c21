package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vango-dev/treesite/pkg/site"
)

// ManifestPath is where Register exports the fingerprint manifest.
const ManifestPath = "/manifest.json"

// ManifestEntry describes one page in the manifest.
type ManifestEntry struct {
	Path        string `json:"path"`
	Source      string `json:"source"`
	File        string `json:"file"`
	Fingerprint string `json:"fingerprint"`
}

// Register adds the pages of c to s, one page group per top-level
// directory, and exports the assets when the site is finalized. With
// manifest set it also exports ManifestPath.
func Register(s *site.Site, c *Collection, manifest bool) error {
	for _, p := range c.Pages {
		if err := s.AddPageGroup(GroupName(p.Path)).AddPage(p.Path, p); err != nil {
			return fmt.Errorf("%s: %w", p.Source, err)
		}
	}

	assets := c.Assets
	err := s.AddSiteProcessor("pre_finalize_site", func(ctx *site.RootContext) error {
		for _, a := range assets {
			data, err := os.ReadFile(a.Source)
			if err != nil {
				return err
			}
			if err := ctx.ExportFile(a.Path, data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil || !manifest {
		return err
	}

	opts := s.Options()
	entries := make([]ManifestEntry, 0, len(c.Pages))
	for _, p := range c.Pages {
		entries = append(entries, ManifestEntry{
			Path:        p.Path,
			Source:      p.Source,
			File:        site.ExportPath(p.Path, opts.DefaultFileName, opts.FileExtension),
			Fingerprint: p.Fingerprint,
		})
	}
	return s.AddSiteProcessor("pre_finalize_site", func(ctx *site.RootContext) error {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		return ctx.ExportFile(ManifestPath, append(data, '\n'))
	})
}
