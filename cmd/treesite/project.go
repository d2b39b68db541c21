package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/vango-dev/treesite/internal/config"
	"github.com/vango-dev/treesite/internal/content"
	"github.com/vango-dev/treesite/internal/errors"
	"github.com/vango-dev/treesite/pkg/export"
	"github.com/vango-dev/treesite/pkg/site"
)

// project builds the site a configuration describes.
type project struct {
	cfg    *config.Config
	logger *slog.Logger

	// observer and exporter are optional.
	observer site.Observer
	exporter export.Exporter
}

// loadConfig reads the configuration at path, or the one of the nearest
// project root when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadFromWorkingDir()
}

// build loads the content and static directories and builds the site.
func (p *project) build(ctx context.Context) (*site.Result, error) {
	cfg := p.cfg

	coll, err := content.Load(cfg.ContentPath(), content.Options{
		Drafts: cfg.Drafts,
		Ignore: cfg.Dev.Ignore,
		Defaults: content.Defaults{
			Title:       cfg.Title,
			Lang:        cfg.Lang,
			Description: cfg.Description,
			Stylesheets: cfg.Stylesheets,
		},
	})
	if err != nil {
		return nil, contentError(err)
	}
	for _, d := range coll.Drafts {
		p.logger.Debug("skipping draft", "source", d)
	}

	static, err := content.LoadStatic(cfg.StaticPath(), cfg.Dev.Ignore)
	if err != nil {
		return nil, fmt.Errorf("static files: %w", err)
	}
	coll.Assets = append(coll.Assets, static...)

	opts := append(cfg.SiteOptions(), site.WithLogger(p.logger))
	if p.observer != nil {
		opts = append(opts, site.WithObserver(p.observer))
	}
	if p.exporter != nil {
		opts = append(opts, site.WithExporter(p.exporter))
	}

	s := site.New(opts...)
	if err := content.Register(s, coll, cfg.Manifest); err != nil {
		return nil, errors.Classify(err, "E201")
	}
	return s.Build(ctx)
}

// newExporter returns the S3 exporter when a bucket is configured, or nil
// for the export directory.
func newExporter(ctx context.Context, cfg *config.Config) (export.Exporter, error) {
	if cfg.S3.Bucket == "" {
		return nil, nil
	}
	client, err := export.NewS3Client(ctx, cfg.S3.Region)
	if err != nil {
		return nil, errors.New("E304").Wrap(err)
	}
	return export.NewS3(client, cfg.S3.Bucket, cfg.S3.Prefix).WithCacheControl(cfg.S3.CacheControl), nil
}

// contentError maps content loading failures to coded errors.
func contentError(err error) error {
	var fmErr *content.FrontMatterError
	switch {
	case stderrors.Is(err, content.ErrNoContentDir):
		return errors.New("E110").Wrap(err)
	case stderrors.As(err, &fmErr):
		e := errors.New("E111").Wrap(fmErr.Err)
		if fmErr.Line > 0 {
			return e.WithLocation(fmErr.File, fmErr.Line, 0)
		}
		return e.WithDetail("in " + fmErr.File)
	case stderrors.Is(err, content.ErrConversion):
		return errors.New("E112").Wrap(err)
	}
	return err
}
