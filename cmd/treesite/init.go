package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/treesite/internal/config"
	"github.com/vango-dev/treesite/internal/errors"
)

const sampleIndex = `---
title: Home
---
# Welcome

This page was generated by ` + "`treesite init`" + `. Edit
content/index.md and run ` + "`treesite serve`" + ` to preview it.
`

func initCmd() *cobra.Command {
	var (
		title  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a new site",
		Long: `Create a configuration file, a content directory with a sample
page and an empty static directory.

Examples:
  treesite init
  treesite init docs --title="Project Docs"`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, title, asJSON)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "My Site", "Site title")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write treesite.json instead of treesite.yaml")

	return cmd
}

func runInit(cmd *cobra.Command, dir, title string, asJSON bool) error {
	if config.Exists(dir) {
		return errors.New("E503").WithDetail("A configuration file already exists in " + dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	cfg := config.New()
	cfg.Title = title
	name := config.ConfigFileName
	if asJSON {
		name = "treesite.json"
	}
	if err := cfg.SaveTo(filepath.Join(dir, name)); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.StaticPath(), 0755); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.ContentPath(), 0755); err != nil {
		return err
	}
	index := filepath.Join(cfg.ContentPath(), "index.md")
	if _, err := os.Stat(index); os.IsNotExist(err) {
		if err := os.WriteFile(index, []byte(sampleIndex), 0644); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	success(out, "Created %s", filepath.Join(dir, name))
	info(out, "Next steps:")
	info(out, "  cd %s && treesite serve", dir)
	return nil
}
