package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/treesite/internal/config"
)

// buildFlags are the configuration overrides shared by build and serve.
type buildFlags struct {
	config   string
	output   string
	strategy string
	workers  int
	drafts   bool
	verbose  bool

	s3Bucket string
	s3Prefix string
	s3Region string
}

// apply copies the flags set on the command line into cfg.
func (f *buildFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.strategy != "" {
		cfg.Build.Strategy = f.strategy
	}
	if changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if changed("drafts") {
		cfg.Drafts = f.drafts
	}
	if f.s3Bucket != "" {
		cfg.S3.Bucket = f.s3Bucket
	}
	if f.s3Prefix != "" {
		cfg.S3.Prefix = f.s3Prefix
	}
	if f.s3Region != "" {
		cfg.S3.Region = f.s3Region
	}
	return cfg.Validate()
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Configuration file (default: treesite.yaml of the project root)")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "Page group build strategy: sync or parallel")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Parallel group builds, 0 for every CPU")
	cmd.Flags().BoolVar(&f.drafts, "drafts", false, "Include draft pages")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log at debug level")
}

func buildCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site",
		Long: `Build the site into the export directory.

This command:
  • Converts the Markdown pages of the content directory
  • Builds every page group, sequentially or in parallel
  • Copies the static directory unchanged
  • Writes the pages to the output directory or an S3 bucket

Examples:
  treesite build
  treesite build --output=dist --strategy=parallel
  treesite build --s3-bucket=my-site --s3-prefix=docs`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output directory (default from treesite.yaml)")
	cmd.Flags().StringVar(&flags.s3Bucket, "s3-bucket", "", "Upload to this S3 bucket instead of the output directory")
	cmd.Flags().StringVar(&flags.s3Prefix, "s3-prefix", "", "Key prefix inside the S3 bucket")
	cmd.Flags().StringVar(&flags.s3Region, "s3-region", "", "S3 bucket region (default from the AWS config chain)")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	if err := flags.apply(cmd, cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return err
	}

	p := &project{
		cfg:      cfg,
		logger:   newLogger(flags.verbose),
		exporter: exporter,
	}

	result, err := p.build(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	success(out, "Built %d pages, %d files in %s", len(result.Pages), len(result.Files), result.Duration.Round(time.Millisecond))
	if cfg.S3.Bucket != "" {
		info(out, "Uploaded to s3://%s/%s", cfg.S3.Bucket, cfg.S3.Prefix)
	} else {
		info(out, "Output: %s", cfg.OutputPath())
	}
	if len(result.Pages) == 0 {
		warn(out, "No pages found in %s", cfg.ContentPath())
	}
	return nil
}
