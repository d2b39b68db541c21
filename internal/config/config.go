package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/treesite/internal/errors"
	"github.com/vango-dev/treesite/pkg/site"
)

const (
	// ConfigFileName is the preferred configuration file name.
	ConfigFileName = "treesite.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	DefaultContent  = "content"
	DefaultStatic   = "static"
	DefaultOutput   = "public"
	DefaultDebounce = 150 * time.Millisecond
)

// configFileNames are tried in order by Load.
var configFileNames = []string{ConfigFileName, "treesite.yml", "treesite.json"}

// Config represents a treesite.yaml file.
type Config struct {
	// Title is the site title, used when a page has none.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// BaseURL is the public URL of the site.
	BaseURL string `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`

	// Lang is the default lang attribute of pages.
	Lang string `yaml:"lang,omitempty" json:"lang,omitempty"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Content is the directory of Markdown sources.
	Content string `yaml:"content,omitempty" json:"content,omitempty"`

	// Static is the directory of files copied unchanged.
	Static string `yaml:"static,omitempty" json:"static,omitempty"`

	// Output is the export directory.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// Stylesheets are linked from every page.
	Stylesheets []string `yaml:"stylesheets,omitempty" json:"stylesheets,omitempty"`

	// Drafts includes pages marked draft.
	Drafts bool `yaml:"drafts,omitempty" json:"drafts,omitempty"`

	// Manifest writes a content fingerprint manifest next to the pages.
	Manifest bool `yaml:"manifest,omitempty" json:"manifest,omitempty"`

	Build BuildConfig `yaml:"build,omitempty" json:"build,omitempty"`
	Dev   DevConfig   `yaml:"dev,omitempty" json:"dev,omitempty"`
	S3    S3Config    `yaml:"s3,omitempty" json:"s3,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// BuildConfig contains site build settings.
type BuildConfig struct {
	// Strategy is "sync" or "parallel".
	Strategy string `yaml:"strategy,omitempty" json:"strategy,omitempty"`

	// Workers bounds parallel group builds. Zero uses every CPU.
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`

	DefaultFileName string `yaml:"defaultFileName,omitempty" json:"defaultFileName,omitempty"`
	FileExtension   string `yaml:"fileExtension,omitempty" json:"fileExtension,omitempty"`

	// Indent is the indentation unit of rendered markup.
	Indent string `yaml:"indent,omitempty" json:"indent,omitempty"`
}

// DevConfig contains preview server settings.
type DevConfig struct {
	Port int    `yaml:"port,omitempty" json:"port,omitempty"`
	Host string `yaml:"host,omitempty" json:"host,omitempty"`

	// Debounce is how long the watcher waits for changes to settle.
	Debounce string `yaml:"debounce,omitempty" json:"debounce,omitempty"`

	// Ignore contains glob patterns excluded from watching.
	Ignore []string `yaml:"ignore,omitempty" json:"ignore,omitempty"`
}

// S3Config selects an S3 bucket as the export target.
type S3Config struct {
	Bucket       string `yaml:"bucket,omitempty" json:"bucket,omitempty"`
	Prefix       string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Region       string `yaml:"region,omitempty" json:"region,omitempty"`
	CacheControl string `yaml:"cacheControl,omitempty" json:"cacheControl,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Lang:    "en",
		Content: DefaultContent,
		Static:  DefaultStatic,
		Output:  DefaultOutput,
		Build: BuildConfig{
			Strategy:        string(site.StrategySync),
			DefaultFileName: site.DefaultFileName,
			FileExtension:   site.DefaultFileExtension,
		},
		Dev: DevConfig{
			Port:     DefaultPort,
			Host:     DefaultHost,
			Debounce: DefaultDebounce.String(),
			Ignore:   []string{".git", "*.swp", "*~", ".DS_Store"},
		},
	}
}

// Load reads configuration from the specified directory, trying
// treesite.yaml, treesite.yml and treesite.json in that order.
func Load(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E101").
		WithDetail("No treesite.yaml or treesite.json found in " + dir)
}

// LoadFile reads configuration from the specified file path. The format
// follows the extension; anything but .json is read as YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No configuration file at " + path)
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := New()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = decodeJSON(data, cfg)
	} else {
		err = decodeYAML(data, cfg)
	}
	if err != nil {
		e := errors.New("E102").Wrap(err)
		if line := errorLine(data, err); line > 0 {
			e.WithLocation(path, line, 0)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeJSON(data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// errorLine returns the 1-based line that a decode error points at, or 0.
func errorLine(data []byte, err error) int {
	var syn *json.SyntaxError
	if stderrors.As(err, &syn) {
		return bytes.Count(data[:min(int(syn.Offset), len(data))], []byte("\n")) + 1
	}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, as JSON for a .json path and
// YAML otherwise.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return errors.New("E102").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E102").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Content == "" {
		c.Content = DefaultContent
	}
	if c.Static == "" {
		c.Static = DefaultStatic
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}

	// Build
	if c.Build.Strategy == "" {
		c.Build.Strategy = string(site.StrategySync)
	}
	if c.Build.DefaultFileName == "" {
		c.Build.DefaultFileName = site.DefaultFileName
	}

	// Dev
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Debounce == "" {
		c.Dev.Debounce = DefaultDebounce.String()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch site.Strategy(c.Build.Strategy) {
	case site.StrategySync, site.StrategyParallel:
	default:
		return errors.New("E103").
			WithDetail("build.strategy must be sync or parallel, got " + strconv.Quote(c.Build.Strategy))
	}
	if c.Build.Workers < 0 {
		return errors.New("E103").
			WithDetail("build.workers must not be negative")
	}
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("E103").
			WithDetail("dev.port must be between 0 and 65535")
	}
	if _, err := time.ParseDuration(c.Dev.Debounce); err != nil {
		return errors.New("E103").
			WithDetail("dev.debounce is not a duration: " + c.Dev.Debounce)
	}
	if c.S3.Bucket == "" && c.S3.Prefix != "" {
		return errors.New("E103").
			WithDetail("s3.prefix is set without s3.bucket")
	}
	return nil
}

// DevAddress returns the address string for the preview server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the preview server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// DebounceDuration returns Dev.Debounce parsed, or DefaultDebounce.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Dev.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// ContentPath returns the path to the content directory.
func (c *Config) ContentPath() string { return c.resolve(c.Content) }

// StaticPath returns the path to the static files directory.
func (c *Config) StaticPath() string { return c.resolve(c.Static) }

// OutputPath returns the path to the export directory.
func (c *Config) OutputPath() string { return c.resolve(c.Output) }

// SiteOptions returns the site options the build settings describe.
func (c *Config) SiteOptions() []site.Option {
	opts := []site.Option{
		site.WithExportRoot(c.OutputPath()),
		site.WithStrategy(site.Strategy(c.Build.Strategy)),
		site.WithDefaultFileName(c.Build.DefaultFileName),
		site.WithFileExtension(c.Build.FileExtension),
	}
	if c.Build.Workers > 0 {
		opts = append(opts, site.WithWorkers(c.Build.Workers))
	}
	if c.Build.Indent != "" {
		opts = append(opts, site.WithIndent(c.Build.Indent))
	}
	return opts
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range configFileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the site root.
// Returns the directory containing treesite.yaml, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithDetail("No treesite.yaml found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'treesite init' to create a new site")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
