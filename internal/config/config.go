package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/benZhai01/vstest/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	Sources     []string

	// PHPUnit settings
	SettingsPath string // PHPUnit configuration XML
	AdapterPath  string // PHPUnit binary, defaults to vendor/bin/phpunit

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Processors     int
	PrepareCommand string // command run per worker by the prepare step

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Tests        string
	Filter       string
	Sources      []string
	SettingsPath string
	AdapterPath  string
	Processors   int
	Prepare      bool
	TestCases    bool
}

// projectFile mirrors the optional vstest.yaml in the project root
type projectFile struct {
	Sources        []string `yaml:"sources"`
	Settings       string   `yaml:"settings"`
	AdapterPath    string   `yaml:"adapter_path"`
	Processors     int      `yaml:"processors"`
	PrepareCommand string   `yaml:"prepare_command"`
	Ignore         []string `yaml:"ignore"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Processors:     DefaultProcessors,
		Flags:          Flags{Processors: DefaultProcessors},
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from the project file, the environment and flags.
// Precedence: flags over vstest.yaml over defaults.
func Load(projectPath string, flags Flags) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}

	// .env may not exist; environment variables still apply
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	if err := cfg.applyProjectFile(); err != nil {
		return nil, err
	}
	cfg.applyFlags(flags)
	return cfg, nil
}

func (c *Config) applyProjectFile() error {
	path := filepath.Join(c.ProjectPath, ProjectFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read project file %s: %w", path, err)
	}

	var pf projectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parse project file %s: %w", path, err)
	}

	if len(pf.Sources) > 0 {
		c.Sources = pf.Sources
	}
	if pf.Settings != "" {
		c.SettingsPath = pf.Settings
	}
	if pf.AdapterPath != "" {
		c.AdapterPath = pf.AdapterPath
	}
	if pf.Processors > 0 {
		c.Processors = pf.Processors
	}
	if pf.PrepareCommand != "" {
		c.PrepareCommand = pf.PrepareCommand
	}
	if len(pf.Ignore) > 0 {
		c.PathsToIgnore = pf.Ignore
	}
	return nil
}

func (c *Config) applyFlags(flags Flags) {
	c.Flags = flags
	if len(flags.Sources) > 0 {
		c.Sources = flags.Sources
	}
	if flags.SettingsPath != "" {
		c.SettingsPath = flags.SettingsPath
	}
	if flags.AdapterPath != "" {
		c.AdapterPath = flags.AdapterPath
	}
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
}

// GetSources returns the configured source roots resolved against the project path
func (c *Config) GetSources() []string {
	out := make([]string, 0, len(c.Sources))
	for _, src := range c.Sources {
		if filepath.IsAbs(src) {
			out = append(out, src)
			continue
		}
		out = append(out, filepath.Join(c.ProjectPath, src))
	}
	return out
}

// GetAdapterPath returns the PHPUnit binary path, defaulting to the
// project-local Composer location
func (c *Config) GetAdapterPath() string {
	if c.AdapterPath != "" {
		if filepath.IsAbs(c.AdapterPath) {
			return c.AdapterPath
		}
		return filepath.Join(c.ProjectPath, c.AdapterPath)
	}
	return filepath.Join(c.ProjectPath, "vendor", "bin", "phpunit")
}

// AdapterConfigured reports whether an adapter path was configured explicitly
func (c *Config) AdapterConfigured() bool {
	return c.AdapterPath != ""
}

// GetOutputPath returns the absolute path to the results JSON file, so every
// command reads and writes the same file regardless of cwd
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// EffectiveSettings captures the PHPUnit configuration once. The blob is
// immutable afterward and passed through unchanged to discovery and run.
func (c *Config) EffectiveSettings() (*domain.RunSettings, error) {
	path := c.SettingsPath
	if path == "" {
		return &domain.RunSettings{}, nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.ProjectPath, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run settings %s: %w", path, err)
	}
	return &domain.RunSettings{Path: path, Raw: raw}, nil
}

// WorkerDatabase returns the isolated database name for a worker
func (c *Config) WorkerDatabase(workerID int) string {
	prefix := os.Getenv("DB_DATABASE_PREFIX")
	if prefix == "" {
		prefix = "testing"
	}
	return fmt.Sprintf("%s_%d", prefix, workerID)
}
