package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Extraction modes
const (
	ExtractModeRegex = "regex"
	ExtractModeDOM   = "dom"
)

// Config holds all configuration options for the image mirror
type Config struct {
	// Site to mirror
	Site SiteConfig `yaml:"site" json:"site"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// HTTP client settings
	HTTP HTTPConfig `yaml:"http" json:"http"`

	// Image source extraction
	Extract ExtractConfig `yaml:"extract" json:"extract"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// SiteConfig holds the base URL and the ordered page suffixes resolved against it
type SiteConfig struct {
	BaseURL string   `yaml:"base_url" json:"base_url"`
	Pages   []string `yaml:"pages" json:"pages"`
}

// OutputConfig holds output directory configuration
type OutputConfig struct {
	TargetDirectory string `yaml:"target_directory" json:"target_directory"`
}

// HTTPConfig holds HTTP client configuration
type HTTPConfig struct {
	// Timeout of zero means requests never time out
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

// ExtractConfig selects how image sources are found in a page
type ExtractConfig struct {
	Mode string `yaml:"mode" json:"mode"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultPages is the page list mirrored when nothing else is configured
var DefaultPages = []string{
	"",
	"cv",
	"creation-visuelle",
	"logobranding",
	"edition-video",
	"animation-css",
}

// DefaultConfig returns a Config instance with the compiled-in site settings
func DefaultConfig() *Config {
	pages := make([]string, len(DefaultPages))
	copy(pages, DefaultPages)

	return &Config{
		Site: SiteConfig{
			BaseURL: "https://jeanfontaine.myportfolio.com/",
			Pages:   pages,
		},
		Output: OutputConfig{
			TargetDirectory: "assets/scraped",
		},
		HTTP: HTTPConfig{
			Timeout:   0,
			UserAgent: "",
		},
		Extract: ExtractConfig{
			Mode: ExtractModeRegex,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if baseURL := os.Getenv("IMGMIRROR_BASE_URL"); baseURL != "" {
		c.Site.BaseURL = baseURL
	}
	if pages, ok := os.LookupEnv("IMGMIRROR_PAGES"); ok {
		c.Site.Pages = ParsePageList(pages)
	}
	if targetDir := os.Getenv("IMGMIRROR_TARGET_DIR"); targetDir != "" {
		c.Output.TargetDirectory = targetDir
	}
	if timeout := os.Getenv("IMGMIRROR_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid IMGMIRROR_TIMEOUT: %w", err)
		}
		c.HTTP.Timeout = d
	}
	if userAgent := os.Getenv("IMGMIRROR_USER_AGENT"); userAgent != "" {
		c.HTTP.UserAgent = userAgent
	}
	if mode := os.Getenv("IMGMIRROR_EXTRACT_MODE"); mode != "" {
		c.Extract.Mode = mode
	}
	if logLevel := os.Getenv("IMGMIRROR_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// ParsePageList splits a comma separated page list. Elements are trimmed and
// kept even when empty, so "" and ",cv" both name the root page.
func ParsePageList(s string) []string {
	parts := strings.Split(s, ",")
	pages := make([]string, 0, len(parts))
	for _, p := range parts {
		pages = append(pages, strings.TrimSpace(p))
	}
	return pages
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".imgmirror.yaml",
		".imgmirror.yml",
		filepath.Join(home, ".config", "imgmirror", "config.yaml"),
		filepath.Join(home, ".imgmirror.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Validate site
	if c.Site.BaseURL == "" {
		errs = append(errs, errors.New("base URL is required"))
	} else if u, err := url.Parse(c.Site.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("base URL is invalid: %w", err))
	} else if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, errors.New("base URL must be an absolute http or https URL"))
	}
	if len(c.Site.Pages) == 0 {
		errs = append(errs, errors.New("at least one page is required"))
	}

	// Validate output
	if c.Output.TargetDirectory == "" {
		errs = append(errs, errors.New("target directory is required"))
	}

	// Validate HTTP
	if c.HTTP.Timeout < 0 {
		errs = append(errs, errors.New("HTTP timeout cannot be negative"))
	}

	// Validate extraction
	switch strings.ToLower(c.Extract.Mode) {
	case ExtractModeRegex, ExtractModeDOM:
	default:
		errs = append(errs, fmt.Errorf("invalid extract mode %q", c.Extract.Mode))
	}

	// Validate logging
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "warning": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if baseURL, ok := flags["base-url"].(string); ok && baseURL != "" {
		c.Site.BaseURL = baseURL
	}
	if pages, ok := flags["pages"].([]string); ok {
		c.Site.Pages = pages
	}
	if target, ok := flags["target-dir"].(string); ok && target != "" {
		c.Output.TargetDirectory = target
	}
	if timeout, ok := flags["timeout"].(time.Duration); ok {
		c.HTTP.Timeout = timeout
	}
	if userAgent, ok := flags["user-agent"].(string); ok && userAgent != "" {
		c.HTTP.UserAgent = userAgent
	}
	if mode, ok := flags["extract-mode"].(string); ok && mode != "" {
		c.Extract.Mode = mode
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile, ok := flags["log-file"].(string); ok && logFile != "" {
		c.Logging.File = logFile
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".imgmirror.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
