package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Site.BaseURL != "https://jeanfontaine.myportfolio.com/" {
		t.Errorf("Expected default base URL, got %s", config.Site.BaseURL)
	}

	if len(config.Site.Pages) != 6 || config.Site.Pages[0] != "" || config.Site.Pages[1] != "cv" {
		t.Errorf("Unexpected default pages: %q", config.Site.Pages)
	}

	if config.Output.TargetDirectory != "assets/scraped" {
		t.Errorf("Expected default target directory to be assets/scraped, got %s", config.Output.TargetDirectory)
	}

	if config.HTTP.Timeout != 0 {
		t.Errorf("Expected no default timeout, got %v", config.HTTP.Timeout)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestDefaultConfigPagesAreCopied(t *testing.T) {
	config := DefaultConfig()
	config.Site.Pages[1] = "changed"

	if DefaultPages[1] != "cv" {
		t.Error("Mutating a config must not change DefaultPages")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("IMGMIRROR_BASE_URL", "https://example.test/")
	t.Setenv("IMGMIRROR_PAGES", ",cv, about ")
	t.Setenv("IMGMIRROR_TARGET_DIR", "/tmp/mirror")
	t.Setenv("IMGMIRROR_TIMEOUT", "15s")
	t.Setenv("IMGMIRROR_USER_AGENT", "imgmirror-test")
	t.Setenv("IMGMIRROR_EXTRACT_MODE", "dom")
	t.Setenv("IMGMIRROR_LOG_LEVEL", "debug")

	config := DefaultConfig()
	if err := config.LoadFromEnv(); err != nil {
		t.Fatalf("Failed to load from environment: %v", err)
	}

	if config.Site.BaseURL != "https://example.test/" {
		t.Errorf("Expected base URL from env, got %s", config.Site.BaseURL)
	}

	expectedPages := []string{"", "cv", "about"}
	if len(config.Site.Pages) != len(expectedPages) {
		t.Fatalf("Expected pages %q, got %q", expectedPages, config.Site.Pages)
	}
	for i, p := range expectedPages {
		if config.Site.Pages[i] != p {
			t.Errorf("Expected page %d to be %q, got %q", i, p, config.Site.Pages[i])
		}
	}

	if config.Output.TargetDirectory != "/tmp/mirror" {
		t.Errorf("Expected target directory to be /tmp/mirror, got %s", config.Output.TargetDirectory)
	}

	if config.HTTP.Timeout != 15*time.Second {
		t.Errorf("Expected timeout to be 15s, got %v", config.HTTP.Timeout)
	}

	if config.HTTP.UserAgent != "imgmirror-test" {
		t.Errorf("Expected user agent from env, got %s", config.HTTP.UserAgent)
	}

	if config.Extract.Mode != ExtractModeDOM {
		t.Errorf("Expected extract mode dom, got %s", config.Extract.Mode)
	}

	if config.Logging.Level != "debug" {
		t.Errorf("Expected log level to be debug, got %s", config.Logging.Level)
	}
}

func TestLoadFromEnvInvalidTimeout(t *testing.T) {
	t.Setenv("IMGMIRROR_TIMEOUT", "soon")

	config := DefaultConfig()
	if err := config.LoadFromEnv(); err == nil {
		t.Error("Expected an error for an unparsable timeout")
	}
}

func TestParsePageList(t *testing.T) {
	pages := ParsePageList("")
	if len(pages) != 1 || pages[0] != "" {
		t.Errorf("Expected a single root page, got %q", pages)
	}

	pages = ParsePageList("cv,logobranding")
	if len(pages) != 2 || pages[1] != "logobranding" {
		t.Errorf("Unexpected pages: %q", pages)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return DefaultConfig() }

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError bool
	}{
		{
			name:      "valid config",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "missing base URL",
			mutate:    func(c *Config) { c.Site.BaseURL = "" },
			wantError: true,
		},
		{
			name:      "relative base URL",
			mutate:    func(c *Config) { c.Site.BaseURL = "portfolio/" },
			wantError: true,
		},
		{
			name:      "unsupported scheme",
			mutate:    func(c *Config) { c.Site.BaseURL = "ftp://example.test/" },
			wantError: true,
		},
		{
			name:      "no pages",
			mutate:    func(c *Config) { c.Site.Pages = nil },
			wantError: true,
		},
		{
			name:      "root page only",
			mutate:    func(c *Config) { c.Site.Pages = []string{""} },
			wantError: false,
		},
		{
			name:      "missing target directory",
			mutate:    func(c *Config) { c.Output.TargetDirectory = "" },
			wantError: true,
		},
		{
			name:      "negative timeout",
			mutate:    func(c *Config) { c.HTTP.Timeout = -time.Second },
			wantError: true,
		},
		{
			name:      "invalid extract mode",
			mutate:    func(c *Config) { c.Extract.Mode = "xpath" },
			wantError: true,
		},
		{
			name:      "logging disabled",
			mutate:    func(c *Config) { c.Logging.Level = "disabled" },
			wantError: false,
		},
		{
			name:      "warning alias",
			mutate:    func(c *Config) { c.Logging.Level = "WARNING" },
			wantError: false,
		},
		{
			name:      "invalid log level",
			mutate:    func(c *Config) { c.Logging.Level = "invalid" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.mutate(config)
			err := config.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	config := DefaultConfig()

	flags := map[string]interface{}{
		"base-url":     "https://flag.test/",
		"pages":        []string{"one", "two"},
		"target-dir":   "/flag/output",
		"timeout":      5 * time.Second,
		"extract-mode": "dom",
		"log-level":    "error",
	}

	config.MergeCommandLineFlags(flags)

	if config.Site.BaseURL != "https://flag.test/" {
		t.Errorf("Expected base URL from flags, got %s", config.Site.BaseURL)
	}

	if len(config.Site.Pages) != 2 || config.Site.Pages[0] != "one" {
		t.Errorf("Expected pages from flags, got %q", config.Site.Pages)
	}

	if config.Output.TargetDirectory != "/flag/output" {
		t.Errorf("Expected target directory to be /flag/output, got %s", config.Output.TargetDirectory)
	}

	if config.HTTP.Timeout != 5*time.Second {
		t.Errorf("Expected timeout to be 5s, got %v", config.HTTP.Timeout)
	}

	if config.Extract.Mode != "dom" {
		t.Errorf("Expected extract mode dom, got %s", config.Extract.Mode)
	}

	if config.Logging.Level != "error" {
		t.Errorf("Expected log level to be error, got %s", config.Logging.Level)
	}
}

func TestSaveAndLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "test-config.yaml")

	config := DefaultConfig()
	config.Site.BaseURL = "https://save.test/"
	config.Site.Pages = []string{"", "work"}
	config.HTTP.Timeout = 45 * time.Second

	if err := config.Save(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedConfig := DefaultConfig()
	if err := loadedConfig.LoadFromFile(configPath); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedConfig.Site.BaseURL != "https://save.test/" {
		t.Errorf("Expected loaded base URL to be https://save.test/, got %s", loadedConfig.Site.BaseURL)
	}

	if len(loadedConfig.Site.Pages) != 2 || loadedConfig.Site.Pages[1] != "work" {
		t.Errorf("Expected loaded pages [\"\" work], got %q", loadedConfig.Site.Pages)
	}

	if loadedConfig.HTTP.Timeout != 45*time.Second {
		t.Errorf("Expected loaded timeout to be 45s, got %v", loadedConfig.HTTP.Timeout)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	config := DefaultConfig()
	if err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for an explicit path that does not exist")
	}
}

func TestLoadPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := []byte("site:\n  base_url: https://file.test/\n  pages: [\"\", cv]\noutput:\n  target_directory: from-file\n")
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("IMGMIRROR_TARGET_DIR", "from-env")

	config, err := Load(configPath, map[string]interface{}{"log-level": "warn"})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if config.Site.BaseURL != "https://file.test/" {
		t.Errorf("Expected base URL from file, got %s", config.Site.BaseURL)
	}

	if config.Output.TargetDirectory != "from-env" {
		t.Errorf("Expected env to override file, got %s", config.Output.TargetDirectory)
	}

	if config.Logging.Level != "warn" {
		t.Errorf("Expected flags to override defaults, got %s", config.Logging.Level)
	}
}
