package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"imgmirror/pkg/config"
	"imgmirror/pkg/fetch"
	"imgmirror/pkg/logger"
	"imgmirror/pkg/scraper"
	"imgmirror/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelper provides common test utilities
type TestHelper struct {
	t          *testing.T
	mockServer *MockPortfolioServer
	tempDir    string
	Logger     *logger.TestLogger
	Output     bytes.Buffer
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{
		t:       t,
		tempDir: t.TempDir(),
		Logger:  logger.NewTestLogger(),
	}
}

// SetupMockServer starts a mock portfolio site closed at test cleanup
func (h *TestHelper) SetupMockServer() *MockPortfolioServer {
	h.mockServer = NewMockPortfolioServer()
	h.t.Cleanup(h.mockServer.Close)
	return h.mockServer
}

// TargetDir returns the directory images are mirrored into
func (h *TestHelper) TargetDir() string {
	return filepath.Join(h.tempDir, "assets", "scraped")
}

// CreateTestConfig returns a config pointing at the mock server
func (h *TestHelper) CreateTestConfig(pages ...string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Site.BaseURL = h.mockServer.GetURL()
	cfg.Site.Pages = pages
	cfg.Output.TargetDirectory = h.TargetDir()
	cfg.Logging.Level = "debug"
	return cfg
}

// Run mirrors cfg the way the CLI does and returns the report
func (h *TestHelper) Run(ctx context.Context, cfg *config.Config) (*scraper.Report, error) {
	h.t.Helper()

	client := fetch.NewClient(cfg.HTTP.Timeout, h.Logger)
	if cfg.HTTP.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.HTTP.UserAgent)
	}

	s, err := scraper.New(cfg, client, ui.NewReporter(&h.Output, true), h.Logger)
	require.NoError(h.t, err)
	return s.Run(ctx)
}

// AssertImage checks that name was written with the bytes served for path
func (h *TestHelper) AssertImage(name, path string) {
	h.t.Helper()
	data, err := os.ReadFile(filepath.Join(h.TargetDir(), name))
	require.NoError(h.t, err, "expected %s to be mirrored", name)
	assert.Equal(h.t, ImageBytes(path), data)
}

// AssertFileNotExists checks that name was not written
func (h *TestHelper) AssertFileNotExists(name string) {
	h.t.Helper()
	assert.NoFileExists(h.t, filepath.Join(h.TargetDir(), name))
}

// AssertDirContainsFiles checks the number of files in the target directory
func (h *TestHelper) AssertDirContainsFiles(expectedCount int) {
	h.t.Helper()
	entries, err := os.ReadDir(h.TargetDir())
	require.NoError(h.t, err)

	count := 0
	for _, e := range entries {
		if !e.IsDir() {
			count++
		}
	}
	assert.Equal(h.t, expectedCount, count, "files in %s", h.TargetDir())
}
