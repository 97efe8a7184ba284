package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"imgmirror/pkg/config"
	"imgmirror/pkg/fetch"
	"imgmirror/pkg/logger"
	"imgmirror/pkg/scraper"
	"imgmirror/pkg/ui"
)

var (
	// Mirror command flags
	baseURL     string
	pages       string
	targetDir   string
	timeout     time.Duration
	userAgent   string
	extractMode string
	logFile     string
)

// mirrorCmd represents the mirror command
var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Download every image of the configured pages",
	Long: `Fetch each configured page in order and download the images it references.

Each distinct image URL is downloaded at most once per run. Files are named
after the last segment of the image URL path and written into the target
directory, which is created if needed.`,
	Example: `  # Mirror the default portfolio into ./assets/scraped
  imgmirror mirror

  # Mirror two pages of another site
  imgmirror mirror --base-url https://example.com/ --pages ",about" --target-dir ./out

  # Parse pages as HTML instead of scanning them with a pattern
  imgmirror mirror --extract-mode dom`,
	Args: cobra.NoArgs,
	RunE: runMirror,
}

func init() {
	rootCmd.AddCommand(mirrorCmd)
	addMirrorFlags(mirrorCmd)
}

// addMirrorFlags registers the mirror flags on cmd
func addMirrorFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&baseURL, "base-url", "", "site root the pages are resolved against")
	cmd.Flags().StringVar(&pages, "pages", "", `comma separated page suffixes; an empty entry is the root page, so "" mirrors only the root`)
	cmd.Flags().StringVarP(&targetDir, "target-dir", "o", "", "directory the images are written to")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout (0 waits forever)")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "User-Agent header sent with every request")
	cmd.Flags().StringVar(&extractMode, "extract-mode", "", "image source extraction: regex or dom")
	cmd.Flags().StringVar(&logFile, "log-file", "", "also write logs to this file")
}

// mirrorFlags collects the flags the user actually set
func mirrorFlags(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	if baseURL != "" {
		flags["base-url"] = baseURL
	}
	if cmd.Flags().Changed("pages") {
		flags["pages"] = config.ParsePageList(pages)
	}
	if targetDir != "" {
		flags["target-dir"] = targetDir
	}
	if cmd.Flags().Changed("timeout") {
		flags["timeout"] = timeout
	}
	if userAgent != "" {
		flags["user-agent"] = userAgent
	}
	if extractMode != "" {
		flags["extract-mode"] = extractMode
	}
	if logFile != "" {
		flags["log-file"] = logFile
	}
	if verbose {
		flags["log-level"] = "debug"
	} else if logLevel != "" {
		flags["log-level"] = logLevel
	}
	return flags
}

func runMirror(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, mirrorFlags(cmd))
	if err != nil {
		return err
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()
	log := logger.GetLogger()
	log.WithField("version", version).Debug("imgmirror starting")

	client := fetch.NewClient(cfg.HTTP.Timeout, log)
	if cfg.HTTP.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.HTTP.UserAgent)
	}

	s, err := scraper.New(cfg, client, ui.NewReporter(os.Stdout, noColor), log)
	if err != nil {
		return fmt.Errorf("failed to initialize scraper: %w", err)
	}

	report, err := s.Run(cmd.Context())
	if err != nil {
		return err
	}

	log.InfoWithFields("Run report", map[string]interface{}{
		"run_id":           report.RunID,
		"downloaded":       report.Downloaded,
		"skipped":          report.Skipped,
		"pages_scanned":    report.PagesScanned,
		"pages_failed":     report.PagesFailed,
		"downloads_failed": report.DownloadsFailed,
		"duration":         report.Duration,
	})
	return nil
}
