package scraper

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"imgmirror/internal/downloader"
	"imgmirror/pkg/config"
	errs "imgmirror/pkg/errors"
	"imgmirror/pkg/extract"
	"imgmirror/pkg/logger"
	"imgmirror/pkg/storage"
	"imgmirror/pkg/ui"
)

// Scraper mirrors the images of a fixed list of pages into a directory
type Scraper struct {
	config    *config.Config
	baseURL   *url.URL
	client    Client
	extractor extract.Extractor
	reporter  *ui.Reporter
	logger    logger.Logger
}

// PageResult is the outcome of fetching and scanning one configured page
type PageResult struct {
	URL     string
	Sources []string
	Err     error
}

// Report summarises a finished run
type Report struct {
	RunID           string
	BaseURL         string
	TargetDirectory string
	PagesScanned    int
	PagesFailed     int
	Downloaded      int
	DownloadsFailed int
	Skipped         int
	Duration        time.Duration
}

// run holds the state threaded through a single Run call
type run struct {
	ledger     *Ledger
	counter    int
	report     *Report
	downloader *downloader.Downloader
	logger     logger.Logger
}

// New creates a Scraper for cfg
func New(cfg *config.Config, client Client, reporter *ui.Reporter, log logger.Logger) (*Scraper, error) {
	if log == nil {
		log = logger.GetLogger()
	}
	if reporter == nil {
		reporter = ui.NewReporter(io.Discard, true)
	}

	baseURL, err := url.Parse(cfg.Site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	extractor, err := extract.New(cfg.Extract.Mode)
	if err != nil {
		return nil, err
	}

	return &Scraper{
		config:    cfg,
		baseURL:   baseURL,
		client:    client,
		extractor: extractor,
		reporter:  reporter,
		logger:    log,
	}, nil
}

// Run processes every configured page in order. Page and image failures are
// reported and skipped; only failing to create the target directory stops the run.
func (s *Scraper) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := s.logger.WithField("run_id", runID)
	targetDir := s.config.Output.TargetDirectory

	manager, err := storage.NewManager(targetDir)
	if err != nil {
		log.WithError(err).WithField("target_directory", targetDir).Error("Failed to create target directory")
		return nil, fmt.Errorf("failed to prepare target directory: %w", err)
	}

	s.reporter.Start(s.config.Site.BaseURL)
	log.InfoWithFields("Starting scrape", map[string]interface{}{
		"base_url":         s.config.Site.BaseURL,
		"pages":            len(s.config.Site.Pages),
		"target_directory": targetDir,
	})

	r := &run{
		ledger: NewLedger(),
		report: &Report{
			RunID:           runID,
			BaseURL:         s.config.Site.BaseURL,
			TargetDirectory: targetDir,
		},
		downloader: downloader.New(s.client, manager, log),
		logger:     log,
	}

	for _, page := range s.config.Site.Pages {
		s.processPage(ctx, r, page)
	}

	r.report.Downloaded = r.counter
	r.report.Duration = time.Since(start)

	s.reporter.Done(r.counter, targetDir)
	log.InfoWithFields("Scrape completed", map[string]interface{}{
		"downloaded":       r.report.Downloaded,
		"downloads_failed": r.report.DownloadsFailed,
		"pages_failed":     r.report.PagesFailed,
		"duration":         r.report.Duration,
	})

	return r.report, nil
}

// processPage scans one configured page and downloads its images
func (s *Scraper) processPage(ctx context.Context, r *run, page string) {
	pageURL, err := resolve(s.baseURL, page)
	if err != nil {
		r.report.PagesFailed++
		s.reporter.PageFailed(page, err)
		r.logger.WithError(err).WithField("page", page).Warn("Invalid page reference")
		return
	}

	s.reporter.Scanning(pageURL.String())
	r.logger.DebugWithFields("Scanning page", map[string]interface{}{
		"page": pageURL.String(),
	})

	result := s.scanPage(ctx, pageURL.String())
	if result.Err != nil {
		r.report.PagesFailed++
		s.reporter.PageFailed(result.URL, result.Err)
		r.logger.WithError(result.Err).WithFields(map[string]interface{}{
			"page":       result.URL,
			"error_type": string(errs.TypeOf(result.Err)),
		}).Warn("Failed to scan page")
		return
	}
	r.report.PagesScanned++

	r.logger.DebugWithFields("Image sources found", map[string]interface{}{
		"page":  result.URL,
		"count": len(result.Sources),
	})

	for _, src := range result.Sources {
		s.processImage(ctx, r, pageURL, src)
	}
}

// scanPage fetches a page and extracts its image sources
func (s *Scraper) scanPage(ctx context.Context, pageURL string) PageResult {
	result := PageResult{URL: pageURL}

	html, err := s.client.FetchPage(ctx, pageURL)
	if err != nil {
		result.Err = err
		return result
	}

	sources, err := s.extractor.Extract(html)
	if err != nil {
		result.Err = errs.New(errs.ErrorTypeDecode, pageURL, "%v", err)
		return result
	}

	result.Sources = sources
	return result
}

// processImage resolves one image source against its page and downloads it
// unless the same URL was already downloaded in this run
func (s *Scraper) processImage(ctx context.Context, r *run, pageURL *url.URL, src string) {
	imageURL, err := resolve(pageURL, src)
	if err != nil {
		r.report.DownloadsFailed++
		s.reporter.Downloading(FilenameForReference(src, r.counter))
		s.reporter.DownloadFailed(src, err)
		r.logger.WithError(err).WithField("src", src).Warn("Invalid image reference")
		return
	}

	absolute := imageURL.String()
	if r.ledger.Has(absolute) {
		r.report.Skipped++
		return
	}

	filename := FilenameFor(imageURL, r.counter)
	s.reporter.Downloading(filename)

	result := r.downloader.Download(ctx, downloader.DownloadJob{
		URL:      absolute,
		Filename: filename,
		Page:     pageURL.String(),
	})
	if !result.Success {
		r.report.DownloadsFailed++
		s.reporter.DownloadFailed(absolute, result.Error)
		r.logger.WithError(result.Error).WithFields(map[string]interface{}{
			"url":        absolute,
			"file":       filename,
			"error_type": string(errs.TypeOf(result.Error)),
		}).Warn("Failed to download image")
		return
	}

	r.ledger.Add(absolute)
	r.counter++
}

// resolve applies standard relative reference resolution of ref against base
func resolve(base *url.URL, ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeInvalidURL, ref, "%v", err)
	}
	return base.ResolveReference(u), nil
}
