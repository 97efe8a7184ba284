package downloader

import (
	"context"
	"fmt"
	"io"
	"time"

	"imgmirror/pkg/logger"
)

// DownloadJob represents a single image to fetch and store
type DownloadJob struct {
	URL      string
	Filename string
	Page     string
}

// DownloadResult represents the result of a download job
type DownloadResult struct {
	Job      DownloadJob
	Success  bool
	Error    error
	Duration time.Duration
	Size     int64
}

// ImageSource opens the byte stream of a remote image
type ImageSource interface {
	OpenImage(ctx context.Context, imageURL string) (io.ReadCloser, error)
}

// ImageStorage stores an image stream under a file name
type ImageStorage interface {
	Save(r io.Reader, filename string) (int64, error)
}

// Downloader streams one image at a time from its source into storage
type Downloader struct {
	source  ImageSource
	storage ImageStorage
	logger  logger.Logger
}

// New creates a Downloader
func New(source ImageSource, storage ImageStorage, log logger.Logger) *Downloader {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Downloader{
		source:  source,
		storage: storage,
		logger:  log,
	}
}

// Download fetches job.URL and saves it as job.Filename. Failures are
// reported in the result, never returned.
func (d *Downloader) Download(ctx context.Context, job DownloadJob) DownloadResult {
	start := time.Now()
	result := DownloadResult{Job: job}

	body, err := d.source.OpenImage(ctx, job.URL)
	if err != nil {
		result.Error = fmt.Errorf("download failed: %w", err)
		result.Duration = time.Since(start)
		return result
	}
	defer body.Close()

	size, err := d.storage.Save(body, job.Filename)
	if err != nil {
		result.Error = fmt.Errorf("save failed: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	result.Success = true
	result.Size = size
	result.Duration = time.Since(start)

	d.logger.DebugWithFields("Image saved", map[string]interface{}{
		"url":      job.URL,
		"file":     job.Filename,
		"size":     size,
		"duration": result.Duration,
	})

	return result
}
