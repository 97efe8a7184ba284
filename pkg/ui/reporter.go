package ui

import (
	"fmt"
	"io"
)

// Reporter writes the human readable lines of a mirror run
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter creates a Reporter writing to out. Colour is used only when
// out is a terminal and noColor is false.
func NewReporter(out io.Writer, noColor bool) *Reporter {
	return &Reporter{
		out:   out,
		color: !noColor && IsTerminal(out),
	}
}

func (r *Reporter) paint(paint func(string) string, text string) string {
	if r.color {
		return paint(text)
	}
	return text
}

// Start announces the run
func (r *Reporter) Start(baseURL string) {
	fmt.Fprintln(r.out, r.paint(Magenta, fmt.Sprintf("--- STARTING SCRAPE of %s ---", baseURL)))
}

// Scanning announces a page fetch
func (r *Reporter) Scanning(pageURL string) {
	fmt.Fprintf(r.out, "Scanning: %s\n", r.paint(Cyan, pageURL))
}

// Downloading announces an image download attempt
func (r *Reporter) Downloading(filename string) {
	fmt.Fprintf(r.out, "   Downloading: %s...\n", r.paint(Yellow, filename))
}

// PageFailed reports a page that could not be fetched
func (r *Reporter) PageFailed(pageURL string, err error) {
	fmt.Fprintln(r.out, r.paint(Red, fmt.Sprintf("Failed to load page %s: %v", pageURL, err)))
}

// DownloadFailed reports an image that could not be downloaded
func (r *Reporter) DownloadFailed(imageURL string, err error) {
	fmt.Fprintln(r.out, r.paint(Red, fmt.Sprintf("   Failed to download %s: %v", imageURL, err)))
}

// Done reports the final count
func (r *Reporter) Done(count int, targetDir string) {
	fmt.Fprintln(r.out, r.paint(Green, fmt.Sprintf("--- DONE. %d images saved to %s ---", count, targetDir)))
}
