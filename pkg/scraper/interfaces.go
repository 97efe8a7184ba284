package scraper

import (
	"context"
	"io"
)

// Client defines the HTTP operations a mirror run needs
type Client interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
	OpenImage(ctx context.Context, imageURL string) (io.ReadCloser, error)
}
