package fetch

import (
	"context"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	errs "imgmirror/pkg/errors"
	"imgmirror/pkg/logger"
)

// Client performs the page and image GET requests of a mirror run
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	logger     logger.Logger
}

// NewClient creates a new HTTP client. A zero timeout means requests never time out.
func NewClient(timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers: make(map[string]string),
		logger:  log,
	}
}

// SetHeader sets a header sent with every request
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// get performs a GET request and returns the response when its status is 2xx
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeInvalidURL, url, "failed to create request: %v", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    url,
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.DebugWithFields("HTTP request failed", map[string]interface{}{
			"url":      url,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errs.New(errs.ErrorTypeNetwork, url, "%v", err)
	}

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": duration,
	})

	if !errs.IsSuccessStatus(resp.StatusCode) {
		resp.Body.Close()
		return nil, errs.FromStatus(url, resp.StatusCode)
	}

	return resp, nil
}

// FetchPage downloads a page and returns its content as UTF-8 text
func (c *Client) FetchPage(ctx context.Context, pageURL string) (string, error) {
	resp, err := c.get(ctx, pageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.New(errs.ErrorTypeNetwork, pageURL, "failed to read response body: %v", err)
	}

	if !utf8.Valid(body) {
		return "", errs.New(errs.ErrorTypeDecode, pageURL, "page content is not valid UTF-8")
	}

	c.logger.DebugWithFields("page fetched", map[string]interface{}{
		"url":  pageURL,
		"size": len(body),
	})

	return string(body), nil
}

// OpenImage starts an image download. The caller must close the returned body;
// read failures from it are reported as network errors.
func (c *Client) OpenImage(ctx context.Context, imageURL string) (io.ReadCloser, error) {
	resp, err := c.get(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return &bodyReader{body: resp.Body, url: imageURL}, nil
}

// bodyReader tags read errors with the URL they came from
type bodyReader struct {
	body io.ReadCloser
	url  string
}

func (r *bodyReader) Read(p []byte) (int, error) {
	n, err := r.body.Read(p)
	if err != nil && err != io.EOF {
		return n, errs.New(errs.ErrorTypeNetwork, r.url, "failed to read image data: %v", err)
	}
	return n, err
}

func (r *bodyReader) Close() error {
	return r.body.Close()
}

