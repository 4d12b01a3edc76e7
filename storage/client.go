// Package storage talks to the object storage API that hosts player photos.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const DefaultBucket = "player-photos"

type Client interface {
	// Uploads data under key, replacing any existing object, and returns the
	// public URL of the object.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type client struct {
	url        string
	key        string
	bucket     string
	httpClient *http.Client
}

func New(baseURL, key, bucket string) (Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("storage url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid storage url: %w", err)
	}
	if bucket == "" {
		bucket = DefaultBucket
	}

	c := &client{
		url:    strings.TrimRight(baseURL, "/"),
		key:    key,
		bucket: bucket,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	c, _ := New(url, "test-key", DefaultBucket)
	return c
}

func (c *client) objectURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", c.url, c.bucket, url.PathEscape(key))
}

func (c *client) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.url, c.bucket, url.PathEscape(key))
}

func (c *client) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectURL(key), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	if err := c.do(req); err != nil {
		return "", fmt.Errorf("error uploading %s: %w", key, err)
	}
	return c.PublicURL(key), nil
}

func (c *client) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(key), nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}

	if err := c.do(req); err != nil {
		return fmt.Errorf("error deleting %s: %w", key, err)
	}
	return nil
}

func (c *client) do(req *http.Request) error {
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
		req.Header.Set("apikey", c.key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// KeyFromURL returns the object key of a public URL, which is the last path
// segment. An empty string is returned if the URL has no path.
func KeyFromURL(publicURL string) string {
	u, err := url.Parse(publicURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return ""
	}
	key, err := url.PathUnescape(path.Base(u.Path))
	if err != nil {
		return path.Base(u.Path)
	}
	return key
}
