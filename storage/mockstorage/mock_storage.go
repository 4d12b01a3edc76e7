package mockstorage

import (
	"context"

	"github.com/HFC06Atyrau/HFC/storage"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

var _ storage.Client = (*Client)(nil)

func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := c.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

func (c *Client) Delete(ctx context.Context, key string) error {
	args := c.Called(ctx, key)
	return args.Error(0)
}

func (c *Client) PublicURL(key string) string {
	args := c.Called(key)
	return args.String(0)
}
