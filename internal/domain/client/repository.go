package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByClientID(ctx context.Context, clientID string) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	Save(ctx context.Context, c *Client) error
	List(ctx context.Context) ([]Client, error)
}
