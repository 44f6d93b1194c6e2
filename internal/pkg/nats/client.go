package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Client is a thin NATS publisher used by service gateways.
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server at the given URL.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(nats.DefaultReconnectWait),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// Publish marshals the message as JSON and publishes it to the subject.
func (c *Client) Publish(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Conn exposes the underlying connection
func (c *Client) Conn() *nats.Conn {
	return c.conn
}

// Close drains and closes the connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
