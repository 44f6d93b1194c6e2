package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/models"
)

const (
	// writeWait is the deadline for a single frame write.
	writeWait = 10 * time.Second

	// pongWait is how long a connection may stay silent before the read
	// side gives up; transport pings go out every pingPeriod.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
	sendBufferSize = 256
)

// NewUpgrader returns the upgrader used for all websocket endpoints.
func NewUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
}

// Client is one live websocket connection. Marker is an opaque
// per-connection identifier used for sender self-suppression; two
// connections of the same user still have distinct markers.
type Client struct {
	Marker    string
	Principal *models.Principal

	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient wraps an upgraded connection. The caller must start
// WritePump in its own goroutine before broadcasting to the client.
func NewClient(conn *websocket.Conn, principal *models.Principal) *Client {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	return &Client{
		Marker:    uuid.NewString(),
		Principal: principal,
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
		done:      make(chan struct{}),
	}
}

// ReadMessage blocks for the next inbound frame.
func (c *Client) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

// Enqueue hands a pre-marshaled frame to the writer. It never blocks;
// a full buffer means the member is too slow and the frame is dropped
// for this member only.
func (c *Client) Enqueue(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// SendJSON marshals v and queues it for delivery to this client only.
func (c *Client) SendJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}
	if !c.Enqueue(data) {
		return fmt.Errorf("send buffer full")
	}
	return nil
}

// WritePump serializes all writes to the connection and keeps the
// transport alive with periodic pings. It exits when Close is called or
// a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Debug("Websocket write failed",
					logger.String("marker", c.Marker),
					logger.Err(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// Close tears down the connection. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Reject sends an application-level close frame with the given code and
// closes the raw connection. Used before a Client ever joins a room.
func Reject(conn *websocket.Conn, code int, reason string) {
	deadline := time.Now().Add(writeWait)
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
	_ = conn.Close()
}
