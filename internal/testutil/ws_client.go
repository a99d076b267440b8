package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient subscribes to a team's live comment stream. The stream is
// receive-only: the server discards anything a client writes.
type WSClient struct {
	t        *testing.T
	conn     *gorillaWS.Conn
	comments chan *domain.Comment
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
}

// NewWSClient connects to a live comment stream URL
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:        t,
		conn:     conn,
		comments: make(chan *domain.Comment, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// readPump reads comment frames from the WebSocket connection
func (c *WSClient) readPump() {
	defer close(c.comments)
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				select {
				case <-c.done:
					return
				case c.errors <- err:
				}
				return
			}

			var comment domain.Comment
			if err := json.Unmarshal(data, &comment); err != nil {
				c.errors <- err
				continue
			}

			select {
			case c.comments <- &comment:
			case <-c.done:
				return
			}
		}
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

// ExpectComment waits for the next broadcast comment
func (c *WSClient) ExpectComment(timeout time.Duration) *domain.Comment {
	c.t.Helper()

	select {
	case comment := <-c.comments:
		if comment == nil {
			c.t.Fatal("connection closed while waiting for comment")
		}
		return comment
	case err := <-c.errors:
		c.t.Fatalf("error while waiting for comment: %v", err)
	case <-time.After(timeout):
		c.t.Fatal("timeout waiting for comment")
	}
	return nil
}

// ExpectNoComment verifies nothing arrives within the timeout
func (c *WSClient) ExpectNoComment(timeout time.Duration) {
	c.t.Helper()

	select {
	case comment := <-c.comments:
		if comment != nil {
			c.t.Fatalf("unexpected comment received: %s", comment.Text)
		}
	case <-time.After(timeout):
		// Expected - no comment received
	}
}
