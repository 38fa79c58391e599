package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Watcher follows the host's websocket feed and reports when an execution
// finishes, so that attached recent-file dropdowns can refresh.  It is a
// best-effort signal: a dropped connection is retried with exponential
// backoff, and messages that fail to parse are skipped.
type Watcher struct {
	WebSocketURL string
	Conn         *websocket.Conn
	Done         chan bool
	IsConnected  bool
	MaxRetry     int
	RetryCount   int
	mu           sync.Mutex

	// OnRefresh is invoked once per finished execution.
	OnRefresh func()

	// Exponential backoff configuration
	BaseDelay time.Duration // The initial delay, e.g., 1 second
	MaxDelay  time.Duration // The maximum delay, e.g., 1 minute
	Dialer    websocket.Dialer
}

// NewWatcher creates a Watcher for the client's server.
func (c *Client) NewWatcher(onRefresh func()) *Watcher {
	return &Watcher{
		WebSocketURL: fmt.Sprintf("ws://%s/ws?clientId=%s", c.serverBaseAddress, c.clientid),
		Done:         make(chan bool, 1),
		MaxRetry:     5,
		OnRefresh:    onRefresh,
		BaseDelay:    time.Second,
		MaxDelay:     time.Minute,
	}
}

// Connect dials the websocket and starts handling messages.  It blocks until
// the first successful connection or until MaxRetry attempts have failed.
func (w *Watcher) Connect() error {
	var lastErr error
	for retries := 0; retries <= w.MaxRetry; retries++ {
		conn, _, err := w.Dialer.Dial(w.WebSocketURL, nil)
		if err == nil {
			w.mu.Lock()
			w.Conn = conn
			w.IsConnected = true
			w.mu.Unlock()
			go w.handleMessages()
			return nil
		}
		lastErr = err
		slog.Error("connection attempt failed", "error", err)
		time.Sleep(w.reconnectDelay())
	}
	return fmt.Errorf("maximum number of retries reached (%d): %w", w.MaxRetry, lastErr)
}

// Close shuts down the connection.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.IsConnected = false
	if w.Conn != nil {
		return w.Conn.Close()
	}
	return nil
}

// Handle incoming websocket messages
func (w *Watcher) handleMessages() {
	defer func() {
		w.Conn.Close()
		w.Done <- true
	}()
	for {
		_, message, err := w.Conn.ReadMessage()
		if err != nil {
			slog.Warn(fmt.Sprintf("read error: %v", err))
			break
		}
		if shouldRefresh(message) && w.OnRefresh != nil {
			w.OnRefresh()
		}
	}
}

// executionMessage is the subset of the host's status feed the watcher cares
// about.  "executing" with a null node means the final node of a prompt was
// processed; "executed" carries node output data.
type executionMessage struct {
	Type string `json:"type"`
	Data struct {
		Node *string `json:"node"`
	} `json:"data"`
}

// shouldRefresh reports whether a status message indicates new files may
// exist on the server.
func shouldRefresh(raw []byte) bool {
	message := &executionMessage{}
	if err := json.Unmarshal(raw, message); err != nil {
		return false
	}
	switch message.Type {
	case "executed":
		return true
	case "executing":
		return message.Data.Node == nil
	}
	return false
}

// exponential backoff calculation
func (w *Watcher) reconnectDelay() time.Duration {
	// Calculate the delay as BaseDelay * 2^(RetryCount), capped at MaxDelay
	delay := w.BaseDelay * time.Duration(math.Pow(2, float64(w.RetryCount)))
	if delay > w.MaxDelay {
		delay = w.MaxDelay
	}
	w.RetryCount++
	return delay
}
