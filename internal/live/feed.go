// Package live pushes the dashboard payload to WebSocket clients on the
// generation cadence, so browsers can subscribe instead of polling the JSON
// endpoints.
package live

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pulseboard/internal/service"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second

	// sendBuffer is the per-client backlog; a client that falls this far
	// behind is dropped.
	sendBuffer = 4
)

// Feed periodically fetches the combined payload and broadcasts it to every
// connected client.
type Feed struct {
	svc      *service.DashboardService
	logger   *logrus.Logger
	interval time.Duration
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewFeed(svc *service.DashboardService, logger *logrus.Logger, interval time.Duration) *Feed {
	return &Feed{
		svc:      svc,
		logger:   logger,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Run broadcasts until the context is cancelled. Fetch or marshal failures
// are logged and the next interval is attempted.
func (f *Feed) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.closeAll()
			return
		case <-ticker.C:
			if !f.hasClients() {
				continue
			}
			data, err := f.svc.AllData(ctx)
			if err != nil {
				f.logger.WithError(err).Warn("live feed fetch failed")
				continue
			}
			payload, err := json.Marshal(data)
			if err != nil {
				f.logger.WithError(err).Warn("live feed marshal failed")
				continue
			}
			f.broadcast(payload)
		}
	}
}

// Handle upgrades the request and serves the client until it disconnects.
func (f *Feed) Handle(c *gin.Context) {
	conn, err := f.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		f.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	f.register(cl)

	go f.writePump(cl)
	f.readPump(cl)
}

func (f *Feed) register(cl *client) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[cl] = struct{}{}
}

func (f *Feed) unregister(cl *client) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[cl]; ok {
		delete(f.clients, cl)
		close(cl.send)
	}
}

func (f *Feed) hasClients() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients) > 0
}

// broadcast queues the payload on every client, dropping clients whose
// buffers are full.
func (f *Feed) broadcast(payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for cl := range f.clients {
		select {
		case cl.send <- payload:
		default:
			delete(f.clients, cl)
			close(cl.send)
		}
	}
}

func (f *Feed) closeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for cl := range f.clients {
		delete(f.clients, cl)
		close(cl.send)
	}
}

// readPump drains the connection to react to client close frames.
func (f *Feed) readPump(cl *client) {
	defer func() {
		f.unregister(cl)
		cl.conn.Close()
	}()
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump flushes queued payloads and keeps the connection alive with
// pings. It exits when the send channel is closed by unregister.
func (f *Feed) writePump(cl *client) {
	pinger := time.NewTicker(pingInterval)
	defer func() {
		pinger.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-cl.send:
			if !ok {
				cl.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeTimeout))
				return
			}
			cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-pinger.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
