package reload

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Path is where the reload endpoint is mounted.
const Path = "/_donut/reload"

// MessageType represents the type of reload message.
type MessageType string

const (
	TypeFull  MessageType = "reload"
	TypeCSS   MessageType = "css"
	TypeError MessageType = "error"
	TypeClear MessageType = "clear"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type  MessageType `json:"type"`
	Error string      `json:"error,omitempty"`
	File  string      `json:"file,omitempty"`
}

// Server fans reload messages out to connected browsers.
type Server struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewServer creates a reload server. A nil logger uses slog.Default().
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The gallery is a local tool.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.With("component", "reload"),
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// client goes away.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	n := len(s.clients)
	s.mu.Unlock()
	s.logger.Debug("client connected", "remote", req.RemoteAddr, "clients", n)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.remove(conn)
}

func (s *Server) remove(conn *websocket.Conn) {
	s.mu.Lock()
	_, ok := s.clients[conn]
	delete(s.clients, conn)
	s.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// NotifyReload sends a full page reload message to all clients.
func (s *Server) NotifyReload() {
	s.Broadcast(Message{Type: TypeFull})
}

// NotifyCSS sends a stylesheet reload message to all clients.
func (s *Server) NotifyCSS(file string) {
	s.Broadcast(Message{Type: TypeCSS, File: file})
}

// NotifyError shows the error overlay on all clients.
func (s *Server) NotifyError(errMsg string) {
	s.Broadcast(Message{Type: TypeError, Error: errMsg})
}

// ClearError clears the error overlay on all clients.
func (s *Server) ClearError() {
	s.Broadcast(Message{Type: TypeClear})
}

// Broadcast sends msg to every connected client. Clients that fail the
// write are dropped.
func (s *Server) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	// A websocket connection allows one writer at a time.
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			s.logger.Debug("dropping client", "error", err)
			s.remove(client)
		}
	}
	s.logger.Debug("broadcast", "type", msg.Type, "clients", len(clients))
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Close closes all client connections.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for client := range s.clients {
		client.Close()
		delete(s.clients, client)
	}
}

// ClientScript connects a page to the reload endpoint. The gallery
// appends it to every page it serves.
const ClientScript = `(function() {
  'use strict';

  var delay = 1000;
  var maxDelay = 30000;

  function connect() {
    var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(protocol + '//' + location.host + '` + Path + `');

    ws.onopen = function() {
      delay = 1000;
      clearOverlay();
    };

    ws.onmessage = function(e) {
      var msg;
      try {
        msg = JSON.parse(e.data);
      } catch (err) {
        return;
      }
      switch (msg.type) {
        case 'reload':
          location.reload();
          break;
        case 'css':
          document.querySelectorAll('link[rel="stylesheet"]').forEach(function(link) {
            var url = new URL(link.href);
            url.searchParams.set('_reload', Date.now());
            link.href = url.toString();
          });
          break;
        case 'error':
          showOverlay(msg.error);
          break;
        case 'clear':
          clearOverlay();
          break;
      }
    };

    ws.onclose = function() {
      setTimeout(function() {
        delay = Math.min(delay * 2, maxDelay);
        connect();
      }, delay);
    };

    ws.onerror = function() {
      ws.close();
    };
  }

  function showOverlay(error) {
    clearOverlay();
    var overlay = document.createElement('div');
    overlay.id = 'donut-error-overlay';
    overlay.style.cssText = 'position:fixed;inset:0;background:rgba(0,0,0,0.9);color:#fff;font-family:monospace;font-size:14px;padding:20px;overflow:auto;z-index:999999;';
    var pre = document.createElement('pre');
    pre.style.cssText = 'max-width:800px;margin:0 auto;white-space:pre-wrap;background:#131313;padding:20px;border-radius:12px;border:1px solid #333;';
    pre.textContent = error;
    overlay.appendChild(pre);
    document.body.appendChild(overlay);
  }

  function clearOverlay() {
    var overlay = document.getElementById('donut-error-overlay');
    if (overlay) {
      overlay.remove();
    }
  }

  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', connect);
  } else {
    connect();
  }
})();
`
