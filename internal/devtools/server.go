// Package devtools streams recompute records to external inspectors
// over a websocket endpoint, devtools-protocol style.
package devtools

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/okvist/pagesync/internal/history"
)

const writeTimeout = 2 * time.Second

// Server broadcasts records to every connected /events client.
type Server struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}

	httpSrv  *http.Server
	listener net.Listener
}

// NewServer creates an unstarted server.
func NewServer() *Server {
	return &Server{clients: map[*websocket.Conn]struct{}{}}
}

// Listen starts serving on addr. It returns once the listener is bound;
// serving continues in the background until Close.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("devtools listen: %w", err)
	}
	s.listener = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.handleEvents)

	s.httpSrv = &http.Server{Handler: mux}
	go s.httpSrv.Serve(ln)
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Drain the read side so pings are answered; drop the client when
	// it goes away.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			break
		}
	}

	s.drop(conn, websocket.StatusNormalClosure)
}

// Publish sends e to every connected client. Clients that cannot keep
// up are dropped.
func (s *Server) Publish(e history.Entry) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := c.Write(ctx, websocket.MessageText, data)
		cancel()
		if err != nil {
			s.drop(c, websocket.StatusPolicyViolation)
		}
	}
}

func (s *Server) drop(c *websocket.Conn, code websocket.StatusCode) {
	s.mu.Lock()
	_, ok := s.clients[c]
	delete(s.clients, c)
	s.mu.Unlock()
	if ok {
		c.Close(code, "")
	}
}

// Close disconnects all clients and stops the server.
func (s *Server) Close() error {
	s.mu.Lock()
	for c := range s.clients {
		c.Close(websocket.StatusGoingAway, "server shutting down")
	}
	s.clients = map[*websocket.Conn]struct{}{}
	s.mu.Unlock()

	if s.httpSrv != nil {
		return s.httpSrv.Close()
	}
	return nil
}
