package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/imuzolev/playnashville/errors"
)

// WebSocket timeout constants following Gorilla best practices
// See: https://github.com/gorilla/websocket/blob/master/examples/chat/client.go
const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = 54 * time.Second

	// Maximum message size allowed from peer (song texts are small)
	maxMessageSize = 256 * 1024
)

// wsResponse is the reply to one annotation message. Exactly one of Error
// or AnnotatedText is meaningful.
type wsResponse struct {
	AnnotatedText string `json:"annotated_text,omitempty"`
	Tonality      string `json:"tonality,omitempty"`
	Key           string `json:"key,omitempty"`
	Mode          string `json:"mode,omitempty"`
	Error         string `json:"error,omitempty"`
}

// wsClient is one live annotation socket. Each inbound message is a
// processRequest. Annotation is stateless, so there is no hub, just a
// read pump feeding a write pump through send.
type wsClient struct {
	server *Server
	conn   *websocket.Conn
	send   chan wsResponse
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return s.originAllowed(r.Header.Get("Origin"))
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnw("WebSocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	client := &wsClient{
		server: s,
		conn:   conn,
		send:   make(chan wsResponse, 16),
	}

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		client.readPump()
	}()
	go func() {
		defer s.wg.Done()
		client.writePump()
	}()
}

// readPump processes annotation requests until the peer goes away or the
// server shuts down.
func (c *wsClient) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-c.server.ctx.Done():
			return
		default:
		}

		var req processRequest
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.server.logger.Debugw("WebSocket closed unexpectedly", "error", err)
			}
			return
		}
		c.send <- c.annotateMessage(req)
	}
}

func (c *wsClient) annotateMessage(req processRequest) wsResponse {
	if req.Text == "" {
		return wsResponse{Error: "text must not be empty"}
	}
	resp, err := c.server.process(req.Text, req.Key, req.Mode)
	if err != nil {
		if errors.IsUserInputError(err) {
			return wsResponse{Error: err.Error()}
		}
		c.server.logger.Errorw("WebSocket annotation failed", "error", err)
		return wsResponse{Error: "annotation failed"}
	}
	return wsResponse{
		AnnotatedText: resp.AnnotatedText,
		Tonality:      resp.Tonality,
		Key:           resp.Key,
		Mode:          resp.Mode,
	}
}

// writePump delivers responses and keeps the connection alive with pings.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case resp, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(resp); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
