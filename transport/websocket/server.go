package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type gameManager interface {
	JoinLobby(connID, name string)
	CreateRoom(connID string, isPublic bool, name string)
	JoinRoom(connID, roomID, name string)
	MakeMove(connID, roomID string, cell int)
	RequestRematch(connID, roomID string)
	LeaveRoom(connID string)
	Disconnect(connID string)
}

// Server upgrades HTTP requests to websocket connections and routes each
// inbound message to the matching manager method.
type Server struct {
	logger  *slog.Logger
	hub     *Hub
	manager gameManager

	upgrader websocket.Upgrader
	handlers map[string]func(connID string, payload json.RawMessage) error
}

// New - builds the websocket endpoint. allowedOrigins is the browser origin
// allow-list; requests without an Origin header (non-browser clients) are
// always accepted.
func New(logger *slog.Logger, hub *Hub, manager gameManager, allowedOrigins []string) *Server {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = struct{}{}
	}

	server := &Server{
		logger:  logger,
		hub:     hub,
		manager: manager,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},

		handlers: make(map[string]func(string, json.RawMessage) error),
	}

	server.handlers[actionJoinLobby] = server.handleJoinLobby
	server.handlers[actionCreateRoom] = server.handleCreateRoom
	server.handlers[actionJoinRoom] = server.handleJoinRoom
	server.handlers[actionMakeMove] = server.handleMakeMove
	server.handlers[actionRequestRematch] = server.handleRequestRematch
	server.handlers[actionLeaveRoom] = server.handleLeaveRoom

	return server
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(uuid.NewString(), conn)
	that.hub.register(c)
	go c.writePump(that.logger)

	log.Info("WebSocket connection established", "connID", c.id)

	that.readLoop(c)

	// connection closed: room cleanup plus player record deletion
	that.manager.Disconnect(c.id)
	that.hub.remove(c.id)
}

// readLoop - processes messages from the client until the socket closes.
func (that *Server) readLoop(c *client) {
	log := that.logger.With("method", "readLoop", "connID", c.id)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("connection closed unexpectedly", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(raw, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			continue
		}

		if err = handler(c.id, message.Payload); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) handleJoinLobby(connID string, payload json.RawMessage) error {
	var req JoinLobbyPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.manager.JoinLobby(connID, req.Name)

	return nil
}

func (that *Server) handleCreateRoom(connID string, payload json.RawMessage) error {
	var req CreateRoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.manager.CreateRoom(connID, req.IsPublic, req.Name)

	return nil
}

func (that *Server) handleJoinRoom(connID string, payload json.RawMessage) error {
	var req JoinRoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.manager.JoinRoom(connID, req.RoomID, req.Name)

	return nil
}

func (that *Server) handleMakeMove(connID string, payload json.RawMessage) error {
	var req MakeMovePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.manager.MakeMove(connID, req.RoomID, req.Index)

	return nil
}

func (that *Server) handleRequestRematch(connID string, payload json.RawMessage) error {
	var req RematchPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.manager.RequestRematch(connID, req.RoomID)

	return nil
}

func (that *Server) handleLeaveRoom(connID string, _ json.RawMessage) error {
	that.manager.LeaveRoom(connID)

	return nil
}
