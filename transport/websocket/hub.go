package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Hub owns the connection registry and the per-room broadcast groups. It
// implements the manager's Emitter interface; every send is non-blocking.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*client
	rooms   map[string]map[string]*client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[string]*client),
		rooms:   make(map[string]map[string]*client),
	}
}

func (that *Hub) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c.id] = c
}

func (that *Hub) remove(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	c, ok := that.clients[connID]
	if !ok {
		return
	}

	delete(that.clients, connID)
	for _, group := range that.rooms {
		delete(group, connID)
	}

	// the send channel stays open: late emissions from concurrent events
	// land in the buffer and are garbage collected with the client
	close(c.done)
}

// Subscribe - adds the connection to a room's broadcast group.
func (that *Hub) Subscribe(connID, roomID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	c, ok := that.clients[connID]
	if !ok {
		return
	}

	group, ok := that.rooms[roomID]
	if !ok {
		group = make(map[string]*client)
		that.rooms[roomID] = group
	}
	group[connID] = c
}

// Unsubscribe - removes the connection from a room's broadcast group and
// drops the group once empty.
func (that *Hub) Unsubscribe(connID, roomID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	group, ok := that.rooms[roomID]
	if !ok {
		return
	}

	delete(group, connID)
	if len(group) == 0 {
		delete(that.rooms, roomID)
	}
}

func (that *Hub) ToConnection(connID, action string, payload any) {
	raw, ok := that.encode(action, payload)
	if !ok {
		return
	}

	that.mu.RLock()
	c, found := that.clients[connID]
	that.mu.RUnlock()

	if !found {
		return
	}

	c.enqueue(that.logger, raw)
}

func (that *Hub) ToRoom(roomID, action string, payload any) {
	that.toRoom(roomID, "", action, payload)
}

func (that *Hub) ToRoomExcept(roomID, exceptConnID, action string, payload any) {
	that.toRoom(roomID, exceptConnID, action, payload)
}

func (that *Hub) ToAll(action string, payload any) {
	raw, ok := that.encode(action, payload)
	if !ok {
		return
	}

	that.mu.RLock()
	targets := make([]*client, 0, len(that.clients))
	for _, c := range that.clients {
		targets = append(targets, c)
	}
	that.mu.RUnlock()

	for _, c := range targets {
		c.enqueue(that.logger, raw)
	}
}

func (that *Hub) toRoom(roomID, exceptConnID, action string, payload any) {
	raw, ok := that.encode(action, payload)
	if !ok {
		return
	}

	that.mu.RLock()
	targets := make([]*client, 0, len(that.rooms[roomID]))
	for connID, c := range that.rooms[roomID] {
		if connID == exceptConnID {
			continue
		}
		targets = append(targets, c)
	}
	that.mu.RUnlock()

	for _, c := range targets {
		c.enqueue(that.logger, raw)
	}
}

func (that *Hub) encode(action string, payload any) ([]byte, bool) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		that.logger.Error("failed to marshal payload", "action", action, "error", err)
		return nil, false
	}

	raw, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		that.logger.Error("failed to marshal message", "action", action, "error", err)
		return nil, false
	}

	return raw, true
}
