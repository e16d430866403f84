package websocket

import "encoding/json"

// Inbound action names. These and the payload field names are the wire
// contract shared with the client.
const (
	actionJoinLobby      = "join-lobby"
	actionCreateRoom     = "create-room"
	actionJoinRoom       = "join-room"
	actionMakeMove       = "make-move"
	actionRequestRematch = "request-rematch"
	actionLeaveRoom      = "leave-room"
)

// Message is the envelope every frame carries in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type JoinLobbyPayload struct {
	Name string `json:"name"`
}

type CreateRoomPayload struct {
	IsPublic bool   `json:"isPublic"`
	Name     string `json:"name"`
}

type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

type MakeMovePayload struct {
	RoomID string `json:"roomId"`
	Index  int    `json:"index"`
}

type RematchPayload struct {
	RoomID string `json:"roomId"`
}
