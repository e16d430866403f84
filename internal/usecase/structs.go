package usecase

// Outbound action names. Together with the payload field names these are
// the wire contract and must not be renamed.
const (
	ActionPublicRooms      = "public-rooms"
	ActionRoomCreated      = "room-created"
	ActionRoomJoined       = "room-joined"
	ActionRoomState        = "room-state"
	ActionRematchRequested = "rematch-requested"
	ActionError            = "error"
)

// RoomRef carries a bare room identifier.
type RoomRef struct {
	RoomID string `json:"roomId"`
}

// ErrorPayload carries the human-readable rejection reason sent to the
// acting connection only.
type ErrorPayload struct {
	Message string `json:"message"`
}
