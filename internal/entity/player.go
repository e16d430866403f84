package entity

// Player is the session-side record for one connection. It is created on
// lobby entry, rebound on room join/leave and destroyed on disconnect.
type Player struct {
	ConnID          string `json:"id"`
	Name            string `json:"name"`
	RoomID          string `json:"roomId,omitempty"`
	ReadyForRematch bool   `json:"-"`
}
