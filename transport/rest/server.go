package rest

import (
	"log/slog"
	"net/http"

	"github.com/speedyfrrrrrr/tictactoe-backend/internal/entity"
)

type roomLister interface {
	PublicRooms() []entity.RoomSummary
}

// Register - mounts the read-only HTTP endpoints on the shared mux.
func Register(mux *http.ServeMux, logger *slog.Logger, rooms roomLister) {
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/rooms", roomsHandler(logger, rooms))
}
