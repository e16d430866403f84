package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// roomsHandler - serves the same public-waiting listing the lobby receives
// over the socket, for clients that want to poll before connecting.
func roomsHandler(logger *slog.Logger, rooms roomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rooms.PublicRooms()); err != nil {
			logger.Error("failed to encode room listing", "error", err)
		}
	}
}
