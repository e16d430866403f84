package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/speedyfrrrrrr/tictactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	rooms []entity.RoomSummary
}

func (that *stubLister) PublicRooms() []entity.RoomSummary {
	return that.rooms
}

func TestRoomsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("GET returns the public waiting listing as JSON", func(t *testing.T) {
		// Given: one public waiting room
		lister := &stubLister{rooms: []entity.RoomSummary{
			{ID: "ROOM01", IsPublic: true, PlayerCount: 1, Status: entity.StatusWaiting},
		}}

		mux := http.NewServeMux()
		Register(mux, logger, lister)

		// When: the listing is requested
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		// Then: the summary comes back untouched
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var listing []entity.RoomSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
		assert.Equal(t, lister.rooms, listing)
	})

	t.Run("Non-GET methods are rejected", func(t *testing.T) {
		mux := http.NewServeMux()
		Register(mux, logger, &stubLister{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rooms", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestPingHandler(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, slog.New(slog.NewTextHandler(io.Discard, nil)), &stubLister{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
