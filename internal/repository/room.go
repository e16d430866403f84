package repository

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sync"

	"github.com/speedyfrrrrrr/tictactoe-backend/internal/entity"
)

var ErrRoomNotFound = errors.New("room not found")

const (
	roomIDLength   = 6
	roomIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type RoomRepository interface {
	CreateOrUpdate(room *entity.Room)
	GetByID(id string) (*entity.Room, error)
	DeleteByID(id string)
	ListPublicWaiting() []entity.RoomSummary
	GenerateRoomID() string
}

// memoryRoom keeps live rooms in a process-scoped map. Rooms die with the
// process; there is no persistence layer behind this registry.
type memoryRoom struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
	order []string
}

func NewRoomRepository() RoomRepository {
	return &memoryRoom{
		rooms: make(map[string]*entity.Room),
	}
}

func (that *memoryRoom) CreateOrUpdate(room *entity.Room) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rooms[room.ID]; !ok {
		that.order = append(that.order, room.ID)
	}
	that.rooms[room.ID] = room
}

func (that *memoryRoom) GetByID(id string) (*entity.Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

func (that *memoryRoom) DeleteByID(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rooms[id]; !ok {
		return
	}

	delete(that.rooms, id)
	for i, roomID := range that.order {
		if roomID == id {
			that.order = append(that.order[:i], that.order[i+1:]...)
			break
		}
	}
}

// ListPublicWaiting - projects every public room still waiting for an
// opponent, in insertion order.
func (that *memoryRoom) ListPublicWaiting() []entity.RoomSummary {
	that.mu.RLock()
	defer that.mu.RUnlock()

	summaries := make([]entity.RoomSummary, 0, len(that.order))
	for _, id := range that.order {
		room := that.rooms[id]
		if room.Public && room.IsWaiting() {
			summaries = append(summaries, room.Summary())
		}
	}

	return summaries
}

// GenerateRoomID - produces a short, human-shareable code of 6 uppercase
// alphanumeric characters and retries until it is unused among live rooms.
func (that *memoryRoom) GenerateRoomID() string {
	for {
		id := randomCode(roomIDLength)

		that.mu.RLock()
		_, taken := that.rooms[id]
		that.mu.RUnlock()

		if !taken {
			return id
		}
	}
}

func randomCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomIDAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			code[i] = roomIDAlphabet[0]
			continue
		}
		code[i] = roomIDAlphabet[n.Int64()]
	}

	return string(code)
}
