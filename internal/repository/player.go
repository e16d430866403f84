package repository

import (
	"errors"
	"sync"

	"github.com/speedyfrrrrrr/tictactoe-backend/internal/entity"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	CreateOrUpdate(player *entity.Player)
	GetByID(id string) (*entity.Player, error)
	DeleteByID(id string)
}

type memoryPlayer struct {
	mu      sync.RWMutex
	players map[string]*entity.Player
}

func NewPlayerRepository() PlayerRepository {
	return &memoryPlayer{
		players: make(map[string]*entity.Player),
	}
}

func (that *memoryPlayer) CreateOrUpdate(player *entity.Player) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.players[player.ConnID] = player
}

func (that *memoryPlayer) GetByID(id string) (*entity.Player, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	player, ok := that.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return player, nil
}

func (that *memoryPlayer) DeleteByID(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.players, id)
}
