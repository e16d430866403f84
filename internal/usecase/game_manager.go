package usecase

import (
	"log/slog"
	"sync"

	"github.com/speedyfrrrrrr/tictactoe-backend/internal/apperror"
	"github.com/speedyfrrrrrr/tictactoe-backend/internal/entity"
)

type roomRepo interface {
	CreateOrUpdate(room *entity.Room)
	GetByID(id string) (*entity.Room, error)
	DeleteByID(id string)
	ListPublicWaiting() []entity.RoomSummary
	GenerateRoomID() string
}

type playerRepo interface {
	CreateOrUpdate(player *entity.Player)
	GetByID(id string) (*entity.Player, error)
	DeleteByID(id string)
}

// Emitter is the abstract bidirectional channel the manager talks through.
// Delivery is fire-and-forget; no call may block.
type Emitter interface {
	ToConnection(connID, action string, payload any)
	ToRoom(roomID, action string, payload any)
	ToRoomExcept(roomID, exceptConnID, action string, payload any)
	ToAll(action string, payload any)
	Subscribe(connID, roomID string)
	Unsubscribe(connID, roomID string)
}

// GameManager translates inbound connection events into room and registry
// operations and emits the resulting state to affected connections.
//
// Every handler holds mu for its whole body, so events are processed
// run-to-completion: no two events ever interleave on a room or registry,
// which is the correctness requirement for the shared mutable state.
type GameManager struct {
	logger *slog.Logger

	mu      sync.Mutex
	rooms   roomRepo
	players playerRepo
	emitter Emitter
}

func NewGameManager(logger *slog.Logger, rooms roomRepo, players playerRepo, emitter Emitter) *GameManager {
	return &GameManager{
		logger: logger,

		rooms:   rooms,
		players: players,
		emitter: emitter,
	}
}

// JoinLobby - creates or overwrites the player record for the connection
// and answers with the current public-waiting room list.
func (that *GameManager) JoinLobby(connID, name string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := &entity.Player{ConnID: connID, Name: name}
	that.players.CreateOrUpdate(player)

	that.emitter.ToConnection(connID, ActionPublicRooms, that.rooms.ListPublicWaiting())

	that.logger.Info("player joined lobby", "connID", connID, "name", name)
}

// CreateRoom - creates a room with the caller as first player, binds the
// connection to it and announces the room to the lobby when public.
func (that *GameManager) CreateRoom(connID string, isPublic bool, name string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.getOrCreatePlayer(connID, name)

	roomID := that.rooms.GenerateRoomID()
	room := entity.NewRoom(roomID, isPublic)
	room.AddPlayer(connID, player.Name)
	that.rooms.CreateOrUpdate(room)

	player.RoomID = roomID
	player.ReadyForRematch = false
	that.players.CreateOrUpdate(player)

	that.emitter.Subscribe(connID, roomID)
	that.emitter.ToConnection(connID, ActionRoomCreated, RoomRef{RoomID: roomID})
	if room.Public {
		that.emitter.ToAll(ActionPublicRooms, that.rooms.ListPublicWaiting())
	}
	that.emitter.ToRoom(roomID, ActionRoomState, room.State())

	that.logger.Info("room created", "roomID", roomID, "connID", connID, "public", isPublic)
}

// JoinRoom - seats the caller in an existing waiting room. Rejections are
// surfaced to the caller only, as an "error" event with the reason.
func (that *GameManager) JoinRoom(connID, roomID, name string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "JoinRoom", "roomID", roomID, "connID", connID)

	room, err := that.rooms.GetByID(roomID)
	if err != nil {
		log.Debug("rejected join", "reason", apperror.ErrRoomNotFound)
		that.emitter.ToConnection(connID, ActionError, ErrorPayload{Message: apperror.ErrRoomNotFound.Error()})
		return
	}

	if room.IsFull() {
		log.Debug("rejected join", "reason", apperror.ErrRoomFull)
		that.emitter.ToConnection(connID, ActionError, ErrorPayload{Message: apperror.ErrRoomFull.Error()})
		return
	}

	if !room.IsWaiting() {
		log.Debug("rejected join", "reason", apperror.ErrGameInProgress)
		that.emitter.ToConnection(connID, ActionError, ErrorPayload{Message: apperror.ErrGameInProgress.Error()})
		return
	}

	player := that.getOrCreatePlayer(connID, name)

	room.AddPlayer(connID, player.Name)
	that.rooms.CreateOrUpdate(room)

	player.RoomID = roomID
	player.ReadyForRematch = false
	that.players.CreateOrUpdate(player)

	that.emitter.Subscribe(connID, roomID)
	that.emitter.ToConnection(connID, ActionRoomJoined, RoomRef{RoomID: roomID})
	that.emitter.ToRoom(roomID, ActionRoomState, room.State())
	if room.Public {
		that.emitter.ToAll(ActionPublicRooms, that.rooms.ListPublicWaiting())
	}

	log.Info("player joined room")
}

// MakeMove - delegates to the room and broadcasts only on success. Illegal
// moves are expected races between optimistic clients, so they produce no
// error event, only the absence of a broadcast.
func (that *GameManager) MakeMove(connID, roomID string, cell int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, err := that.rooms.GetByID(roomID)
	if err != nil {
		return
	}

	if !room.MakeMove(connID, cell) {
		that.logger.Debug("rejected move", "roomID", roomID, "connID", connID, "cell", cell)
		return
	}

	that.rooms.CreateOrUpdate(room)
	that.emitter.ToRoom(roomID, ActionRoomState, room.State())
}

// RequestRematch - flags the caller as ready. The room only resets once
// both seated players have requested a rematch since the last reset; a
// lone request just notifies the peer.
func (that *GameManager) RequestRematch(connID, roomID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, err := that.rooms.GetByID(roomID)
	if err != nil || !room.IsFinished() {
		return
	}

	player, err := that.players.GetByID(connID)
	if err != nil || player.RoomID != roomID {
		return
	}

	player.ReadyForRematch = true
	that.players.CreateOrUpdate(player)

	if room.IsFull() && that.allReadyForRematch(room) {
		room.Reset()
		that.clearRematchFlags(room)
		that.rooms.CreateOrUpdate(room)
		that.emitter.ToRoom(roomID, ActionRoomState, room.State())

		that.logger.Info("rematch started", "roomID", roomID)
		return
	}

	that.emitter.ToRoomExcept(roomID, connID, ActionRematchRequested, RoomRef{RoomID: roomID})
}

// LeaveRoom - removes the caller from its room and unbinds the player
// record. The room is deleted once its last player leaves; otherwise the
// remaining player sees a fresh snapshot.
func (that *GameManager) LeaveRoom(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player, err := that.players.GetByID(connID)
	if err != nil || player.RoomID == "" {
		return
	}

	that.detachFromRoom(player)

	player.RoomID = ""
	player.ReadyForRematch = false
	that.players.CreateOrUpdate(player)
}

// Disconnect - same room cleanup as LeaveRoom plus deletion of the player
// record itself.
func (that *GameManager) Disconnect(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player, err := that.players.GetByID(connID)
	if err != nil {
		return
	}

	if player.RoomID != "" {
		that.detachFromRoom(player)
	}

	that.players.DeleteByID(connID)

	that.logger.Info("player disconnected", "connID", connID)
}

// PublicRooms - the current public-waiting listing, for read-only callers.
func (that *GameManager) PublicRooms() []entity.RoomSummary {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rooms.ListPublicWaiting()
}

func (that *GameManager) detachFromRoom(player *entity.Player) {
	room, err := that.rooms.GetByID(player.RoomID)
	if err != nil {
		return
	}

	room.RemovePlayer(player.ConnID)
	that.emitter.Unsubscribe(player.ConnID, room.ID)

	if room.IsEmpty() {
		that.rooms.DeleteByID(room.ID)
		that.logger.Info("room deleted", "roomID", room.ID)
		return
	}

	that.rooms.CreateOrUpdate(room)
	that.emitter.ToRoom(room.ID, ActionRoomState, room.State())
	if room.Public {
		that.emitter.ToAll(ActionPublicRooms, that.rooms.ListPublicWaiting())
	}
}

func (that *GameManager) allReadyForRematch(room *entity.Room) bool {
	for _, slot := range room.Players {
		player, err := that.players.GetByID(slot.ConnID)
		if err != nil || !player.ReadyForRematch {
			return false
		}
	}

	return true
}

func (that *GameManager) clearRematchFlags(room *entity.Room) {
	for _, slot := range room.Players {
		player, err := that.players.GetByID(slot.ConnID)
		if err != nil {
			continue
		}

		player.ReadyForRematch = false
		that.players.CreateOrUpdate(player)
	}
}

func (that *GameManager) getOrCreatePlayer(connID, name string) *entity.Player {
	player, err := that.players.GetByID(connID)
	if err != nil {
		player = &entity.Player{ConnID: connID}
	}

	if name != "" {
		player.Name = name
	}

	return player
}
