package hotel

import (
	"sort"

	"github.com/google/uuid"
)

// Hotel is keyed by its mutable name in the store; id stays stable across
// renames so reservations never lose track of it.
type Hotel struct {
	id       uuid.UUID
	name     Name
	location Location
	rooms    map[RoomNumber]*Room
}

func NewHotel(name Name, location Location) *Hotel {
	return &Hotel{
		id:       uuid.New(),
		name:     name,
		location: location,
		rooms:    make(map[RoomNumber]*Room),
	}
}

func (h *Hotel) AddRoom(room *Room) error {
	if _, exists := h.rooms[room.Number()]; exists {
		return ErrRoomAlreadyExists
	}
	h.rooms[room.Number()] = room
	return nil
}

func (h *Hotel) Room(number RoomNumber) (*Room, bool) {
	room, ok := h.rooms[number]
	return room, ok
}

// Rooms returns the rooms ordered by number.
func (h *Hotel) Rooms() []*Room {
	rooms := make([]*Room, 0, len(h.rooms))
	for _, room := range h.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Number().String() < rooms[j].Number().String()
	})
	return rooms
}

func (h *Hotel) Rename(name Name) {
	h.name = name
}

func (h *Hotel) Relocate(location Location) error {
	if h.location == location {
		return ErrLocationUnchanged
	}
	h.location = location
	return nil
}

func (h *Hotel) ID() uuid.UUID      { return h.id }
func (h *Hotel) Name() Name         { return h.name }
func (h *Hotel) Location() Location { return h.location }
func (h *Hotel) RoomCount() int     { return len(h.rooms) }
