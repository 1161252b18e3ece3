package readmodel

import (
	"hotel-registry/internal/domain/hotel"

	"github.com/google/uuid"
)

type RoomView struct {
	Number string `json:"number"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

type HotelView struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Rooms    []RoomView `json:"rooms"`
}

func FromRoom(r *hotel.Room) RoomView {
	return RoomView{
		Number: r.Number().String(),
		Status: r.Status().String(),
		Type:   r.Type().String(),
	}
}

func FromHotel(h *hotel.Hotel) *HotelView {
	rooms := h.Rooms()
	views := make([]RoomView, len(rooms))
	for i, r := range rooms {
		views[i] = FromRoom(r)
	}
	return &HotelView{
		ID:       h.ID(),
		Name:     h.Name().String(),
		Location: h.Location().String(),
		Rooms:    views,
	}
}
