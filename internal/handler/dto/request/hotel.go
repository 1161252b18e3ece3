package request

import (
	"hotel-registry/internal/pkg/patch"
	"hotel-registry/internal/usecase"
)

type RoomRequest struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

type CreateHotelRequest struct {
	Name     string                 `json:"name"`
	Location string                 `json:"location"`
	Rooms    map[string]RoomRequest `json:"rooms"`
}

func (r *CreateHotelRequest) ToParams() usecase.CreateHotelParams {
	rooms := make(map[string]usecase.RoomSpec, len(r.Rooms))
	for number, room := range r.Rooms {
		rooms[number] = usecase.RoomSpec{Status: room.Status, Type: room.Type}
	}
	return usecase.CreateHotelParams{
		Name:     r.Name,
		Location: r.Location,
		Rooms:    rooms,
	}
}

type CreateRoomRequest struct {
	Number string `json:"number"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

func (r *CreateRoomRequest) ToSpec() usecase.RoomSpec {
	return usecase.RoomSpec{Status: r.Status, Type: r.Type}
}

type RoomPatchRequest struct {
	Status patch.Value[string] `json:"status,omitzero"`
	Type   patch.Value[string] `json:"type,omitzero"`
}

type UpdateHotelRequest struct {
	Name     patch.Value[string]                      `json:"name,omitzero"`
	Location patch.Value[string]                      `json:"location,omitzero"`
	Rooms    patch.Value[map[string]RoomPatchRequest] `json:"rooms,omitzero"`
}

func (r *UpdateHotelRequest) ToUpdate() usecase.HotelUpdate {
	update := usecase.HotelUpdate{
		Name:     r.Name,
		Location: r.Location,
	}
	if rooms, ok := r.Rooms.Get(); ok {
		patches := make(map[string]usecase.RoomPatch, len(rooms))
		for number, p := range rooms {
			patches[number] = usecase.RoomPatch{Status: p.Status, Type: p.Type}
		}
		update.Rooms = patch.Set(patches)
	}
	return update
}
