//go:build unit || e2e

package builder

import (
	"hotel-registry/internal/domain/hotel"
	reqdto "hotel-registry/internal/handler/dto/request"
	"hotel-registry/internal/usecase"
	"hotel-registry/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RoomFixture struct {
	Status string
	Type   string
}

type HotelBuilder struct {
	ID       uuid.UUID
	Name     string
	Location string
	Rooms    map[string]RoomFixture
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:       uuid.MustParse("0b8f8a57-6d3c-4d0e-9a1e-5c2f3d4e5f60"),
		Name:     "H1",
		Location: "Tijuana",
		Rooms: map[string]RoomFixture{
			"101": {Status: "available", Type: "single"},
		},
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) WithRoom(number, status, roomType string) *HotelBuilder {
	if b.Rooms == nil {
		b.Rooms = make(map[string]RoomFixture)
	}
	b.Rooms[number] = RoomFixture{Status: status, Type: roomType}
	return b
}

// BuildDomain skips no rooms: every fixture room must be valid.
func (b *HotelBuilder) BuildDomain() (*hotel.Hotel, error) {
	name, err := hotel.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	location, err := hotel.NewLocation(b.Location)
	if err != nil {
		return nil, err
	}
	h := hotel.NewHotel(name, location)
	for number, r := range b.Rooms {
		n, err := hotel.NewRoomNumber(number)
		if err != nil {
			return nil, err
		}
		status, err := hotel.NewRoomStatus(r.Status)
		if err != nil {
			return nil, err
		}
		roomType, err := hotel.NewRoomType(r.Type)
		if err != nil {
			return nil, err
		}
		if err := h.AddRoom(hotel.NewRoom(n, status, roomType)); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (b *HotelBuilder) BuildParams() usecase.CreateHotelParams {
	rooms := make(map[string]usecase.RoomSpec, len(b.Rooms))
	for number, r := range b.Rooms {
		rooms[number] = usecase.RoomSpec{Status: r.Status, Type: r.Type}
	}
	return usecase.CreateHotelParams{
		Name:     b.Name,
		Location: b.Location,
		Rooms:    rooms,
	}
}

func (b *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	rooms := make(map[string]reqdto.RoomRequest, len(b.Rooms))
	for number, r := range b.Rooms {
		rooms[number] = reqdto.RoomRequest{Status: r.Status, Type: r.Type}
	}
	return reqdto.CreateHotelRequest{
		Name:     b.Name,
		Location: b.Location,
		Rooms:    rooms,
	}
}

// BuildView lists rooms in ascending number order, as the store does.
func (b *HotelBuilder) BuildView() *readmodel.HotelView {
	h, err := b.BuildDomain()
	if err != nil {
		panic("HotelBuilder.BuildView: " + err.Error())
	}
	view := readmodel.FromHotel(h)
	view.ID = b.ID
	return view
}
