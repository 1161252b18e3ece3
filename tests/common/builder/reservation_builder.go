//go:build unit || e2e

package builder

import (
	reqdto "hotel-registry/internal/handler/dto/request"
	"hotel-registry/internal/usecase"
	"hotel-registry/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ReservationID string
	CustomerID    string
	HotelID       uuid.UUID
	HotelName     string
	RoomNumber    string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ReservationID: "100000",
		CustomerID:    "1234",
		HotelID:       uuid.MustParse("0b8f8a57-6d3c-4d0e-9a1e-5c2f3d4e5f60"),
		HotelName:     "H1",
		RoomNumber:    "101",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		ReservationID: b.ReservationID,
		CustomerID:    b.CustomerID,
		HotelName:     b.HotelName,
		RoomNumber:    b.RoomNumber,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ReservationID: b.ReservationID,
		CustomerID:    b.CustomerID,
		HotelName:     b.HotelName,
		RoomNumber:    b.RoomNumber,
	}
}

func (b *ReservationBuilder) BuildView() *readmodel.ReservationView {
	return &readmodel.ReservationView{
		ID:         b.ReservationID,
		CustomerID: b.CustomerID,
		HotelID:    b.HotelID,
		HotelName:  b.HotelName,
		RoomNumber: b.RoomNumber,
	}
}
