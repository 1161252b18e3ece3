package reservation

import (
	"hotel-registry/internal/domain/customer"
	"hotel-registry/internal/domain/hotel"

	"github.com/google/uuid"
)

// Reservation holds lookup keys into the customer and hotel stores; it owns
// neither. The hotel is referenced by its stable id, not its name.
type Reservation struct {
	id         ID
	customerID customer.ID
	hotelID    uuid.UUID
	roomNumber hotel.RoomNumber
}

func NewReservation(id ID, customerID customer.ID, hotelID uuid.UUID, roomNumber hotel.RoomNumber) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		hotelID:    hotelID,
		roomNumber: roomNumber,
	}
}

func (r *Reservation) ID() ID                       { return r.id }
func (r *Reservation) CustomerID() customer.ID      { return r.customerID }
func (r *Reservation) HotelID() uuid.UUID           { return r.hotelID }
func (r *Reservation) RoomNumber() hotel.RoomNumber { return r.roomNumber }
