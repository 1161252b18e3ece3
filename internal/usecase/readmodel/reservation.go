package readmodel

import (
	"hotel-registry/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	HotelID    uuid.UUID     `json:"hotel_id"`
	HotelName  string        `json:"hotel_name"`
	RoomNumber string        `json:"room_number"`
	Customer   *CustomerView `json:"customer,omitempty"`
}

// FromReservation resolves the hotel name at read time; hotelName is empty
// when the hotel has since been deleted.
func FromReservation(r *reservation.Reservation, hotelName string) *ReservationView {
	return &ReservationView{
		ID:         r.ID().String(),
		CustomerID: r.CustomerID().String(),
		HotelID:    r.HotelID(),
		HotelName:  hotelName,
		RoomNumber: r.RoomNumber().String(),
	}
}
