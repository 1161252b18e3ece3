package request

import "hotel-registry/internal/usecase"

type CreateReservationRequest struct {
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"`
	HotelName     string `json:"hotel_name"`
	RoomNumber    string `json:"room_number"`
}

func (r *CreateReservationRequest) ToParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		ReservationID: r.ReservationID,
		CustomerID:    r.CustomerID,
		HotelName:     r.HotelName,
		RoomNumber:    r.RoomNumber,
	}
}
