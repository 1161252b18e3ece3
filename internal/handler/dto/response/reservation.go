package response

import (
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	HotelID    uuid.UUID         `json:"hotel_id"`
	HotelName  string            `json:"hotel_name"`
	RoomNumber string            `json:"room_number"`
	Customer   *CustomerResponse `json:"customer,omitempty"`
}

func FromReservationView(v *readmodel.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "map reservation view")
	}
	return &res, nil
}

func FromReservationList(views []*readmodel.ReservationView) ([]*ReservationResponse, error) {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		r, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
