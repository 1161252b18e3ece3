package response

import (
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	Number string `json:"number"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

type HotelResponse struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Location string         `json:"location"`
	Rooms    []RoomResponse `json:"rooms"`
}

type CreateHotelResponse struct {
	Hotel  *HotelResponse  `json:"hotel"`
	Report *ReportResponse `json:"report"`
}

func FromRoomView(v *readmodel.RoomView) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "map room view")
	}
	return &res, nil
}

func FromHotelView(v *readmodel.HotelView) (*HotelResponse, error) {
	res := HotelResponse{Rooms: []RoomResponse{}}
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "map hotel view")
	}
	return &res, nil
}

func FromHotelList(views []*readmodel.HotelView) ([]*HotelResponse, error) {
	res := make([]*HotelResponse, len(views))
	for i, v := range views {
		hotel, err := FromHotelView(v)
		if err != nil {
			return nil, err
		}
		res[i] = hotel
	}
	return res, nil
}
