package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=mock_usecase

import (
	"context"

	"hotel-registry/internal/domain/hotel"
	"hotel-registry/internal/pkg/patch"
	"hotel-registry/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// CustomerDirectory is the part of the customer store the reservation
// coordinator depends on.
type CustomerDirectory interface {
	Exists(ctx context.Context, id string) bool
	Get(ctx context.Context, id string) (*readmodel.CustomerView, error)
}

// RoomInventory is the part of the hotel store the reservation coordinator
// depends on. HoldRoom and ReleaseRoom resolve the hotel and flip the room
// status in one step, so a concurrent rename cannot split the two.
type RoomInventory interface {
	HotelExists(ctx context.Context, name string) bool
	RoomExists(ctx context.Context, name, number string) bool
	RoomStatus(ctx context.Context, name, number string) (hotel.RoomStatus, error)
	HotelName(ctx context.Context, id uuid.UUID) (string, bool)
	HoldRoom(ctx context.Context, name, number string) (uuid.UUID, error)
	ReleaseRoom(ctx context.Context, hotelID uuid.UUID, number string) (string, error)
}

type CustomerService interface {
	CustomerDirectory
	Create(ctx context.Context, params CreateCustomerParams) (*readmodel.CustomerView, error)
	Delete(ctx context.Context, id string) error
	Modify(ctx context.Context, id string, update CustomerUpdate) (*readmodel.Report, error)
	List(ctx context.Context) []*readmodel.CustomerView
}

type HotelService interface {
	RoomInventory
	Create(ctx context.Context, params CreateHotelParams) (*readmodel.HotelView, *readmodel.Report, error)
	CreateRoom(ctx context.Context, name, number string, spec RoomSpec) (*readmodel.RoomView, error)
	Delete(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (*readmodel.HotelView, error)
	HotelID(ctx context.Context, name string) (uuid.UUID, error)
	Modify(ctx context.Context, name string, update HotelUpdate) (*readmodel.Report, error)
	Reserve(ctx context.Context, name, number string) (*readmodel.RoomView, error)
	Cancel(ctx context.Context, name, number string) (*readmodel.RoomView, error)
	List(ctx context.Context) []*readmodel.HotelView
}

type ReservationService interface {
	Create(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationView, error)
	Cancel(ctx context.Context, id string) (*readmodel.ReservationView, error)
	Get(ctx context.Context, id string) (*readmodel.ReservationView, error)
	List(ctx context.Context) []*readmodel.ReservationView
}

type CreateCustomerParams struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type CustomerUpdate struct {
	Name  patch.Value[string]
	Email patch.Value[string]
	Phone patch.Value[string]
}

type RoomSpec struct {
	Status string
	Type   string
}

type RoomPatch struct {
	Status patch.Value[string]
	Type   patch.Value[string]
}

type CreateHotelParams struct {
	Name     string
	Location string
	Rooms    map[string]RoomSpec
}

type HotelUpdate struct {
	Name     patch.Value[string]
	Location patch.Value[string]
	Rooms    patch.Value[map[string]RoomPatch]
}

type CreateReservationParams struct {
	ReservationID string
	CustomerID    string
	HotelName     string
	RoomNumber    string
}

var (
	_ CustomerService    = (*CustomerStore)(nil)
	_ HotelService       = (*HotelStore)(nil)
	_ ReservationService = (*ReservationCoordinator)(nil)
)
