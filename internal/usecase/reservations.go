package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"hotel-registry/internal/domain/customer"
	"hotel-registry/internal/domain/hotel"
	"hotel-registry/internal/domain/reservation"
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/usecase/readmodel"
)

// ReservationCoordinator owns the ledger and keeps it consistent with room
// state in the hotel store. It holds its own lock for the whole of Create
// and Cancel and only then calls into the stores, one at a time, customers
// before hotels.
type ReservationCoordinator struct {
	mu        sync.RWMutex
	ledger    *reservation.Ledger
	customers CustomerDirectory
	hotels    RoomInventory
	logger    *slog.Logger
}

func NewReservationCoordinator(customers CustomerDirectory, hotels RoomInventory, logger *slog.Logger) *ReservationCoordinator {
	return &ReservationCoordinator{
		ledger:    reservation.NewLedger(),
		customers: customers,
		hotels:    hotels,
		logger:    logger.With("component", "reservations"),
	}
}

func (c *ReservationCoordinator) Create(ctx context.Context, params CreateReservationParams) (view *readmodel.ReservationView, err error) {
	defer func() {
		logOutcome(ctx, c.logger, "create reservation", err,
			slog.String("reservation_id", params.ReservationID),
			slog.String("customer_id", params.CustomerID),
			slog.String("hotel", params.HotelName),
			slog.String("room", params.RoomNumber),
		)
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := reservation.NewID(params.ReservationID)
	if err != nil {
		return nil, err
	}
	if _, exists := c.ledger.Find(id); exists {
		return nil, reservation.ErrAlreadyExists
	}

	customerID, err := c.validateCustomer(ctx, params.CustomerID)
	if err != nil {
		return nil, err
	}
	holder, err := c.customers.Get(ctx, customerID.String())
	if err != nil {
		return nil, err
	}

	number, err := c.validateRoom(ctx, params.HotelName, params.RoomNumber)
	if err != nil {
		return nil, err
	}
	status, err := c.hotels.RoomStatus(ctx, params.HotelName, number.String())
	if err != nil {
		return nil, err
	}
	if status != hotel.StatusAvailable {
		return nil, reservation.ErrRoomUnavailable
	}

	// The entry records the id of the hotel whose room was actually flipped.
	hotelID, err := c.hotels.HoldRoom(ctx, params.HotelName, number.String())
	if err != nil {
		if errs.Is(err, hotel.ErrRoomNotAvailable) {
			return nil, reservation.ErrRoomUnavailable
		}
		return nil, err
	}

	r := reservation.NewReservation(id, customerID, hotelID, number)
	if err := c.ledger.Append(r); err != nil {
		if _, rollbackErr := c.hotels.ReleaseRoom(ctx, hotelID, number.String()); rollbackErr != nil {
			c.logger.WarnContext(ctx, "failed to release room after ledger append failed",
				"hotel_id", hotelID.String(), "room", number.String(), "error", rollbackErr.Error())
		}
		return nil, err
	}

	view = readmodel.FromReservation(r, params.HotelName)
	view.Customer = holder
	return view, nil
}

// Cancel searches the whole ledger. An entry whose room is no longer held is
// left in place and reported as a conflict.
func (c *ReservationCoordinator) Cancel(ctx context.Context, rawID string) (view *readmodel.ReservationView, err error) {
	defer func() { logOutcome(ctx, c.logger, "cancel reservation", err, slog.String("reservation_id", rawID)) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := reservation.NewID(rawID)
	if err != nil {
		return nil, err
	}
	if c.ledger.Len() == 0 {
		return nil, reservation.ErrLedgerEmpty
	}
	r, ok := c.ledger.Find(id)
	if !ok {
		return nil, reservation.ErrNotFound
	}

	name, err := c.hotels.ReleaseRoom(ctx, r.HotelID(), r.RoomNumber().String())
	if err != nil {
		if errs.Is(err, hotel.ErrRoomNotReserved) {
			return nil, reservation.ErrRoomNotHeld
		}
		return nil, err
	}
	if err := c.ledger.Remove(id); err != nil {
		return nil, err
	}
	return readmodel.FromReservation(r, name), nil
}

func (c *ReservationCoordinator) Get(ctx context.Context, rawID string) (*readmodel.ReservationView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, err := reservation.NewID(rawID)
	if err != nil {
		return nil, err
	}
	r, ok := c.ledger.Find(id)
	if !ok {
		return nil, reservation.ErrNotFound
	}
	view := c.view(ctx, r)
	if holder, err := c.customers.Get(ctx, r.CustomerID().String()); err == nil {
		view.Customer = holder
	}
	return view, nil
}

// List returns the active reservations in insertion order.
func (c *ReservationCoordinator) List(ctx context.Context) []*readmodel.ReservationView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := c.ledger.Entries()
	views := make([]*readmodel.ReservationView, len(entries))
	for i, r := range entries {
		views[i] = c.view(ctx, r)
	}
	return views
}

func (c *ReservationCoordinator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ledger.Len()
}

// validateCustomer checks presence before format, so a well-formed but
// unknown id and a malformed one are reported differently.
func (c *ReservationCoordinator) validateCustomer(ctx context.Context, raw string) (customer.ID, error) {
	if strings.TrimSpace(raw) == "" {
		return customer.ID{}, customer.ErrIDEmpty
	}
	if !c.customers.Exists(ctx, raw) {
		return customer.ID{}, customer.ErrNotFound
	}
	return customer.NewID(raw)
}

func (c *ReservationCoordinator) validateRoom(ctx context.Context, hotelName, raw string) (hotel.RoomNumber, error) {
	if strings.TrimSpace(hotelName) == "" {
		return hotel.RoomNumber{}, hotel.ErrNameEmpty
	}
	if !c.hotels.HotelExists(ctx, hotelName) {
		return hotel.RoomNumber{}, hotel.ErrNotFound
	}
	number, err := hotel.NewRoomNumber(raw)
	if err != nil {
		return hotel.RoomNumber{}, err
	}
	if !c.hotels.RoomExists(ctx, hotelName, raw) {
		return hotel.RoomNumber{}, hotel.ErrRoomNotFound
	}
	return number, nil
}

func (c *ReservationCoordinator) view(ctx context.Context, r *reservation.Reservation) *readmodel.ReservationView {
	name, _ := c.hotels.HotelName(ctx, r.HotelID())
	return readmodel.FromReservation(r, name)
}
