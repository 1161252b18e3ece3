package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"hotel-registry/internal/domain/hotel"
	"hotel-registry/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// HotelStore owns every hotel and its rooms. Hotels are keyed by name; the
// secondary index by id survives renames.
type HotelStore struct {
	mu     sync.RWMutex
	byName map[string]*hotel.Hotel
	byID   map[uuid.UUID]*hotel.Hotel
	logger *slog.Logger
}

func NewHotelStore(logger *slog.Logger) *HotelStore {
	return &HotelStore{
		byName: make(map[string]*hotel.Hotel),
		byID:   make(map[uuid.UUID]*hotel.Hotel),
		logger: logger.With("component", "hotels"),
	}
}

// Create registers the hotel, then adds each supplied room in ascending
// number order. Invalid rooms are reported and skipped.
func (s *HotelStore) Create(ctx context.Context, params CreateHotelParams) (view *readmodel.HotelView, report *readmodel.Report, err error) {
	defer func() { logReport(ctx, s.logger, "create hotel", report, err, slog.String("hotel", params.Name)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := hotel.NewName(params.Name)
	if err != nil {
		return nil, nil, err
	}
	if _, exists := s.byName[name.String()]; exists {
		return nil, nil, hotel.ErrAlreadyExists
	}
	location, err := hotel.NewLocation(params.Location)
	if err != nil {
		return nil, nil, err
	}

	h := hotel.NewHotel(name, location)
	s.byName[name.String()] = h
	s.byID[h.ID()] = h

	report = &readmodel.Report{}
	for _, number := range sortedKeys(params.Rooms) {
		spec := params.Rooms[number]
		applyField(report, roomTarget(number), func() error {
			room, err := newRoom(number, spec)
			if err != nil {
				return err
			}
			return h.AddRoom(room)
		})
	}
	return readmodel.FromHotel(h), report, nil
}

func (s *HotelStore) CreateRoom(ctx context.Context, name, number string, spec RoomSpec) (view *readmodel.RoomView, err error) {
	defer func() {
		logOutcome(ctx, s.logger, "create room", err, slog.String("hotel", name), slog.String("room", number))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	room, err := newRoom(number, spec)
	if err != nil {
		return nil, err
	}
	if err := h.AddRoom(room); err != nil {
		return nil, err
	}
	rv := readmodel.FromRoom(room)
	return &rv, nil
}

func (s *HotelStore) Delete(ctx context.Context, name string) (err error) {
	defer func() { logOutcome(ctx, s.logger, "delete hotel", err, slog.String("hotel", name)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.lookup(name)
	if err != nil {
		return err
	}
	delete(s.byName, h.Name().String())
	delete(s.byID, h.ID())
	return nil
}

func (s *HotelStore) Get(ctx context.Context, name string) (*readmodel.HotelView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, err := s.lookup(name)
	if err != nil {
		logOutcome(ctx, s.logger, "get hotel", err, slog.String("hotel", name))
		return nil, err
	}
	return readmodel.FromHotel(h), nil
}

// Modify applies rename, relocation and the room merge in that order. Each
// part is independent; room patches resolve against the renamed hotel.
func (s *HotelStore) Modify(ctx context.Context, name string, update HotelUpdate) (report *readmodel.Report, err error) {
	defer func() { logReport(ctx, s.logger, "modify hotel", report, err, slog.String("hotel", name)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	report = &readmodel.Report{}
	if v, ok := update.Name.Get(); ok {
		applyField(report, "name", func() error { return s.rename(h, v) })
	}
	if v, ok := update.Location.Get(); ok {
		applyField(report, "location", func() error {
			location, err := hotel.NewLocation(v)
			if err != nil {
				return err
			}
			return h.Relocate(location)
		})
	}
	if rooms, ok := update.Rooms.Get(); ok {
		for _, number := range sortedKeys(rooms) {
			p := rooms[number]
			applyField(report, roomTarget(number), func() error { return patchRoom(h, number, p) })
		}
	}
	return report, nil
}

func (s *HotelStore) Reserve(ctx context.Context, name, number string) (*readmodel.RoomView, error) {
	return s.transition(ctx, "reserve room", name, number, (*hotel.Room).Reserve)
}

func (s *HotelStore) Cancel(ctx context.Context, name, number string) (*readmodel.RoomView, error) {
	return s.transition(ctx, "cancel room", name, number, (*hotel.Room).Release)
}

// HoldRoom reserves a room and returns the id of the hotel it belongs to.
// The name is resolved under the same lock as the status change.
func (s *HotelStore) HoldRoom(ctx context.Context, name, number string) (id uuid.UUID, err error) {
	defer func() {
		logOutcome(ctx, s.logger, "hold room", err, slog.String("hotel", name), slog.String("room", number))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.lookup(name)
	if err != nil {
		return uuid.Nil, err
	}
	room, err := roomIn(h, number)
	if err != nil {
		return uuid.Nil, err
	}
	if err := room.Reserve(); err != nil {
		return uuid.Nil, err
	}
	return h.ID(), nil
}

// ReleaseRoom frees a room in the hotel with the given id, whatever it is
// called now, and returns the hotel's current name.
func (s *HotelStore) ReleaseRoom(ctx context.Context, hotelID uuid.UUID, number string) (name string, err error) {
	defer func() {
		logOutcome(ctx, s.logger, "release room", err,
			slog.String("hotel_id", hotelID.String()), slog.String("room", number))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.byID[hotelID]
	if !ok {
		return "", hotel.ErrNotFound
	}
	room, err := roomIn(h, number)
	if err != nil {
		return "", err
	}
	if err := room.Release(); err != nil {
		return "", err
	}
	return h.Name().String(), nil
}

func (s *HotelStore) List(_ context.Context) []*readmodel.HotelView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*readmodel.HotelView, 0, len(s.byName))
	for _, h := range s.byName {
		views = append(views, readmodel.FromHotel(h))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}

func (s *HotelStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}

func (s *HotelStore) HotelExists(_ context.Context, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byName[name]
	return ok
}

func (s *HotelStore) RoomExists(_ context.Context, name, number string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := s.room(name, number)
	return err == nil
}

func (s *HotelStore) RoomStatus(_ context.Context, name, number string) (hotel.RoomStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, err := s.room(name, number)
	if err != nil {
		return "", err
	}
	return room.Status(), nil
}

func (s *HotelStore) HotelID(_ context.Context, name string) (uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, err := s.lookup(name)
	if err != nil {
		return uuid.Nil, err
	}
	return h.ID(), nil
}

// HotelName resolves the current name of a hotel from its stable id.
func (s *HotelStore) HotelName(_ context.Context, id uuid.UUID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return h.Name().String(), true
}

func (s *HotelStore) transition(ctx context.Context, op, name, number string, apply func(*hotel.Room) error) (view *readmodel.RoomView, err error) {
	defer func() {
		logOutcome(ctx, s.logger, op, err, slog.String("hotel", name), slog.String("room", number))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.room(name, number)
	if err != nil {
		return nil, err
	}
	if err := apply(room); err != nil {
		return nil, err
	}
	rv := readmodel.FromRoom(room)
	return &rv, nil
}

// lookup and room must be called with the lock held.
func (s *HotelStore) lookup(raw string) (*hotel.Hotel, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, hotel.ErrNameEmpty
	}
	h, ok := s.byName[raw]
	if !ok {
		return nil, hotel.ErrNotFound
	}
	return h, nil
}

func (s *HotelStore) room(name, raw string) (*hotel.Room, error) {
	h, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return roomIn(h, raw)
}

func roomIn(h *hotel.Hotel, raw string) (*hotel.Room, error) {
	number, err := hotel.NewRoomNumber(raw)
	if err != nil {
		return nil, err
	}
	room, ok := h.Room(number)
	if !ok {
		return nil, hotel.ErrRoomNotFound
	}
	return room, nil
}

func (s *HotelStore) rename(h *hotel.Hotel, raw string) error {
	name, err := hotel.NewName(raw)
	if err != nil {
		return err
	}
	if _, exists := s.byName[name.String()]; exists {
		return hotel.ErrAlreadyExists
	}
	delete(s.byName, h.Name().String())
	h.Rename(name)
	s.byName[name.String()] = h
	return nil
}

func newRoom(raw string, spec RoomSpec) (*hotel.Room, error) {
	number, err := hotel.NewRoomNumber(raw)
	if err != nil {
		return nil, err
	}
	status, err := hotel.NewRoomStatus(spec.Status)
	if err != nil {
		return nil, err
	}
	roomType, err := hotel.NewRoomType(spec.Type)
	if err != nil {
		return nil, err
	}
	return hotel.NewRoom(number, status, roomType), nil
}

// patchRoom validates every supplied field before touching the room so a
// bad type never leaves a half-applied status change behind.
func patchRoom(h *hotel.Hotel, raw string, p RoomPatch) error {
	number, err := hotel.NewRoomNumber(raw)
	if err != nil {
		return err
	}
	var status hotel.RoomStatus
	if v, ok := p.Status.Get(); ok {
		if status, err = hotel.NewRoomStatus(v); err != nil {
			return err
		}
	}
	var roomType hotel.RoomType
	if v, ok := p.Type.Get(); ok {
		if roomType, err = hotel.NewRoomType(v); err != nil {
			return err
		}
	}
	room, ok := h.Room(number)
	if !ok {
		return hotel.ErrRoomNotFound
	}
	if p.Status.IsSet() {
		room.SetStatus(status)
	}
	if p.Type.IsSet() {
		room.SetType(roomType)
	}
	return nil
}

func roomTarget(number string) string {
	return "room " + number
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
