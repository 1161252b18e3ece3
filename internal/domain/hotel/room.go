package hotel

type Room struct {
	number   RoomNumber
	status   RoomStatus
	roomType RoomType
}

func NewRoom(number RoomNumber, status RoomStatus, roomType RoomType) *Room {
	return &Room{
		number:   number,
		status:   status,
		roomType: roomType,
	}
}

// Reserve and Release are the only status transitions driven by reservations.
func (r *Room) Reserve() error {
	if r.status == StatusReserved {
		return ErrRoomNotAvailable
	}
	r.status = StatusReserved
	return nil
}

func (r *Room) Release() error {
	if r.status == StatusAvailable {
		return ErrRoomNotReserved
	}
	r.status = StatusAvailable
	return nil
}

// SetStatus is a direct edit and bypasses the transition guards.
func (r *Room) SetStatus(status RoomStatus) {
	r.status = status
}

func (r *Room) SetType(roomType RoomType) {
	r.roomType = roomType
}

func (r *Room) IsAvailable() bool { return r.status == StatusAvailable }

func (r *Room) Number() RoomNumber { return r.number }
func (r *Room) Status() RoomStatus { return r.status }
func (r *Room) Type() RoomType     { return r.roomType }
