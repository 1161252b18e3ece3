package hotel

type RoomStatus string

const (
	StatusAvailable RoomStatus = "available"
	StatusReserved  RoomStatus = "reserved"
)

func (s RoomStatus) String() string {
	return string(s)
}

func (s RoomStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved:
		return true
	default:
		return false
	}
}

func NewRoomStatus(s string) (RoomStatus, error) {
	status := RoomStatus(s)
	if !status.IsValid() {
		return "", ErrRoomStatusInvalid
	}
	return status, nil
}

type RoomType string

const (
	TypeSingle RoomType = "single"
	TypeDouble RoomType = "double"
)

func (t RoomType) String() string {
	return string(t)
}

func (t RoomType) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble:
		return true
	default:
		return false
	}
}

func NewRoomType(s string) (RoomType, error) {
	roomType := RoomType(s)
	if !roomType.IsValid() {
		return "", ErrRoomTypeInvalid
	}
	return roomType, nil
}
