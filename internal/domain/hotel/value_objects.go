package hotel

import (
	"regexp"
	"strings"
)

const RoomNumberLength = 3

var locationRegex = regexp.MustCompile(`^[A-Za-z\s']+$`)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	if strings.TrimSpace(s) == "" {
		return Name{}, ErrNameEmpty
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	if strings.TrimSpace(s) == "" {
		return Location{}, ErrLocationEmpty
	}
	if !locationRegex.MatchString(s) {
		return Location{}, ErrLocationInvalid
	}
	return Location{value: s}, nil
}

func (l Location) String() string { return l.value }

// RoomNumber is unique within a hotel only.
type RoomNumber struct {
	value string
}

func NewRoomNumber(s string) (RoomNumber, error) {
	if len(s) != RoomNumberLength {
		return RoomNumber{}, ErrRoomNumberInvalid
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return RoomNumber{}, ErrRoomNumberInvalid
		}
	}
	return RoomNumber{value: s}, nil
}

func (n RoomNumber) String() string { return n.value }
