package reservation

import "strings"

const IDLength = 6

type ID struct {
	value string
}

func NewID(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return ID{}, ErrIDEmpty
	}
	if len(s) != IDLength {
		return ID{}, ErrIDInvalid
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ID{}, ErrIDInvalid
		}
	}
	return ID{value: s}, nil
}

func (id ID) String() string { return id.value }
