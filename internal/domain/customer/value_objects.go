package customer

import (
	"regexp"
	"strings"
)

const (
	IDLength    = 4
	PhoneLength = 10
)

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z\s']+$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type ID struct {
	value string
}

func NewID(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return ID{}, ErrIDEmpty
	}
	if !isDigits(s, IDLength) {
		return ID{}, ErrIDInvalid
	}
	return ID{value: s}, nil
}

func (id ID) String() string { return id.value }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	if strings.TrimSpace(s) == "" {
		return Name{}, ErrNameEmpty
	}
	if !nameRegex.MatchString(s) {
		return Name{}, ErrNameInvalid
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	if strings.TrimSpace(s) == "" {
		return Email{}, ErrEmailEmpty
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrEmailInvalid
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	if strings.TrimSpace(s) == "" {
		return Phone{}, ErrPhoneEmpty
	}
	if !isDigits(s, PhoneLength) {
		return Phone{}, ErrPhoneInvalid
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
