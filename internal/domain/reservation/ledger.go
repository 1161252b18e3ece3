package reservation

// Ledger is the insertion-ordered collection of active reservations.
type Ledger struct {
	entries []*Reservation
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Len() int { return len(l.entries) }

// Find scans every entry; a non-matching entry never ends the search.
func (l *Ledger) Find(id ID) (*Reservation, bool) {
	for _, r := range l.entries {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

func (l *Ledger) Append(r *Reservation) error {
	if _, exists := l.Find(r.ID()); exists {
		return ErrAlreadyExists
	}
	l.entries = append(l.entries, r)
	return nil
}

func (l *Ledger) Remove(id ID) error {
	for i, r := range l.entries {
		if r.ID() == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (l *Ledger) Entries() []*Reservation {
	out := make([]*Reservation, len(l.entries))
	copy(out, l.entries)
	return out
}
