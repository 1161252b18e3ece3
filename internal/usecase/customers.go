package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"hotel-registry/internal/domain/customer"
	"hotel-registry/internal/usecase/readmodel"
)

// CustomerStore owns every customer record. All methods hold the store lock
// for their full duration.
type CustomerStore struct {
	mu        sync.RWMutex
	customers map[string]*customer.Customer
	logger    *slog.Logger
}

func NewCustomerStore(logger *slog.Logger) *CustomerStore {
	return &CustomerStore{
		customers: make(map[string]*customer.Customer),
		logger:    logger.With("component", "customers"),
	}
}

func (s *CustomerStore) Create(ctx context.Context, params CreateCustomerParams) (view *readmodel.CustomerView, err error) {
	defer func() { logOutcome(ctx, s.logger, "create customer", err, slog.String("customer_id", params.ID)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	// duplicate check precedes the format check
	if strings.TrimSpace(params.ID) == "" {
		return nil, customer.ErrIDEmpty
	}
	if _, exists := s.customers[params.ID]; exists {
		return nil, customer.ErrAlreadyExists
	}
	id, err := customer.NewID(params.ID)
	if err != nil {
		return nil, err
	}
	name, err := customer.NewName(params.Name)
	if err != nil {
		return nil, err
	}
	email, err := customer.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	phone, err := customer.NewPhone(params.Phone)
	if err != nil {
		return nil, err
	}

	c := customer.NewCustomer(id, name, email, phone)
	s.customers[id.String()] = c
	return readmodel.FromCustomer(c), nil
}

func (s *CustomerStore) Delete(ctx context.Context, id string) (err error) {
	defer func() { logOutcome(ctx, s.logger, "delete customer", err, slog.String("customer_id", id)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.lookup(id)
	if err != nil {
		return err
	}
	delete(s.customers, c.ID().String())
	return nil
}

func (s *CustomerStore) Get(ctx context.Context, id string) (*readmodel.CustomerView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.lookup(id)
	if err != nil {
		logOutcome(ctx, s.logger, "get customer", err, slog.String("customer_id", id))
		return nil, err
	}
	return readmodel.FromCustomer(c), nil
}

// Modify applies each present field on its own. A rejected field is recorded
// in the report and never blocks the others.
func (s *CustomerStore) Modify(ctx context.Context, id string, update CustomerUpdate) (report *readmodel.Report, err error) {
	defer func() { logReport(ctx, s.logger, "modify customer", report, err, slog.String("customer_id", id)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	report = &readmodel.Report{}
	if v, ok := update.Name.Get(); ok {
		applyField(report, "name", func() error {
			name, err := customer.NewName(v)
			if err != nil {
				return err
			}
			return c.Rename(name)
		})
	}
	if v, ok := update.Email.Get(); ok {
		applyField(report, "email", func() error {
			email, err := customer.NewEmail(v)
			if err != nil {
				return err
			}
			return c.ChangeEmail(email)
		})
	}
	if v, ok := update.Phone.Get(); ok {
		applyField(report, "phone", func() error {
			phone, err := customer.NewPhone(v)
			if err != nil {
				return err
			}
			return c.ChangePhone(phone)
		})
	}
	return report, nil
}

// Exists takes the raw id so the coordinator can ask before validating format.
func (s *CustomerStore) Exists(_ context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.customers[id]
	return ok
}

func (s *CustomerStore) List(_ context.Context) []*readmodel.CustomerView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*readmodel.CustomerView, 0, len(s.customers))
	for _, c := range s.customers {
		views = append(views, readmodel.FromCustomer(c))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

func (s *CustomerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// lookup must be called with the lock held.
func (s *CustomerStore) lookup(raw string) (*customer.Customer, error) {
	id, err := customer.NewID(raw)
	if err != nil {
		return nil, err
	}
	c, ok := s.customers[id.String()]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return c, nil
}

func applyField(report *readmodel.Report, target string, apply func() error) {
	if err := apply(); err != nil {
		report.Fail(target, err)
		return
	}
	report.Apply(target)
}
