//go:build unit || e2e

package builder

import (
	"hotel-registry/internal/domain/customer"
	reqdto "hotel-registry/internal/handler/dto/request"
	"hotel-registry/internal/usecase"
	"hotel-registry/internal/usecase/readmodel"
)

type CustomerBuilder struct {
	ID    string
	Name  string
	Email string
	Phone string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:    "1234",
		Name:  "Ana Lopez",
		Email: "ana.lopez@example.com",
		Phone: "6641234567",
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	id, err := customer.NewID(b.ID)
	if err != nil {
		return nil, err
	}
	name, err := customer.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	email, err := customer.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	phone, err := customer.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(id, name, email, phone), nil
}

func (b *CustomerBuilder) BuildParams() usecase.CreateCustomerParams {
	return usecase.CreateCustomerParams{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *CustomerBuilder) BuildView() *readmodel.CustomerView {
	return &readmodel.CustomerView{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}
