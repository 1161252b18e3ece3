package readmodel

import "hotel-registry/internal/domain/customer"

type CustomerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func FromCustomer(c *customer.Customer) *CustomerView {
	return &CustomerView{
		ID:    c.ID().String(),
		Name:  c.Name().String(),
		Email: c.Email().String(),
		Phone: c.Phone().String(),
	}
}
