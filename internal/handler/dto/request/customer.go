package request

import (
	"hotel-registry/internal/pkg/patch"
	"hotel-registry/internal/usecase"
)

// Field formats are checked by the customer store so each rule keeps its
// own error; binding only rejects malformed JSON.
type CreateCustomerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r *CreateCustomerRequest) ToParams() usecase.CreateCustomerParams {
	return usecase.CreateCustomerParams{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

type UpdateCustomerRequest struct {
	Name  patch.Value[string] `json:"name,omitzero"`
	Email patch.Value[string] `json:"email,omitzero"`
	Phone patch.Value[string] `json:"phone,omitzero"`
}

func (r *UpdateCustomerRequest) ToUpdate() usecase.CustomerUpdate {
	return usecase.CustomerUpdate{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}
