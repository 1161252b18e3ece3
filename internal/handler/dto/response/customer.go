package response

import (
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func FromCustomerView(v *readmodel.CustomerView) (*CustomerResponse, error) {
	var res CustomerResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "map customer view")
	}
	return &res, nil
}

func FromCustomerList(views []*readmodel.CustomerView) ([]*CustomerResponse, error) {
	res := make([]*CustomerResponse, len(views))
	for i, v := range views {
		customer, err := FromCustomerView(v)
		if err != nil {
			return nil, err
		}
		res[i] = customer
	}
	return res, nil
}
