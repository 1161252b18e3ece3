package response

import "hotel-registry/internal/usecase"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	ExpiresIn   int64             `json:"expires_in"`
	Operator    *usecase.Operator `json:"operator"`
}

func FromLoginResult(r *usecase.LoginResult) *LoginResponse {
	op := r.Operator
	return &LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		Operator:    &op,
	}
}
