package response

import (
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/usecase/readmodel"
)

type FailureResponse struct {
	Target  string    `json:"target"`
	Kind    errs.Kind `json:"kind"`
	Message string    `json:"message"`
}

type ReportResponse struct {
	Applied  []string          `json:"applied"`
	Failures []FailureResponse `json:"failures"`
}

func FromReport(r *readmodel.Report) *ReportResponse {
	res := &ReportResponse{
		Applied:  []string{},
		Failures: []FailureResponse{},
	}
	if r == nil {
		return res
	}
	res.Applied = append(res.Applied, r.Applied...)
	for _, f := range r.Failures {
		res.Failures = append(res.Failures, FailureResponse{
			Target:  f.Target,
			Kind:    errs.KindOf(f.Err),
			Message: f.Err.Error(),
		})
	}
	return res
}
