//go:build e2e

package registry_test

import (
	"net/http"
	"sync"
	"testing"

	resdto "hotel-registry/internal/handler/dto/response"
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/tests/common/builder"
	"hotel-registry/tests/common/httptest"
	"hotel-registry/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	customersURL    = "/api/customers"
	hotelsURL       = "/api/hotels"
	reservationsURL = "/api/reservations"
)

type registrySuite struct {
	e2e.SharedSuite
	token string
}

func TestRegistrySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(registrySuite))
}

func (s *registrySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = s.Login()
}

// seed registers customer 1234 and hotel H1 with room 101 available.
func (s *registrySuite) seed() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, customersURL,
		builder.NewCustomerBuilder().BuildCreateRequestDTO(), s.token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, hotelsURL,
		builder.NewHotelBuilder().BuildCreateRequestDTO(), s.token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *registrySuite) roomStatus(hotelName, number string) string {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, hotelsURL+"/"+hotelName, nil, "")
	var h resdto.HotelResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &h)
	for _, r := range h.Rooms {
		if r.Number == number {
			return r.Status
		}
	}
	s.FailNow("room not listed", "%s/%s", hotelName, number)
	return ""
}

func (s *registrySuite) TestReservationLifecycle() {
	s.Run("reserve then cancel", func() {
		s.seed()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().BuildCreateRequestDTO(), s.token)
		var created resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("100000", created.ID)
		s.Require().NotNil(created.Customer)
		s.Equal("Ana Lopez", created.Customer.Name)
		s.Equal("reserved", s.roomStatus("H1", "101"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, "")
		var list []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Len(list, 1)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, reservationsURL+"/100000", nil, s.token)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
		s.Equal("available", s.roomStatus("H1", "101"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, reservationsURL+"/100000", nil, s.token)
		httptest.AssertErrorKind(s.T(), w, http.StatusNotFound, string(errs.KindNotFound))
	})

	s.Run("second reservation of the same room is rejected", func() {
		s.seed()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().BuildCreateRequestDTO(), s.token)
		s.Require().Equal(http.StatusCreated, w.Code)

		second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ReservationID = "200000" })
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, second.BuildCreateRequestDTO(), s.token)
		httptest.AssertErrorKind(s.T(), w, http.StatusConflict, string(errs.KindConflict))
	})

	s.Run("rename keeps the reservation", func() {
		s.seed()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().BuildCreateRequestDTO(), s.token)
		s.Require().Equal(http.StatusCreated, w.Code)

		w = httptest.PerformRawRequest(s.T(), s.Router, http.MethodPatch, hotelsURL+"/H1", `{"name":"H2"}`, s.token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/100000", nil, "")
		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("H2", got.HotelName)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, reservationsURL+"/100000", nil, s.token)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
		s.Equal("available", s.roomStatus("H2", "101"))
	})

	s.Run("direct release leaves the reservation stuck", func() {
		s.seed()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().BuildCreateRequestDTO(), s.token)
		s.Require().Equal(http.StatusCreated, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, hotelsURL+"/H1/rooms/101/cancel", nil, s.token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, reservationsURL+"/100000", nil, s.token)
		httptest.AssertErrorKind(s.T(), w, http.StatusConflict, string(errs.KindConflict))
	})

	s.Run("concurrent reservations of one room", func() {
		s.seed()
		ids := []string{"100001", "100002", "100003", "100004", "100005", "100006", "100007", "100008"}

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			code = map[int]int{}
		)
		for _, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ReservationID = id })
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req.BuildCreateRequestDTO(), s.token)
				mu.Lock()
				code[w.Code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		s.Equal(1, code[http.StatusCreated])
		s.Equal(len(ids)-1, code[http.StatusConflict])
	})
}

func (s *registrySuite) TestHotelModify() {
	s.Run("partial room patch", func() {
		s.seed()
		body := `{"location":"Rosarito","rooms":{"101":{"type":"double"},"102":{"status":"reserved"},"5000":{"type":"single"}}}`
		w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPatch, hotelsURL+"/H1", body, s.token)

		var report resdto.ReportResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &report)
		s.Equal([]string{"location", "room 101"}, report.Applied)
		s.Require().Len(report.Failures, 2)
		s.Equal("room 102", report.Failures[0].Target)
		s.Equal(errs.KindNotFound, report.Failures[0].Kind)
		s.Equal("room 5000", report.Failures[1].Target)
		s.Equal(errs.KindValidation, report.Failures[1].Kind)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, hotelsURL+"/H1", nil, "")
		var h resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &h)
		s.Equal("Rosarito", h.Location)
		s.Equal([]resdto.RoomResponse{{Number: "101", Status: "available", Type: "double"}}, h.Rooms)
	})
}

func (s *registrySuite) TestCustomerRoundTrip() {
	s.Run("create, list, delete", func() {
		s.seed()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL, nil, "")
		var list []resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Len(list, 1)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, customersURL,
			builder.NewCustomerBuilder().BuildCreateRequestDTO(), s.token)
		httptest.AssertErrorKind(s.T(), w, http.StatusConflict, string(errs.KindConflict))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, customersURL+"/1234", nil, s.token)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL+"/1234", nil, "")
		httptest.AssertErrorKind(s.T(), w, http.StatusNotFound, string(errs.KindNotFound))
	})

	s.Run("mutations require a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, customersURL,
			builder.NewCustomerBuilder().BuildCreateRequestDTO(), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
