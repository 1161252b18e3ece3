package api

import (
	"net/http"

	reqdto "hotel-registry/internal/handler/dto/request"
	resdto "hotel-registry/internal/handler/dto/response"
	"hotel-registry/internal/handler/httperr"
	"hotel-registry/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservations usecase.ReservationService
}

func NewReservationHandler(reservations usecase.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// @Summary Create reservation
// @Description Reserve an available room for an existing customer
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.reservations.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err == nil {
		c.Header("Location", "/api/reservations/"+res.ID)
	}
	renderJSON(c, http.StatusCreated, res, err)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.reservations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	renderJSON(c, http.StatusOK, res, err)
}

// @Summary List reservations
// @Description Active reservations in the order they were made
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	res, err := resdto.FromReservationList(h.reservations.List(c.Request.Context()))
	renderJSON(c, http.StatusOK, res, err)
}

// @Summary Cancel reservation
// @Description Release the room and remove the reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	view, err := h.reservations.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	renderJSON(c, http.StatusOK, res, err)
}
