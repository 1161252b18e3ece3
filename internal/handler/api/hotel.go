package api

import (
	"net/http"
	"net/url"

	reqdto "hotel-registry/internal/handler/dto/request"
	resdto "hotel-registry/internal/handler/dto/response"
	"hotel-registry/internal/handler/httperr"
	"hotel-registry/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotels usecase.HotelService
}

func NewHotelHandler(hotels usecase.HotelService) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

// @Summary Create hotel
// @Description Register a hotel with optional rooms. Invalid rooms are skipped and listed in the report.
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Create hotel request"
// @Success 201 {object} resdto.CreateHotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, report, err := h.hotels.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	hotelRes, err := resdto.FromHotelView(view)
	if err == nil {
		c.Header("Location", "/api/hotels/"+url.PathEscape(hotelRes.Name))
	}
	renderJSON(c, http.StatusCreated, resdto.CreateHotelResponse{
		Hotel:  hotelRes,
		Report: resdto.FromReport(report),
	}, err)
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Param name path string true "Hotel name"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{name} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	view, err := h.hotels.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromHotelView(view)
	renderJSON(c, http.StatusOK, res, err)
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	res, err := resdto.FromHotelList(h.hotels.List(c.Request.Context()))
	renderJSON(c, http.StatusOK, res, err)
}

// @Summary Update hotel
// @Description Rename, relocate and patch rooms. Each part is applied independently; the report lists rejected ones.
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Hotel name"
// @Param request body reqdto.UpdateHotelRequest true "Update hotel request"
// @Success 200 {object} resdto.ReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{name} [patch]
func (h *HotelHandler) Update(c *gin.Context) {
	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	report, err := h.hotels.Modify(c.Request.Context(), c.Param("name"), req.ToUpdate())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReport(report))
}

// @Summary Delete hotel
// @Tags hotels
// @Security BearerAuth
// @Param name path string true "Hotel name"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{name} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	if err := h.hotels.Delete(c.Request.Context(), c.Param("name")); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add room
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Hotel name"
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{name}/rooms [post]
func (h *HotelHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.hotels.CreateRoom(c.Request.Context(), c.Param("name"), req.Number, req.ToSpec())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	renderJSON(c, http.StatusCreated, res, err)
}

// @Summary Reserve room
// @Description Flip an available room to reserved without creating a reservation
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param name path string true "Hotel name"
// @Param number path string true "Room number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{name}/rooms/{number}/reserve [post]
func (h *HotelHandler) ReserveRoom(c *gin.Context) {
	view, err := h.hotels.Reserve(c.Request.Context(), c.Param("name"), c.Param("number"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	renderJSON(c, http.StatusOK, res, err)
}

// @Summary Release room
// @Description Flip a reserved room back to available
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param name path string true "Hotel name"
// @Param number path string true "Room number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{name}/rooms/{number}/cancel [post]
func (h *HotelHandler) CancelRoom(c *gin.Context) {
	view, err := h.hotels.Cancel(c.Request.Context(), c.Param("name"), c.Param("number"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	renderJSON(c, http.StatusOK, res, err)
}
