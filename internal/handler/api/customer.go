package api

import (
	"net/http"

	reqdto "hotel-registry/internal/handler/dto/request"
	resdto "hotel-registry/internal/handler/dto/response"
	"hotel-registry/internal/handler/httperr"
	"hotel-registry/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customers usecase.CustomerService
}

func NewCustomerHandler(customers usecase.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// @Summary Create customer
// @Description Register a customer with a 4 digit id
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.customers.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromCustomerView(view)
	if err == nil {
		c.Header("Location", "/api/customers/"+res.ID)
	}
	renderJSON(c, http.StatusCreated, res, err)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	view, err := h.customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromCustomerView(view)
	renderJSON(c, http.StatusOK, res, err)
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	res, err := resdto.FromCustomerList(h.customers.List(c.Request.Context()))
	renderJSON(c, http.StatusOK, res, err)
}

// @Summary Update customer
// @Description Apply any subset of name, email and phone. Fields are applied independently; the report lists rejected ones.
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Update customer request"
// @Success 200 {object} resdto.ReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	report, err := h.customers.Modify(c.Request.Context(), c.Param("id"), req.ToUpdate())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReport(report))
}

// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
