package handlers

import (
	"net/http"

	request "bookmarket/internal/adapter/http/dto/request"
	response "bookmarket/internal/adapter/http/dto/response"
	"bookmarket/internal/usecase"
	"bookmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAddressPayload = pkg.NewDomainErrorSimple("INVALID_ADDRESS_INPUT", "Invalid shipping address payload", http.StatusBadRequest)

// ShippingAddressHandler handles HTTP requests for delivery addresses.

type ShippingAddressHandler struct {
	usecase usecase.IShippingAddressUseCase
}

func NewShippingAddressHandler(uc usecase.IShippingAddressUseCase) *ShippingAddressHandler {
	return &ShippingAddressHandler{usecase: uc}
}

func (h *ShippingAddressHandler) CreateAddress(c *gin.Context) {
	var payload request.CreateAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddressPayload.HTTPStatus, errInvalidAddressPayload.ToHTTPError())
		return
	}

	address, err := h.usecase.CreateAddress(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromShippingAddress(address))
}

func (h *ShippingAddressHandler) GetAddress(c *gin.Context) {
	address, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShippingAddress(address))
}

func (h *ShippingAddressHandler) UpdateAddress(c *gin.Context) {
	var payload request.UpdateAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddressPayload.HTTPStatus, errInvalidAddressPayload.ToHTTPError())
		return
	}

	address, err := h.usecase.UpdateAddress(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShippingAddress(address))
}

func (h *ShippingAddressHandler) DeleteAddress(c *gin.Context) {
	if err := h.usecase.DeleteAddress(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ShippingAddressHandler) ListAddressesByUser(c *gin.Context) {
	addresses, err := h.usecase.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShippingAddresses(addresses))
}

func (h *ShippingAddressHandler) SetDefaultAddress(c *gin.Context) {
	address, err := h.usecase.SetDefault(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShippingAddress(address))
}
