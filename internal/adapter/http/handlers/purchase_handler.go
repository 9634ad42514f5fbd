package handlers

import (
	"net/http"
	"strconv"

	request "bookmarket/internal/adapter/http/dto/request"
	response "bookmarket/internal/adapter/http/dto/response"
	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase"
	"bookmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPurchasePayload = pkg.NewDomainErrorSimple("INVALID_PURCHASE_INPUT", "Invalid purchase payload", http.StatusBadRequest)
	errInvalidPurchaseQuery   = pkg.NewDomainErrorSimple("INVALID_PURCHASE_QUERY", "Invalid purchase query parameters", http.StatusBadRequest)
)

// PurchaseHandler handles HTTP requests for the purchase ledger: placing
// orders, advancing their status and querying them.

type PurchaseHandler struct {
	usecase usecase.IPurchaseUseCase
}

func NewPurchaseHandler(uc usecase.IPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{usecase: uc}
}

func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var payload request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchasePayload.HTTPStatus, errInvalidPurchasePayload.ToHTTPError())
		return
	}

	purchase, err := h.usecase.CreatePurchase(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPurchase(purchase))
}

func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	purchase, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchase(purchase))
}

// CompletePurchase accepts an optional body with a transaction id; an empty
// body completes the purchase without one.
func (h *PurchaseHandler) CompletePurchase(c *gin.Context) {
	var payload request.CompletePurchaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPurchasePayload.HTTPStatus, errInvalidPurchasePayload.ToHTTPError())
			return
		}
	}

	purchase, err := h.usecase.CompletePurchase(c.Request.Context(), c.Param("id"), payload.TransactionID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchase(purchase))
}

func (h *PurchaseHandler) CancelPurchase(c *gin.Context) {
	purchase, err := h.usecase.CancelPurchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchase(purchase))
}

func (h *PurchaseHandler) PayPurchase(c *gin.Context) {
	purchase, err := h.usecase.PayAndComplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchase(purchase))
}

// BulkComplete is best-effort per purchase; the response reports which ids
// completed and which failed, always with HTTP 200.
func (h *PurchaseHandler) BulkComplete(c *gin.Context) {
	var payload request.BulkCompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchasePayload.HTTPStatus, errInvalidPurchasePayload.ToHTTPError())
		return
	}

	result := h.usecase.BulkComplete(c.Request.Context(), payload.PurchaseIDs)
	c.JSON(http.StatusOK, response.FromBulkCompletion(result))
}

func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	var query request.PurchaseListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPurchaseQuery.HTTPStatus, errInvalidPurchaseQuery.ToHTTPError())
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		c.JSON(errInvalidPurchaseQuery.HTTPStatus, errInvalidPurchaseQuery.ToHTTPError())
		return
	}

	purchases, err := h.usecase.ListWithFilters(c.Request.Context(), filters)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchases(purchases))
}

func (h *PurchaseHandler) ListPurchasesByBuyer(c *gin.Context) {
	purchases, err := h.usecase.ListByBuyer(c.Request.Context(), c.Param("buyer_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchases(purchases))
}

func (h *PurchaseHandler) ListPurchasesBySeller(c *gin.Context) {
	purchases, err := h.usecase.ListBySeller(c.Request.Context(), c.Param("seller_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchases(purchases))
}

func (h *PurchaseHandler) ListPurchasesByBook(c *gin.Context) {
	purchases, err := h.usecase.ListByBook(c.Request.Context(), c.Param("book_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchases(purchases))
}

func (h *PurchaseHandler) ListPurchasesByStatus(c *gin.Context) {
	purchases, err := h.usecase.ListByStatus(c.Request.Context(), entities.PurchaseStatus(c.Param("status")))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchases(purchases))
}

func (h *PurchaseHandler) ListRecentPurchases(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	purchases, err := h.usecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchases(purchases))
}
