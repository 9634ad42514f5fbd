package handlers

import (
	"net/http"

	"bookmarket/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the read-side aggregates over the purchase ledger.

type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

func (h *StatsHandler) GetBuyerStatistics(c *gin.Context) {
	stats, err := h.usecase.BuyerStatistics(c.Request.Context(), c.Param("buyer_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetSellerStatistics(c *gin.Context) {
	stats, err := h.usecase.SellerStatistics(c.Request.Context(), c.Param("seller_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetPlatformStatistics(c *gin.Context) {
	stats, err := h.usecase.PlatformStatistics(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}
