package handlers

import (
	"net/http"

	request "bookmarket/internal/adapter/http/dto/request"
	response "bookmarket/internal/adapter/http/dto/response"
	"bookmarket/internal/usecase"
	"bookmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookPayload = pkg.NewDomainErrorSimple("INVALID_BOOK_INPUT", "Invalid book payload", http.StatusBadRequest)
	errInvalidBookQuery   = pkg.NewDomainErrorSimple("INVALID_BOOK_QUERY", "Invalid book query parameters", http.StatusBadRequest)
)

// BookHandler handles HTTP requests for the book catalog.

type BookHandler struct {
	usecase usecase.IBookUseCase
}

func NewBookHandler(uc usecase.IBookUseCase) *BookHandler {
	return &BookHandler{usecase: uc}
}

func (h *BookHandler) CreateBook(c *gin.Context) {
	var payload request.CreateBookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookPayload.HTTPStatus, errInvalidBookPayload.ToHTTPError())
		return
	}

	book, err := h.usecase.CreateBook(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBook(book))
}

func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBook(book))
}

func (h *BookHandler) UpdateBook(c *gin.Context) {
	var payload request.UpdateBookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookPayload.HTTPStatus, errInvalidBookPayload.ToHTTPError())
		return
	}

	book, err := h.usecase.UpdateBook(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBook(book))
}

func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.usecase.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) ListBooks(c *gin.Context) {
	var query request.BookListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidBookQuery.HTTPStatus, errInvalidBookQuery.ToHTTPError())
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		c.JSON(errInvalidBookQuery.HTTPStatus, errInvalidBookQuery.ToHTTPError())
		return
	}

	books, err := h.usecase.ListBooks(c.Request.Context(), filters)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooks(books))
}

func (h *BookHandler) ListBooksByOwner(c *gin.Context) {
	books, err := h.usecase.ListByOwner(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooks(books))
}

func (h *BookHandler) ListBookCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *BookHandler) RestockBook(c *gin.Context) {
	var payload request.RestockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookPayload.HTTPStatus, errInvalidBookPayload.ToHTTPError())
		return
	}

	book, err := h.usecase.Restock(c.Request.Context(), c.Param("id"), payload.Amount)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBook(book))
}

func (h *BookHandler) GetOwnerStatistics(c *gin.Context) {
	stats, err := h.usecase.OwnerStatistics(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}
