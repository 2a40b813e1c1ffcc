package handler

import (
	"net/http"

	"borgo/internal/delivery/http/response"
	"borgo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves category reference data.
type CategoryHandler struct {
	categorySvc usecase.CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler instance.
func NewCategoryHandler(categorySvc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categorySvc.Categories(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories, "")
}
