package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/domain"
	"inventory-api/internal/service"
)

const categoryNotFound = "category not found"

type createCategoryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateCategoryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}

	resp := make([]CategoryResponse, len(categories))
	for i := range categories {
		resp[i] = categoryToResponse(categories[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getCategory(c *gin.Context) {
	category, err := h.categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}
	c.JSON(http.StatusOK, categoryToResponse(*category))
}

func (h *Handler) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categories.Create(c.Request.Context(), service.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}
	c.JSON(http.StatusCreated, categoryToResponse(*category))
}

func (h *Handler) updateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categories.Update(c.Request.Context(), c.Param("id"), service.CategoryUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}
	c.JSON(http.StatusOK, categoryToResponse(*category))
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, categoryNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func categoryToResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Title:       category.Title,
		Description: category.Description,
	}
}
