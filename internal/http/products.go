package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/domain"
	"inventory-api/internal/service"
)

const productNotFound = "product not found"

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CategoryID  string   `json:"categoryId" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"categoryId"`
	Price       *float64 `json:"price"`
}

// ProductResponse is a product as written, with the raw category id.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  string  `json:"categoryId"`
	Price       float64 `json:"price"`
}

// CategoryRef is the resolved category of a product. Title is empty when
// the category no longer exists and ID is the stale reference.
type CategoryRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// ProductDetailResponse is a product with its category resolved.
type ProductDetailResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CategoryID  CategoryRef `json:"categoryId"`
	Price       float64     `json:"price"`
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, productNotFound)
		return
	}

	resp := make([]ProductDetailResponse, len(products))
	for i := range products {
		resp[i] = productViewToResponse(products[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, productViewToResponse(*product))
}

func (h *Handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.products.Create(c.Request.Context(), service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       *req.Price,
	})
	if err != nil {
		h.respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusCreated, productToResponse(*product))
}

func (h *Handler) updateProduct(c *gin.Context) {
	var req updateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), service.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
	})
	if err != nil {
		h.respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, productViewToResponse(*product))
}

func (h *Handler) deleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func productToResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		CategoryID:  product.CategoryID,
		Price:       product.Price,
	}
}

func productViewToResponse(view domain.ProductView) ProductDetailResponse {
	resp := ProductDetailResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		CategoryID:  CategoryRef{ID: view.CategoryID},
		Price:       view.Price,
	}
	if view.Category != nil {
		resp.CategoryID.Title = view.Category.Title
	}
	return resp
}
