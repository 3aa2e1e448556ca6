package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/service"
)

type registerRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Name:      req.Name,
		FirstName: req.FirstName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.respondError(c, err, "user not found")
		return
	}

	c.JSON(http.StatusCreated, authToResponse("User registered successfully", res))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, "user not found")
		return
	}

	c.JSON(http.StatusOK, authToResponse("Login successful", res))
}

func authToResponse(message string, res *service.AuthResult) AuthResponse {
	return AuthResponse{
		Message: message,
		Token:   res.Token,
		User: UserResponse{
			ID:        res.User.ID,
			Name:      res.User.Name,
			FirstName: res.User.FirstName,
			Email:     res.User.Email,
		},
	}
}
