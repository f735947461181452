package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /users?role=developer
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(model.Role(c.Query("role")))
	if err != nil {
		Fail(c, err)
		return
	}
	SuccessCount(c, len(users), users)
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// PATCH /users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req struct {
		Role model.Role `json:"role" binding:"required,oneof=user admin client developer manager"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "role is required")
		return
	}

	user, err := h.userService.UpdateRole(parseID(c.Param("id")), req.Role)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "success", "data": user, "message": "Role updated successfully"})
}
