package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
)

// Response envelope: {status: "success"|"error", data?, message?, count?}.

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func SuccessCount(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "count": count, "data": data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": data})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": message})
}

// Fail translates a service error into the envelope. Internal errors keep
// their detail in debug mode only.
func Fail(c *gin.Context, err error) {
	message := err.Error()
	if apperr.KindOf(err) == apperr.KindInternal && gin.Mode() == gin.ReleaseMode {
		message = "Internal server error"
	}
	c.JSON(apperr.HTTPStatus(err), gin.H{"status": "error", "message": message})
}

func parseID(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 64)
	return uint(id)
}
