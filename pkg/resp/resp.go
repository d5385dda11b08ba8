package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Responses keep the {"success": ...} envelope the frontend already consumes.

func OK(c *gin.Context, data gin.H) {
	write(c, http.StatusOK, data)
}
func Created(c *gin.Context, data gin.H) {
	write(c, http.StatusCreated, data)
}
func BadRequest(c *gin.Context, msg string) {
	fail(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	fail(c, http.StatusUnauthorized, msg)
}
func Forbidden(c *gin.Context, msg string) {
	fail(c, http.StatusForbidden, msg)
}
func NotFound(c *gin.Context, msg string) {
	fail(c, http.StatusNotFound, msg)
}
func Conflict(c *gin.Context, msg string) {
	fail(c, http.StatusConflict, msg)
}
func ServerError(c *gin.Context, err error) {
	fail(c, http.StatusInternalServerError, err.Error())
}

func write(c *gin.Context, code int, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(code, body)
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "message": msg})
}
