package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body shape every endpoint shares:
// a short machine-readable code plus a human description.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

func RespondError(c *gin.Context, code int, errCode, description string) {
	c.JSON(code, ErrorResponse{
		Error:       errCode,
		Description: description,
	})
}
