package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Triarom-Engineering/pcrt-rest-api/database"
	"github.com/Triarom-Engineering/pcrt-rest-api/utils"
)

// respondLookupError maps a resolver outcome onto a status code: a
// clean miss becomes a 404 with the endpoint's error body, a gateway
// failure becomes a 500.
func respondLookupError(c *gin.Context, err error, errCode, description string) {
	var gatewayErr *database.GatewayError
	if errors.As(err, &gatewayErr) {
		utils.ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, gatewayErr)
		utils.RespondError(c, http.StatusInternalServerError, "lookup_failed", "The lookup could not be completed.")
		return
	}
	utils.RespondError(c, http.StatusNotFound, errCode, description)
}
