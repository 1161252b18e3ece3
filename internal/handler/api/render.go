package api

import (
	"net/http"

	"hotel-registry/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// renderJSON writes body with status, or a masked 500 if building body failed.
func renderJSON(c *gin.Context, status int, body any, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, body)
}
