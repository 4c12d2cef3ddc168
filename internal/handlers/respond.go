package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmora/storefront-gateway/internal/apperr"
	"github.com/velmora/storefront-gateway/internal/models"
)

// respondError maps the failure kind to a status code. Upstream error detail
// is echoed in the payload for diagnostics; tightening that is a known
// information-disclosure tradeoff.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)

	status := http.StatusInternalServerError
	if kind == apperr.Validation || kind == apperr.AuthenticityMismatch {
		status = http.StatusBadRequest
	}

	c.JSON(status, models.ErrorResponse{
		Success: false,
		Kind:    kind.String(),
		Error:   apperr.Detail(err),
	})
}
