package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abusaud/storefront/pkg/errors"
)

// respondError maps service errors onto HTTP responses
func respondError(c *gin.Context, logger *zap.Logger, err error, action string) {
	var notFound *errors.ErrNotFound
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Resource + " not found"})
		return
	}

	var unknown *errors.ErrUnknownProduct
	if errors.As(err, &unknown) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "product not found",
			"product_id": unknown.ProductID,
		})
		return
	}

	var invalid *errors.ValidationError
	if errors.As(err, &invalid) {
		body := gin.H{
			"error": "validation failed",
			"kind":  invalid.Kind,
		}
		if len(invalid.Fields) > 0 {
			body["fields"] = invalid.Fields
		}
		c.JSON(http.StatusUnprocessableEntity, body)
		return
	}

	logger.Error("Failed to "+action, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
}

func parseCartID(c *gin.Context) (uuid.UUID, bool) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart ID"})
		return uuid.Nil, false
	}
	return cartID, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": err.Error(),
		})
		return false
	}
	return true
}
