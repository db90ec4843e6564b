package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abusaud/storefront/internal/service"
)

// ProductResponse represents a catalog entry
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	ImageRef    string `json:"image_ref,omitempty"`
}

// HandleListCatalog handles GET /v1/catalog
func HandleListCatalog(svc *service.StorefrontService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := svc.Products()

		resp := make([]ProductResponse, len(products))
		for i, p := range products {
			resp[i] = ProductResponse{
				ID:          p.ID,
				Name:        p.Name,
				Price:       p.Price,
				Description: p.Description,
				ImageRef:    p.ImageRef,
			}
		}

		c.JSON(http.StatusOK, gin.H{"products": resp})
	}
}
