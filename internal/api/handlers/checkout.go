package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abusaud/storefront/internal/domain"
	"github.com/abusaud/storefront/internal/service"
)

// CheckoutRequest carries the checkout form fields. Emptiness is checked by
// the order formatter so the response names every missing field.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CheckoutResponse represents a successful checkout
type CheckoutResponse struct {
	CartID      string             `json:"cart_id"`
	Link        string             `json:"link"`
	Message     string             `json:"message"`
	Total       int64              `json:"total"`
	Items       []CartItemResponse `json:"items"`
	CartCleared bool               `json:"cart_cleared"`
}

// HandleCheckout handles POST /v1/carts/:id/checkout
func HandleCheckout(svc *service.StorefrontService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseCartID(c)
		if !ok {
			return
		}

		var req CheckoutRequest
		if !bindJSON(c, &req) {
			return
		}

		result, err := svc.Checkout(c.Request.Context(), cartID, domain.CustomerInfo{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			respondError(c, logger, err, "checkout")
			return
		}

		items := newCartResponse(&service.CartView{CartID: cartID, Lines: result.Lines}).Items
		c.JSON(http.StatusOK, CheckoutResponse{
			CartID:      cartID.String(),
			Link:        result.Link,
			Message:     result.Message,
			Total:       result.Total,
			Items:       items,
			CartCleared: result.Cleared,
		})
	}
}
