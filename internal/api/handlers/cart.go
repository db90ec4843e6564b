package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abusaud/storefront/internal/cart"
	"github.com/abusaud/storefront/internal/service"
)

// AddItemRequest represents an add-to-cart request. A missing quantity adds one.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1,max=2147483647"`
}

// SetQuantityRequest carries the raw quantity as typed in the cart form;
// it may be a JSON number or string and is coerced to a whole number
type SetQuantityRequest struct {
	Quantity json.RawMessage `json:"quantity" binding:"required"`
}

// AdjustQuantityRequest represents a +/- button press
type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required,min=-2147483647,max=2147483647"`
}

// CartItemResponse represents one cart line
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// CartResponse represents the cart state
type CartResponse struct {
	CartID string             `json:"cart_id"`
	Items  []CartItemResponse `json:"items"`
	Total  int64              `json:"total"`
}

func newCartResponse(view *service.CartView) CartResponse {
	items := make([]CartItemResponse, len(view.Lines))
	for i, line := range view.Lines {
		items[i] = CartItemResponse{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		}
	}
	return CartResponse{
		CartID: view.CartID.String(),
		Items:  items,
		Total:  view.Total,
	}
}

// HandleCreateCart handles POST /v1/carts
func HandleCreateCart(svc *service.StorefrontService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := svc.CreateCart(c.Request.Context())
		if err != nil {
			respondError(c, logger, err, "create cart")
			return
		}

		c.JSON(http.StatusCreated, CartResponse{
			CartID: cartID.String(),
			Items:  []CartItemResponse{},
		})
	}
}

// HandleGetCart handles GET /v1/carts/:id
func HandleGetCart(svc *service.StorefrontService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseCartID(c)
		if !ok {
			return
		}

		view, err := svc.GetCart(c.Request.Context(), cartID)
		if err != nil {
			respondError(c, logger, err, "get cart")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(view))
	}
}

// HandleAddItem handles POST /v1/carts/:id/items
func HandleAddItem(svc *service.StorefrontService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseCartID(c)
		if !ok {
			return
		}

		var req AddItemRequest
		if !bindJSON(c, &req) {
			return
		}

		view, err := svc.AddItem(c.Request.Context(), cartID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, logger, err, "add item")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(view))
	}
}

// HandleSetQuantity handles PUT /v1/carts/:id/items/:productId
func HandleSetQuantity(svc *service.StorefrontService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseCartID(c)
		if !ok {
			return
		}

		var req SetQuantityRequest
		if !bindJSON(c, &req) {
			return
		}
		quantity := cart.ParseQuantity(strings.Trim(string(req.Quantity), `"`))

		view, err := svc.SetQuantity(c.Request.Context(), cartID, c.Param("productId"), quantity)
		if err != nil {
			respondError(c, logger, err, "set quantity")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(view))
	}
}

// HandleAdjustQuantity handles POST /v1/carts/:id/items/:productId/adjust
func HandleAdjustQuantity(svc *service.StorefrontService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseCartID(c)
		if !ok {
			return
		}

		var req AdjustQuantityRequest
		if !bindJSON(c, &req) {
			return
		}

		view, err := svc.AdjustQuantity(c.Request.Context(), cartID, c.Param("productId"), req.Delta)
		if err != nil {
			respondError(c, logger, err, "adjust quantity")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(view))
	}
}

// HandleRemoveItem handles DELETE /v1/carts/:id/items/:productId
func HandleRemoveItem(svc *service.StorefrontService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseCartID(c)
		if !ok {
			return
		}

		view, err := svc.RemoveItem(c.Request.Context(), cartID, c.Param("productId"))
		if err != nil {
			respondError(c, logger, err, "remove item")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(view))
	}
}
