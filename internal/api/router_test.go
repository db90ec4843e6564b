package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abusaud/storefront/internal/api/handlers"
	"github.com/abusaud/storefront/internal/catalog"
	"github.com/abusaud/storefront/internal/config"
	"github.com/abusaud/storefront/internal/order"
	"github.com/abusaud/storefront/internal/repository/memory"
	"github.com/abusaud/storefront/internal/service"
	"github.com/abusaud/storefront/internal/whatsapp"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.Default()
	linker, err := whatsapp.NewLinker("", "01125933005", "20")
	require.NoError(t, err)
	svc := service.NewStorefrontService(
		cat,
		memory.NewRepositories(cat, 0, zap.NewNop()),
		order.NewFormatter("", "", linker),
		true,
		zap.NewNop(),
	)
	return NewRouter(&config.Config{Environment: "test"}, svc, zap.NewNop())
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCart(t *testing.T, r http.Handler) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/carts", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp handlers.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.CartID)
	return resp.CartID
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) handlers.CartResponse {
	t.Helper()
	var resp handlers.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCatalog(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/v1/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []handlers.ProductResponse `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "dolma-250", resp.Products[0].ID)
	assert.Equal(t, int64(250), resp.Products[0].Price)
}

func TestCartFlow(t *testing.T) {
	r := newTestRouter(t)
	id := createCart(t, r)
	base := "/v1/carts/" + id

	w := doJSON(t, r, http.MethodPost, base+"/items", gin.H{"product_id": "dolma-250"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(250), decodeCart(t, w).Total)

	w = doJSON(t, r, http.MethodPost, base+"/items", gin.H{"product_id": "dolma-250", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeCart(t, w)
	assert.Equal(t, int64(500), cart.Total)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	w = doJSON(t, r, http.MethodPut, base+"/items/pistachio-250", gin.H{"quantity": "2.9"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1100), decodeCart(t, w).Total)

	w = doJSON(t, r, http.MethodPost, base+"/items/pistachio-250/adjust", gin.H{"delta": -1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(800), decodeCart(t, w).Total)

	w = doJSON(t, r, http.MethodPut, base+"/items/dolma-250", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(300), decodeCart(t, w).Total)

	w = doJSON(t, r, http.MethodDelete, base+"/items/pistachio-250", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decodeCart(t, w)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total)
}

func TestAddUnknownProduct(t *testing.T) {
	r := newTestRouter(t)
	id := createCart(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/carts/"+id+"/items", gin.H{"product_id": "unknown-id"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/carts/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCartNotFoundAndInvalidID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/carts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/carts/6f1c2a7e-9a55-4f43-a7a0-2f6d0c1f6b11", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemValidation(t *testing.T) {
	r := newTestRouter(t)
	id := createCart(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/carts/"+id+"/items", gin.H{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAddItemQuantityBounds(t *testing.T) {
	r := newTestRouter(t)
	id := createCart(t, r)
	base := "/v1/carts/" + id

	for _, qty := range []any{math.MaxInt64, int64(math.MaxInt32) + 1, -3, "2"} {
		w := doJSON(t, r, http.MethodPost, base+"/items", gin.H{"product_id": "dolma-250", "quantity": qty})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "quantity %v", qty)
	}

	w := doJSON(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)

	w = doJSON(t, r, http.MethodPost, base+"/items", gin.H{"product_id": "dolma-250", "quantity": math.MaxInt32})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, base+"/items", gin.H{"product_id": "dolma-250", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeCart(t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, math.MaxInt32, cart.Items[0].Quantity)
	assert.Equal(t, int64(250)*math.MaxInt32, cart.Total)
}

func TestAdjustQuantityBounds(t *testing.T) {
	r := newTestRouter(t)
	id := createCart(t, r)
	base := "/v1/carts/" + id

	w := doJSON(t, r, http.MethodPost, base+"/items", gin.H{"product_id": "pistachio-250"})
	require.Equal(t, http.StatusOK, w.Code)

	for _, delta := range []any{math.MaxInt64, math.MinInt64, 0} {
		w = doJSON(t, r, http.MethodPost, base+"/items/pistachio-250/adjust", gin.H{"delta": delta})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "delta %v", delta)
	}

	w = doJSON(t, r, http.MethodPost, base+"/items/pistachio-250/adjust", gin.H{"delta": math.MaxInt32})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeCart(t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, math.MaxInt32, cart.Items[0].Quantity)

	w = doJSON(t, r, http.MethodPost, base+"/items/pistachio-250/adjust", gin.H{"delta": -math.MaxInt32})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestSetQuantityCoercion(t *testing.T) {
	r := newTestRouter(t)
	id := createCart(t, r)
	base := "/v1/carts/" + id

	w := doJSON(t, r, http.MethodPut, base+"/items/dolma-250", gin.H{"quantity": 1e300})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeCart(t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, math.MaxInt32, cart.Items[0].Quantity)

	w = doJSON(t, r, http.MethodPut, base+"/items/dolma-250", gin.H{"quantity": "abc"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)

	w = doJSON(t, r, http.MethodPut, base+"/items/dolma-250", gin.H{"quantity": -4})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCheckout(t *testing.T) {
	r := newTestRouter(t)
	id := createCart(t, r)
	base := "/v1/carts/" + id

	w := doJSON(t, r, http.MethodPost, base+"/items", gin.H{"product_id": "dolma-250", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, base+"/checkout", gin.H{
		"name":    "Sara",
		"phone":   "01001234567",
		"address": "Cairo",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(500), resp.Total)
	assert.True(t, resp.CartCleared)

	u, err := url.Parse(resp.Link)
	require.NoError(t, err)
	assert.Equal(t, "/201125933005", u.Path)
	decoded, err := url.QueryUnescape(strings.TrimPrefix(u.RawQuery, "text="))
	require.NoError(t, err)
	assert.Equal(t, resp.Message, decoded)
	assert.Contains(t, decoded, "× 2 — 500 ج.م")

	w = doJSON(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCheckoutValidation(t *testing.T) {
	r := newTestRouter(t)
	id := createCart(t, r)
	base := "/v1/carts/" + id

	w := doJSON(t, r, http.MethodPost, base+"/checkout", gin.H{"name": "Sara", "phone": "0100", "address": "Cairo"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "EMPTY_CART", body["kind"])

	w = doJSON(t, r, http.MethodPost, base+"/checkout", gin.H{"name": " ", "phone": "0100"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_CUSTOMER_FIELD", body["kind"])
	assert.Equal(t, []any{"name", "address"}, body["fields"])
}
