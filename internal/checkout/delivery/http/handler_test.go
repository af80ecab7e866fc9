package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartHttp "github.com/stridewear/storefront/internal/cart/delivery/http"
	cartRepo "github.com/stridewear/storefront/internal/cart/repository"
	catalogDomain "github.com/stridewear/storefront/internal/catalog/domain"
	"github.com/stridewear/storefront/internal/checkout/domain"
	checkoutRepo "github.com/stridewear/storefront/internal/checkout/repository"
)

// The handler registers Prometheus collectors in its constructor, so the
// test router and session store are built exactly once for the package.
var (
	testSessions *cartRepo.MemorySessionRepository
	testRouter   *mux.Router
)

func init() {
	testSessions = cartRepo.NewMemorySessionRepository(time.Hour, time.Hour)
	orders := checkoutRepo.NewMemoryOrderRepository()
	rules := domain.NewRules(map[string]int64{"WELCOME200": 200})
	pricing := domain.PricingConfig{
		PlatformFee:           20,
		FreeShippingThreshold: 1000,
		ShippingFlatFee:       50,
		OrderDiscountBps:      0,
	}

	handler := NewCheckoutHandler(testSessions, orders, rules, pricing)
	testRouter = mux.NewRouter()
	handler.RegisterRoutes(testRouter)
}

var runner = catalogDomain.Product{
	ID: 1, Name: "Air Trail Runner", Brand: "Nike", Category: "Running",
	Gender: catalogDomain.GenderMen, Price: 1000, Stock: 10,
}

func doRequest(t *testing.T, method, target, sessionID, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if sessionID != "" {
		req.Header.Set(cartHttp.SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

// sessionWithItems seeds a session holding the given quantity of the
// fixture runner through the repository, the way the cart commands do.
func sessionWithItems(t *testing.T, quantity int) string {
	t.Helper()

	session := testSessions.Create()

	if quantity > 0 {
		err := testSessions.Mutate(session.ID, func(s *cartRepo.Session) {
			s.Cart.Add(runner, quantity, "9")
		})
		require.NoError(t, err)
	}
	return session.ID
}

func TestGetSummaryEmptyCart(t *testing.T) {
	id := sessionWithItems(t, 0)

	rec, resp := doRequest(t, http.MethodGet, "/api/checkout/summary", id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	summary := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), summary["subtotal"])
	assert.Equal(t, float64(0), summary["total"])
	assert.Equal(t, float64(0), summary["platform_fee"])
}

func TestGetSummary(t *testing.T) {
	id := sessionWithItems(t, 2)

	rec, resp := doRequest(t, http.MethodGet, "/api/checkout/summary", id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// 2000 subtotal + 20 fee, free shipping above 1000
	summary := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(2000), summary["subtotal"])
	assert.Equal(t, float64(20), summary["platform_fee"])
	assert.Equal(t, float64(0), summary["shipping"])
	assert.Equal(t, float64(2020), summary["total"])
}

func TestApplyCoupon(t *testing.T) {
	id := sessionWithItems(t, 2)

	rec, resp := doRequest(t, http.MethodPost, "/api/checkout/coupon", id, `{"code":"WELCOME200"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	applied := resp.Data.(map[string]interface{})
	assert.Equal(t, "WELCOME200", applied["code"])
	assert.Equal(t, float64(200), applied["discount"])

	_, resp = doRequest(t, http.MethodGet, "/api/checkout/summary", id, "")
	summary := resp.Data.(map[string]interface{})
	assert.Equal(t, "WELCOME200", summary["coupon_code"])
	assert.Equal(t, float64(1820), summary["total"])
}

func TestApplyCouponInvalidCode(t *testing.T) {
	id := sessionWithItems(t, 1)

	rec, resp := doRequest(t, http.MethodPost, "/api/checkout/coupon", id, `{"code":"NOPE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid coupon code", resp.Error)
}

func TestRemoveCoupon(t *testing.T) {
	id := sessionWithItems(t, 2)

	doRequest(t, http.MethodPost, "/api/checkout/coupon", id, `{"code":"WELCOME200"}`)

	rec, _ := doRequest(t, http.MethodDelete, "/api/checkout/coupon", id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, resp := doRequest(t, http.MethodGet, "/api/checkout/summary", id, "")
	summary := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), summary["coupon_discount"])
	assert.Equal(t, float64(2020), summary["total"])
}

func TestPlaceOrder(t *testing.T) {
	id := sessionWithItems(t, 2)
	doRequest(t, http.MethodPost, "/api/checkout/coupon", id, `{"code":"WELCOME200"}`)

	rec, resp := doRequest(t, http.MethodPost, "/api/checkout/orders", id, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, resp.Success)

	order := resp.Data.(map[string]interface{})
	orderID := order["id"].(string)
	require.NotEmpty(t, orderID)
	assert.Equal(t, float64(1820), order["total"])
	assert.Equal(t, "WELCOME200", order["coupon_code"])

	// cart and coupon are consumed by the order
	_, resp = doRequest(t, http.MethodGet, "/api/checkout/summary", id, "")
	summary := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), summary["subtotal"])

	// the order is retrievable by its placing session
	rec, resp = doRequest(t, http.MethodGet, "/api/checkout/orders/"+orderID, id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := resp.Data.(map[string]interface{})
	assert.Equal(t, orderID, fetched["id"])

	rec, resp = doRequest(t, http.MethodGet, "/api/checkout/orders", id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	listing := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), listing["total"])
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	id := sessionWithItems(t, 0)

	rec, resp := doRequest(t, http.MethodPost, "/api/checkout/orders", id, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Cart is empty", resp.Error)
}

func TestGetOrderScopedToSession(t *testing.T) {
	id := sessionWithItems(t, 1)

	_, resp := doRequest(t, http.MethodPost, "/api/checkout/orders", id, "")
	orderID := resp.Data.(map[string]interface{})["id"].(string)

	other := sessionWithItems(t, 0)
	rec, _ := doRequest(t, http.MethodGet, "/api/checkout/orders/"+orderID, other, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
