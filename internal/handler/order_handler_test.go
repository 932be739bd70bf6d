package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-service/internal/handler"
	"storefront-service/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	id  string
	err error

	inserted []model.Order
}

func (f *fakeOrderStore) Insert(ctx context.Context, order model.Order) (string, error) {
	f.inserted = append(f.inserted, order)
	return f.id, f.err
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func postOrderContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validOrder = `{
	"name": "Ada",
	"email": "ada@example.com",
	"address": "1 Engine St",
	"items": [
		{"product_id": "p1", "title": "Whey", "price": 10, "quantity": 2},
		{"product_id": "p2", "title": "Gummies", "price": 5, "quantity": 3}
	]
}`

func TestCreateOrder(t *testing.T) {
	orders := &fakeOrderStore{id: "665f1f77bcf86cd799439011"}
	h := handler.NewOrderHandler(orders)
	c, rec := postOrderContext(t, validOrder)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "665f1f77bcf86cd799439011", resp["id"])
	assert.Equal(t, 35.0, resp["total"])
	assert.Equal(t, "received", resp["status"])

	require.Len(t, orders.inserted, 1)
	assert.Equal(t, 35.0, orders.inserted[0].Total)
	assert.Len(t, orders.inserted[0].Items, 2)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	orders := &fakeOrderStore{}
	h := handler.NewOrderHandler(orders)
	c, rec := postOrderContext(t, `{
		"name": "Ada", "email": "ada@example.com", "address": "1 Engine St",
		"items": [{"product_id": "p1", "title": "Whey", "price": 10, "quantity": 0}]
	}`)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, orders.inserted, "rejected order must not reach storage")
}

func TestCreateOrderRejectsMissingRequiredFields(t *testing.T) {
	orders := &fakeOrderStore{}
	h := handler.NewOrderHandler(orders)
	c, rec := postOrderContext(t, `{"name": "Ada", "address": "1 Engine St", "items": []}`)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, orders.inserted)
}

func TestCreateOrderRejectsMissingItems(t *testing.T) {
	orders := &fakeOrderStore{}
	h := handler.NewOrderHandler(orders)
	c, rec := postOrderContext(t, `{"name": "Ada", "email": "ada@example.com", "address": "1 Engine St"}`)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, orders.inserted, "order without items must not reach storage")
}

func TestCreateOrderAcceptsEmptyItems(t *testing.T) {
	orders := &fakeOrderStore{id: "665f1f77bcf86cd799439011"}
	h := handler.NewOrderHandler(orders)
	c, rec := postOrderContext(t, `{
		"name": "Ada", "email": "ada@example.com", "address": "1 Engine St", "items": []
	}`)

	require.NoError(t, h.Create(c))

	// An explicitly empty item list is not rejected; the total is zero.
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, orders.inserted, 1)
	assert.Equal(t, 0.0, orders.inserted[0].Total)
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	h := handler.NewOrderHandler(&fakeOrderStore{})
	c, rec := postOrderContext(t, `{"name": `)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateOrderDatabaseUnavailable(t *testing.T) {
	h := handler.NewOrderHandler(nil)
	c, rec := postOrderContext(t, validOrder)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database not available")
}

func TestCreateOrderInsertFailure(t *testing.T) {
	h := handler.NewOrderHandler(&fakeOrderStore{err: errors.New("write concern failed")})
	c, rec := postOrderContext(t, validOrder)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to create order")
}
