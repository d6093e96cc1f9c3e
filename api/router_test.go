package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/JartigaRox/000171124-practica10-seccion1/internal/customers"
	"github.com/JartigaRox/000171124-practica10-seccion1/internal/sales"
)

func newTestRouter(t *testing.T, roster ...*customers.Customer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	customerStorage := customers.NewLocalStorage()
	for _, c := range roster {
		customerStorage.Put(c)
	}

	logger := zaptest.NewLogger(t)
	customerService := customers.NewService(customerStorage, logger)
	salesService := sales.NewService(sales.NewLocalStorage(customerStorage), customerService, logger)

	router := gin.New()
	InitRoutesWithServices(router, customerService, salesService, logger)
	return router
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewBuffer(b)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestCreateSale_Endpoint(t *testing.T) {
	router := newTestRouter(t, &customers.Customer{ID: 1, Code: "C1", Name: "Acme"})

	t.Run("created", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/sales", map[string]any{
			"amount":      100,
			"id_customer": 1,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, true, envelope["success"])

		data := envelope["data"].(map[string]any)
		assert.Equal(t, 100.0, data["amount"])
		assert.Equal(t, 1.0, data["id_customer"])
		assert.NotEmpty(t, data["created_at"])
		assert.NotZero(t, data["id"])
	})

	t.Run("negative amount", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/sales", map[string]any{
			"amount":      -5,
			"id_customer": 1,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, false, envelope["success"])
		assert.Contains(t, envelope["message"], "positive")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/sales", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Contains(t, envelope["message"], "required")
	})

	t.Run("unknown customer", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/sales", map[string]any{
			"amount":      50,
			"id_customer": 999,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, false, envelope["success"])
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewBufferString(`{"amount": "abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListSales_Endpoint(t *testing.T) {
	router := newTestRouter(t,
		&customers.Customer{ID: 1, Code: "C1", Name: "Acme"},
		&customers.Customer{ID: 2, Code: "C2", Name: "Globex"},
	)

	for _, body := range []map[string]any{
		{"amount": 30, "id_customer": 1},
		{"amount": 70, "id_customer": 2},
	} {
		w := doRequest(router, http.MethodPost, "/api/sales", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(router, http.MethodGet, "/api/sales", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, 2.0, envelope["count"])

	rows := envelope["data"].([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	assert.NotEmpty(t, first["customer_name"])
	assert.NotEmpty(t, first["customer_code"])
}

func TestSalesReport_Endpoint(t *testing.T) {
	router := newTestRouter(t,
		&customers.Customer{ID: 1, Code: "C1", Name: "Acme"},
		&customers.Customer{ID: 2, Code: "C2", Name: "Globex"},
	)

	t.Run("empty report", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/sales/report", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		assert.Equal(t, true, envelope["success"])
		assert.Empty(t, envelope["data"])
	})

	for _, body := range []map[string]any{
		{"amount": 25, "id_customer": 1},
		{"amount": 75, "id_customer": 2},
	} {
		w := doRequest(router, http.MethodPost, "/api/sales", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("two customers", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/sales/report", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		rows := envelope["data"].([]any)
		require.Len(t, rows, 2)

		var percentageSum float64
		for _, r := range rows {
			row := r.(map[string]any)
			percentageSum += row["percentage"].(float64)
		}
		assert.InDelta(t, 100.0, percentageSum, 1e-9)
	})
}

func TestCustomerEndpoints(t *testing.T) {
	router := newTestRouter(t,
		&customers.Customer{ID: 1, Code: "C1", Name: "Acme", Address: "123 Main St", Phone: "555-0100"},
		&customers.Customer{ID: 2, Code: "C2", Name: "Globex"},
	)

	t.Run("list", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/customers", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, 2.0, envelope["count"])
	})

	t.Run("get by id", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/customers/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		assert.Equal(t, "Acme", data["name"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/customers/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/customers/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("search by code", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/customers/search?code=C2", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		assert.Equal(t, "Globex", data["name"])
	})

	t.Run("search without code", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/customers/search", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("search unknown code", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/customers/search?code=NOPE", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthAndNoRoute(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
