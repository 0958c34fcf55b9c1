package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketing-service/controllers"
	"ticketing-service/errors"
	"ticketing-service/middleware"
	"ticketing-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockOrders struct {
	eventResp *services.EventOrdersResponse
	buyerResp *services.BuyerOrdersResponse
	serr      *services.ServiceError
	gotPage   int
	gotLimit  int
	gotSearch string
}

func (m *mockOrders) GetOrdersByEvent(_ context.Context, _, search string, page, limit int) (*services.EventOrdersResponse, *services.ServiceError) {
	m.gotSearch = search
	m.gotPage = page
	m.gotLimit = limit
	return m.eventResp, m.serr
}

func (m *mockOrders) GetOrdersByBuyer(_ context.Context, _ string, page, limit int) (*services.BuyerOrdersResponse, *services.ServiceError) {
	m.gotPage = page
	m.gotLimit = limit
	return m.buyerResp, m.serr
}

func setupOrderRouter(orders services.Orders) *gin.Engine {
	r := gin.New()
	r.Use(errors.ErrorMiddleware())
	oc := controllers.NewOrderController(orders)

	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserContextKey, "65f1c0ffee0000000000bbbb")
		c.Next()
	})

	r.GET("/events/:eventId/orders", oc.GetEventOrders)
	r.GET("/orders", oc.GetMyOrders)
	return r
}

func TestGetMyOrders_ForwardsPaging(t *testing.T) {
	orders := &mockOrders{buyerResp: &services.BuyerOrdersResponse{Meta: services.MetaData{Page: 2, Limit: 3}}}
	r := setupOrderRouter(orders)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/orders?page=2&limit=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, orders.gotPage)
	assert.Equal(t, 3, orders.gotLimit)
}

func TestGetMyOrders_BadPagingFallsBack(t *testing.T) {
	orders := &mockOrders{buyerResp: &services.BuyerOrdersResponse{}}
	r := setupOrderRouter(orders)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/orders?page=abc&limit=-2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, orders.gotPage)
	assert.Equal(t, 10, orders.gotLimit)
}

func TestGetEventOrders_ForwardsSearch(t *testing.T) {
	orders := &mockOrders{eventResp: &services.EventOrdersResponse{}}
	r := setupOrderRouter(orders)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/events/"+testEventID+"/orders?search=smith", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "smith", orders.gotSearch)
}

func TestGetEventOrders_ServiceErrorPropagates(t *testing.T) {
	orders := &mockOrders{serr: &services.ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}}
	r := setupOrderRouter(orders)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/events/"+testEventID+"/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch orders")
}
