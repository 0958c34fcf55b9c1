package controllers

import (
	"net/http"
	"strconv"

	"ticketing-service/errors"
	"ticketing-service/middleware"
	"ticketing-service/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders services.Orders
}

func NewOrderController(orders services.Orders) *OrderController {
	return &OrderController{Orders: orders}
}

// GetEventOrders lists an event's orders with optional fuzzy buyer search.
func (oc *OrderController) GetEventOrders(c *gin.Context) {
	eventID := c.Param("eventId")
	search := c.Query("search")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	resp, serr := oc.Orders.GetOrdersByEvent(c, eventID, search, page, limit)
	if serr != nil {
		c.Error(errors.New(serr.StatusCode, serr.Message, nil))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMyOrders lists the authenticated buyer's orders, newest first.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.Error(errors.ErrUnauthorized)
		return
	}
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	resp, serr := oc.Orders.GetOrdersByBuyer(c, userID, page, limit)
	if serr != nil {
		c.Error(errors.New(serr.StatusCode, serr.Message, nil))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	val := c.Query(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
