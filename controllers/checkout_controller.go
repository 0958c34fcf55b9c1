package controllers

import (
	"net/http"

	"ticketing-service/errors"
	"ticketing-service/middleware"
	"ticketing-service/models"
	"ticketing-service/repository"
	"ticketing-service/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type CheckoutController struct {
	Checkout services.Checkout
	Events   repository.EventRepository
}

func NewCheckoutController(checkout services.Checkout, events repository.EventRepository) *CheckoutController {
	return &CheckoutController{Checkout: checkout, Events: events}
}

// PurchaseTicket starts the checkout for the authenticated buyer and
// redirects the browser to the hosted payment page.
func (cc *CheckoutController) PurchaseTicket(c *gin.Context) {
	eventID := c.Param("eventId")
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.Error(errors.ErrUnauthorized)
		return
	}

	sessionURL, serr := cc.Checkout.BeginCheckout(c, eventID, userID)
	if serr != nil {
		c.Error(errors.New(serr.StatusCode, serr.Message, nil))
		return
	}

	c.Redirect(http.StatusSeeOther, sessionURL)
}

// GetEvent serves the event detail page the payment provider redirects back
// to. When a success/cancel marker is present the redirect outcome is
// handled once, then the browser is sent back to the clean detail URL so a
// reload cannot replay the side effects.
func (cc *CheckoutController) GetEvent(c *gin.Context) {
	eventID := c.Param("eventId")

	_, hasSuccess := c.GetQuery("success")
	_, hasCancel := c.GetQuery("cancel")
	if !hasCancel {
		_, hasCancel = c.GetQuery("canceled")
	}

	if hasSuccess || hasCancel {
		userID, err := middleware.GetUserID(c)
		if err != nil {
			c.Error(errors.ErrUnauthorized)
			return
		}

		outcome := services.CheckoutOutcome{
			EventID:  eventID,
			BuyerID:  userID,
			Success:  hasSuccess,
			Canceled: hasCancel,
		}
		if _, serr := cc.Checkout.CompleteCheckout(c, outcome); serr != nil {
			c.Error(errors.New(serr.StatusCode, serr.Message, nil))
			return
		}

		c.Redirect(http.StatusSeeOther, "/events/"+eventID)
		return
	}

	event, err := cc.Events.FindByID(c, eventID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.Error(errors.ErrEventNotFound)
			return
		}
		c.Error(errors.New(http.StatusBadRequest, "Invalid event ID", err))
		return
	}

	c.JSON(http.StatusOK, eventResponse(event))
}

func eventResponse(event *models.Event) gin.H {
	return gin.H{"event": event}
}
