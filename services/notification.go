package services

import (
	"bytes"
	"context"
	"html/template"
	"net/url"

	"ticketing-service/logger"
	"ticketing-service/models"
	"ticketing-service/sender"

	"go.uber.org/zap"
)

const confirmationSubject = "Order Confirmation"

// The QR image is rendered by a third-party endpoint, parameterized by the
// order id.
const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data="

const confirmationTemplate = `<html>
  <body>
    <p>You have a new order!</p>
    <p>Order <strong>{{.OrderID}}</strong> — present this code at the door:</p>
    <img src="{{.QRCodeURL}}" alt="qrcode"/>
  </body>
</html>`

// QRCodeURL builds the QR image URL for an order.
func QRCodeURL(orderID string) string {
	return qrEndpoint + url.QueryEscape(orderID)
}

// OrderMailer renders and dispatches confirmation emails. Every message goes
// to the single configured recipient, not the buyer: inherited behavior from
// the source system, kept deliberately (see DESIGN.md).
type OrderMailer struct {
	sender    sender.EmailSender
	recipient string
	tmpl      *template.Template
}

func NewOrderMailer(s sender.EmailSender, recipient string) (*OrderMailer, error) {
	tmpl, err := template.New("order_confirmation").Parse(confirmationTemplate)
	if err != nil {
		return nil, err
	}
	return &OrderMailer{
		sender:    s,
		recipient: recipient,
		tmpl:      tmpl,
	}, nil
}

// SendConfirmation verifies the transport and sends one confirmation email.
// Verify and send failures are logged and absorbed; an email failure never
// surfaces out of the checkout flow. Returns whether the send went through.
func (m *OrderMailer) SendConfirmation(ctx context.Context, order *models.Order) bool {
	if err := m.sender.Verify(ctx); err != nil {
		logger.Warn(ctx, "email transport verification failed", zap.Error(err))
	}

	data := struct {
		OrderID   string
		QRCodeURL string
	}{
		OrderID:   order.ID.Hex(),
		QRCodeURL: QRCodeURL(order.ID.Hex()),
	}

	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, data); err != nil {
		logger.Warn(ctx, "confirmation email render failed", zap.Error(err))
		return false
	}

	if _, err := m.sender.SendEmail(ctx, m.recipient, confirmationSubject, buf.String()); err != nil {
		logger.Warn(ctx, "confirmation email send failed",
			zap.String("order_id", order.ID.Hex()),
			zap.Error(err),
		)
		return false
	}

	logger.Info(ctx, "confirmation email sent",
		zap.String("order_id", order.ID.Hex()),
		zap.String("to", m.recipient),
	)
	return true
}
