package services

import (
	"context"

	"ticketing-service/logger"
	"ticketing-service/models"
	"ticketing-service/repository"

	"go.uber.org/zap"
)

const defaultPageLimit = 10

type MetaData struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalOrders int64 `json:"total_orders"`
	TotalPages  int64 `json:"total_pages"`
	HasMore     bool  `json:"has_more"`
}

type EventOrdersResponse struct {
	Orders []models.OrderWithBuyer `json:"orders"`
	Meta   MetaData                `json:"meta"`
}

type BuyerOrdersResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

// Orders is the listing surface for organizer and buyer order views.
type Orders interface {
	GetOrdersByEvent(ctx context.Context, eventID, search string, page, limit int) (*EventOrdersResponse, *ServiceError)
	GetOrdersByBuyer(ctx context.Context, buyerID string, page, limit int) (*BuyerOrdersResponse, *ServiceError)
}

type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// GetOrdersByEvent lists an event's orders with fuzzy buyer-name search,
// newest first.
func (s *OrderService) GetOrdersByEvent(ctx context.Context, eventID, search string, page, limit int) (*EventOrdersResponse, *ServiceError) {
	page, limit = normalizePaging(page, limit)
	skip := (page - 1) * limit

	orders, total, err := s.repo.FindByEvent(ctx, eventID, search, skip, limit)
	if err != nil {
		logger.Warn(ctx, "failed to fetch orders for event",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}

	return &EventOrdersResponse{
		Orders: orders,
		Meta:   buildMeta(page, limit, total),
	}, nil
}

// GetOrdersByBuyer lists a buyer's orders newest first, paginated.
func (s *OrderService) GetOrdersByBuyer(ctx context.Context, buyerID string, page, limit int) (*BuyerOrdersResponse, *ServiceError) {
	page, limit = normalizePaging(page, limit)
	skip := (page - 1) * limit

	orders, total, err := s.repo.FindByBuyer(ctx, buyerID, skip, limit)
	if err != nil {
		logger.Warn(ctx, "failed to fetch orders for buyer",
			zap.String("buyer_id", buyerID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}

	return &BuyerOrdersResponse{
		Orders: orders,
		Meta:   buildMeta(page, limit, total),
	}, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

func buildMeta(page, limit int, total int64) MetaData {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return MetaData{
		Page:        page,
		Limit:       limit,
		TotalOrders: total,
		TotalPages:  totalPages,
		HasMore:     int64(page*limit) < total,
	}
}
