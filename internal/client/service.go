package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/dto"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/entity"
)

var serviceTracer = otel.Tracer("github.com/zahid1995j/Somahar-Order-Management-App/client/service")

// ListQuery filters and pages an order listing. Empty filters are omitted
// from the request; filters combine with AND semantics server-side.
type ListQuery struct {
	Page    int
	Search  string
	Partner string
	Status  string
}

// Service is the typed facade over the dashboard API. Each method issues at
// most one outbound request through the configured dispatcher.
type Service struct {
	dispatch Dispatcher
	logger   *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Dispatcher Dispatcher
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{dispatch: p.Dispatcher, logger: p.Logger}
}

// New builds a Service directly, bypassing Fx. Useful for tests and
// embedding.
func New(dispatch Dispatcher, logger *zap.Logger) *Service {
	return &Service{dispatch: dispatch, logger: logger}
}

// GetConfig fetches the partner and quick-status lists. The endpoint is
// public, so no API-key header is attached.
func (s *Service) GetConfig(ctx context.Context) (*entity.AppConfig, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.GetConfig")
	defer span.End()

	var cfg entity.AppConfig
	req := Request{Method: http.MethodGet, Path: "/app-config", Public: true}
	if err := s.dispatch.Do(ctx, req, &cfg); err != nil {
		return nil, fmt.Errorf("fetch app config: %w", err)
	}
	return &cfg, nil
}

// GetOrders fetches one page of orders matching the supplied filters.
func (s *Service) GetOrders(ctx context.Context, q ListQuery) (*entity.OrdersResponse, error) {
	if q.Page <= 0 {
		q.Page = 1
	}

	ctx, span := serviceTracer.Start(ctx, "OrderService.GetOrders", trace.WithAttributes(
		attribute.Int("orders.page", q.Page),
	))
	defer span.End()

	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Partner != "" {
		query.Set("delivery_partner", q.Partner)
	}
	if q.Status != "" {
		query.Set("status", q.Status)
	}

	var page entity.OrdersResponse
	req := Request{Method: http.MethodGet, Path: "/orders", Query: query}
	if err := s.dispatch.Do(ctx, req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AddOrder submits a new delivery order.
func (s *Service) AddOrder(ctx context.Context, order dto.NewOrder) (*dto.SubmitResult, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.AddOrder", trace.WithAttributes(
		attribute.String("order.partner", order.DeliveryPartner),
	))
	defer span.End()

	var result dto.SubmitResult
	req := Request{Method: http.MethodPost, Path: "/add-order", Body: order}
	if err := s.dispatch.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	if s.logger != nil && result.Success {
		s.logger.Info("order submitted", zap.String("tracking_code", result.TrackingCode))
	}
	return &result, nil
}

// UpdateStatus moves an existing order to a new status.
func (s *Service) UpdateStatus(ctx context.Context, update dto.StatusUpdate) (*dto.UpdateResult, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.UpdateStatus", trace.WithAttributes(
		attribute.String("order.status", update.Status),
	))
	defer span.End()

	var result dto.UpdateResult
	req := Request{Method: http.MethodPost, Path: "/update-status", Body: update}
	if err := s.dispatch.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateDetails edits the updatable fields of an existing order.
func (s *Service) UpdateDetails(ctx context.Context, update dto.DetailsUpdate) (*dto.UpdateResult, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.UpdateDetails", trace.WithAttributes(
		attribute.Int64("order.id", update.OrderID),
	))
	defer span.End()

	var result dto.UpdateResult
	req := Request{Method: http.MethodPost, Path: "/update-details", Body: update}
	if err := s.dispatch.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
