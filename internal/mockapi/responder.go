package mockapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/client"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/config"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/dto"
	"github.com/zahid1995j/Somahar-Order-Management-App/pkg/errorbank"
)

// Responder serves OrderService calls from the in-memory dataset. It
// implements client.Dispatcher so the service is oblivious to mock mode.
type Responder struct {
	data    *Dataset
	latency time.Duration
	logger  *zap.Logger
}

// NewResponder builds a mock dispatcher with its own generated dataset.
func NewResponder(cfg config.Mock, logger *zap.Logger) *Responder {
	return &Responder{
		data:    newDataset(cfg),
		latency: cfg.Latency,
		logger:  logger,
	}
}

// Do simulates one remote call: a fixed latency pause, then the canned
// response for the requested endpoint.
func (r *Responder) Do(ctx context.Context, req client.Request, out any) error {
	if err := r.wait(ctx); err != nil {
		return err
	}

	if r.logger != nil {
		r.logger.Debug("serving mock response", zap.String("path", req.Path))
	}

	var payload any
	switch req.Path {
	case "/app-config":
		payload = r.data.AppConfig()
	case "/orders":
		payload = r.data.List(QueryFromValues(req.Query))
	case "/add-order":
		order, _ := req.Body.(dto.NewOrder)
		payload = r.data.Create(order)
	case "/update-status":
		update, _ := req.Body.(dto.StatusUpdate)
		payload = r.data.SetStatus(update)
	case "/update-details":
		update, _ := req.Body.(dto.DetailsUpdate)
		payload = r.data.SetDetails(update)
	default:
		return errorbank.NotFound("endpoint not found")
	}

	return assign(payload, out)
}

func (r *Responder) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// QueryFromValues decodes /orders query parameters into a Query.
func QueryFromValues(values url.Values) Query {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	return Query{
		Page:    page,
		Search:  values.Get("search"),
		Partner: values.Get("delivery_partner"),
		Status:  values.Get("status"),
	}
}

// assign round-trips the payload through JSON so the mock path exercises
// the same wire shapes as the HTTP dispatcher.
func assign(payload, out any) error {
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return errorbank.Internal("encode mock payload", errorbank.WithCause(err))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errorbank.Internal("decode mock payload", errorbank.WithCause(err))
	}
	return nil
}
