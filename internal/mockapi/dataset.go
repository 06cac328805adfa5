package mockapi

import (
	"sync"

	"go.uber.org/fx"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/config"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/dto"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/entity"
)

// Module provides the shared mock dataset to Fx.
var Module = fx.Provide(NewDataset)

// Dataset is the in-memory order list behind both mock backends (the
// in-process responder and the mock API server). Reads are served from the
// generated list; mutating calls acknowledge success without persisting,
// matching the remote simulation contract.
type Dataset struct {
	mu     sync.Mutex
	gen    *Generator
	orders []entity.Order
	nextID int64
}

// NewDataset generates the synthetic order list from mock settings.
func NewDataset(cfg config.Config) *Dataset {
	return newDataset(cfg.Mock)
}

func newDataset(cfg config.Mock) *Dataset {
	gen := NewGenerator(cfg.Seed)
	orders := gen.Orders(cfg.Orders)
	return &Dataset{
		gen:    gen,
		orders: orders,
		nextID: int64(len(orders)) + 1,
	}
}

// AppConfig returns the selector lists the dashboard needs.
func (d *Dataset) AppConfig() entity.AppConfig {
	return entity.AppConfig{
		DeliveryPartners: append([]string(nil), DeliveryPartners...),
		QuickStatuses:    append([]string(nil), QuickStatuses...),
	}
}

// List filters and pages the dataset.
func (d *Dataset) List(q Query) entity.OrdersResponse {
	return Paginate(Filter(d.orders, q), q.Page)
}

// Create acknowledges a new order with a fresh tracking code and id. The
// order is not added to the list.
func (d *Dataset) Create(_ dto.NewOrder) dto.SubmitResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	return dto.SubmitResult{
		Success:      true,
		Message:      "Order received",
		TrackingCode: d.gen.TrackingCode(),
		OrderID:      id,
	}
}

// SetStatus acknowledges a status change without persisting it.
func (d *Dataset) SetStatus(_ dto.StatusUpdate) dto.UpdateResult {
	return dto.UpdateResult{Success: true, Message: "Status updated"}
}

// SetDetails acknowledges a details change without persisting it.
func (d *Dataset) SetDetails(_ dto.DetailsUpdate) dto.UpdateResult {
	return dto.UpdateResult{Success: true, Message: "Order details updated"}
}

// Len reports the size of the generated dataset.
func (d *Dataset) Len() int {
	return len(d.orders)
}
