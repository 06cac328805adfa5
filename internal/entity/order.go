package entity

import "time"

// Order is a single tracked delivery shipment as served by the remote API.
// Records are immutable once fetched; callers re-fetch after updates.
type Order struct {
	ID                int64     `json:"id"`
	TrackingCode      string    `json:"tracking_code"`
	CustomerName      string    `json:"customer_name"`
	CustomerPhone     string    `json:"customer_phone"`
	Address           string    `json:"address"`
	PoliceStation     string    `json:"police_station"`
	Amount            float64   `json:"amount"`
	RiderName         string    `json:"rider_name"`
	RiderPhone        string    `json:"rider_phone"`
	DeliveryPartner   string    `json:"delivery_partner"`
	Status            string    `json:"status"`
	LastUpdate        time.Time `json:"last_update"`
	EstimatedDelivery string    `json:"estimated_delivery"`
}

// Pagination describes the page window of an order listing. Counts always
// reflect the filtered set, not the unfiltered total.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
}

// OrdersResponse is one ordered page of orders plus pagination metadata.
type OrdersResponse struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}
