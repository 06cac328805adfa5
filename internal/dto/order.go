package dto

// NewOrder is the create-order payload. Required fields are validated by
// the server; the client does not re-validate.
type NewOrder struct {
	CustomerName      string  `json:"customer_name"`
	CustomerPhone     string  `json:"customer_phone"`
	Address           string  `json:"address"`
	PoliceStation     string  `json:"police_station"`
	Amount            float64 `json:"amount"`
	DeliveryPartner   string  `json:"delivery_partner"`
	EstimatedDelivery string  `json:"estimated_delivery,omitempty"`
}

// StatusUpdate changes the current status of an existing order.
type StatusUpdate struct {
	OrderID      int64  `json:"order_id,omitempty"`
	TrackingCode string `json:"tracking_code,omitempty"`
	Status       string `json:"status"`
}

// DetailsUpdate carries the updatable fields of an existing order. Empty
// fields are omitted so the server only touches what was supplied.
type DetailsUpdate struct {
	OrderID           int64  `json:"order_id"`
	RiderName         string `json:"rider_name,omitempty"`
	RiderPhone        string `json:"rider_phone,omitempty"`
	Address           string `json:"address,omitempty"`
	DeliveryPartner   string `json:"delivery_partner,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

// SubmitResult is the create-order response envelope.
type SubmitResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TrackingCode string `json:"tracking_code"`
	OrderID      int64  `json:"order_id"`
}

// UpdateResult is the envelope shared by the two update endpoints.
type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
